package extract

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/jonathan/jobmatch-checker/internal/llm"
	"github.com/jonathan/jobmatch-checker/internal/prompts"
	"github.com/jonathan/jobmatch-checker/internal/schemas"
	"github.com/jonathan/jobmatch-checker/internal/types"
)

// Retry bounds for extraction calls.
const (
	maxAttempts   = 3
	backoffBase   = 600 * time.Millisecond
	backoffFactor = 2
)

// LLMParser extracts records with a Gemini model, validating the JSON output
// against the embedded schemas before unmarshalling. Any failure after the
// bounded retry degrades to the heuristic fallback parser.
type LLMParser struct {
	apiKey string
}

// ParseJob extracts a JobDescription from raw job posting text.
func (p *LLMParser) ParseJob(ctx context.Context, text string) *types.JobDescription {
	raw, err := p.generate(ctx, "parse-job", text, schemas.JobDescription)
	if err != nil {
		log.Printf("[extract] job extraction degraded to fallback: %v", err)
		return FallbackParser{}.ParseJob(ctx, text)
	}

	jd := types.FallbackJobDescription()
	if err := json.Unmarshal(raw, jd); err != nil {
		log.Printf("[extract] job extraction unmarshal failed, using fallback: %v", err)
		return FallbackParser{}.ParseJob(ctx, text)
	}
	jd.Mode = types.ModeAIPowered
	return jd
}

// ParseResume extracts a ResumeProfile from raw resume text.
func (p *LLMParser) ParseResume(ctx context.Context, text string) *types.ResumeProfile {
	raw, err := p.generate(ctx, "parse-resume", text, schemas.ResumeProfile)
	if err != nil {
		log.Printf("[extract] resume extraction degraded to fallback: %v", err)
		return FallbackParser{}.ParseResume(ctx, text)
	}

	cv := types.FallbackResumeProfile()
	if err := json.Unmarshal(raw, cv); err != nil {
		log.Printf("[extract] resume extraction unmarshal failed, using fallback: %v", err)
		return FallbackParser{}.ParseResume(ctx, text)
	}
	cv.Mode = types.ModeAIPowered
	return cv
}

// generate runs one prompted extraction with bounded retry and schema
// validation. It returns the validated JSON document.
func (p *LLMParser) generate(ctx context.Context, promptKey, text, schemaName string) ([]byte, error) {
	client, err := llm.NewClient(ctx, nil, p.apiKey)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	template := prompts.MustGet("extraction.json", promptKey)
	prompt := prompts.Format(template, map[string]string{"Text": text})

	var lastErr error
	delay := backoffBase
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			delay *= backoffFactor
		}

		jsonText, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, lastErr
			}
			log.Printf("[extract] attempt %d/%d failed: %v", attempt+1, maxAttempts, err)
			continue
		}

		doc := []byte(jsonText)
		if err := schemas.Validate(schemaName, doc); err != nil {
			// Malformed model output counts as a transient failure and
			// burns an attempt like any other.
			lastErr = err
			log.Printf("[extract] attempt %d/%d returned non-conforming JSON: %v", attempt+1, maxAttempts, err)
			continue
		}
		return doc, nil
	}
	return nil, lastErr
}
