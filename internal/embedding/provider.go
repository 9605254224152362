// Package embedding provides text-to-vector conversion for semantic matching.
// A real provider is wrapped so that it can never fail the scoring pipeline:
// after a bounded retry, any failure degrades to a deterministic fallback
// vector and the mode discloses which path produced the result.
package embedding

import (
	"context"
	"log"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/jobmatch-checker/internal/types"
)

// Dimensions is the length of every vector returned by this package, real or
// fallback. Matches the text-embedding-004 output size.
const Dimensions = 768

// DefaultModel is the Gemini embedding model used when none is configured.
const DefaultModel = "text-embedding-004"

// Retry bounds for real provider calls.
const (
	maxAttempts    = 3
	backoffBase    = 500 * time.Millisecond
	backoffFactor  = 2
	requestTimeout = 25 * time.Second
)

// Provider converts text to vectors. Implementations never return an error:
// the vector is always usable and the mode reports whether a real provider
// produced it.
type Provider interface {
	// Embed converts a single text to a vector.
	Embed(ctx context.Context, text string) ([]float64, types.ExtractionMode)
	// EmbedBatch converts many texts in one round trip. The returned slice
	// is index-aligned with texts and equivalent text yields vectors
	// equivalent to the single-call path.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, types.ExtractionMode)
}

// GeminiProvider embeds text through the Gemini embedding API, degrading to
// the deterministic fallback on any failure.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewProvider returns the provider for the given API key. An empty key is
// not an error: it yields a permanent fallback-only provider for the process
// lifetime.
func NewProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		log.Printf("[embedding] no API key configured, using deterministic fallback vectors")
		return FallbackProvider{}, nil
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// Embed converts a single text to a vector.
func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float64, types.ExtractionMode) {
	vecs, mode := p.EmbedBatch(ctx, []string{text})
	return vecs[0], mode
}

// EmbedBatch converts many texts in one request.
func (p *GeminiProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float64, types.ExtractionMode) {
	if len(texts) == 0 {
		return nil, types.ModeFallback
	}

	vecs, err := p.embedWithRetry(ctx, texts)
	if err != nil {
		// Any failure, expected or not, degrades to the deterministic
		// fallback. Unexpected ones are logged louder so they are not
		// mistaken for plain rate limiting.
		if ctx.Err() != nil {
			log.Printf("[embedding] request cancelled or timed out, using fallback vectors: %v", err)
		} else {
			log.Printf("[embedding] provider failed after %d attempts, using fallback vectors: %v", maxAttempts, err)
		}
		return fallbackBatch(texts), types.ModeFallback
	}
	return vecs, types.ModeAIPowered
}

// embedWithRetry calls the provider with bounded exponential backoff.
func (p *GeminiProvider) embedWithRetry(ctx context.Context, texts []string) ([][]float64, error) {
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

		vecs, err := p.embedOnce(ctx, texts)
		if err == nil {
			return vecs, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, lastErr
		}
		log.Printf("[embedding] attempt %d/%d failed: %v", attempt+1, maxAttempts, err)
	}
	return nil, lastErr
}

// embedOnce performs a single batched embedding request.
func (p *GeminiProvider) embedOnce(ctx context.Context, texts []string) ([][]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	em := p.client.EmbeddingModel(p.model)
	batch := em.NewBatch()
	for _, t := range texts {
		batch = batch.AddContent(genai.Text(t))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, err
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, &ResponseError{Expected: len(texts), Got: len(resp.Embeddings)}
	}

	vecs := make([][]float64, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		if e == nil || len(e.Values) == 0 {
			return nil, &ResponseError{Expected: len(texts), Got: i}
		}
		vec := make([]float64, len(e.Values))
		for k, v := range e.Values {
			vec[k] = float64(v)
		}
		vecs[i] = vec
	}
	return vecs, nil
}

// Close releases the underlying client.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
