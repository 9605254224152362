// Package extract turns raw job description and resume text into the typed
// records the scoring engine consumes. The engine treats this as a black box:
// a Parser always returns a usable record and its mode discloses whether a
// language model or the deterministic fallback produced it.
package extract

import (
	"context"

	"github.com/jonathan/jobmatch-checker/internal/types"
)

// Parser extracts structured records from raw text. Implementations never
// fail the pipeline; on any upstream problem they return a fallback-mode
// record instead.
type Parser interface {
	ParseJob(ctx context.Context, text string) *types.JobDescription
	ParseResume(ctx context.Context, text string) *types.ResumeProfile
}

// NewParser returns the LLM-backed parser when an API key is available and
// the heuristic fallback parser otherwise. A missing key is permanent
// fallback mode, not an error.
func NewParser(apiKey string) Parser {
	if apiKey == "" {
		return FallbackParser{}
	}
	return &LLMParser{apiKey: apiKey}
}
