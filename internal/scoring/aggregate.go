package scoring

import (
	"math"

	"github.com/jonathan/jobmatch-checker/internal/config"
	"github.com/jonathan/jobmatch-checker/internal/types"
)

// Tier labels, strongest first.
const (
	TierStrong   = "Strong fit"
	TierGood     = "Good fit"
	TierPossible = "Possible fit"
	TierNeeds    = "Needs work"
	TierLow      = "Low fit"
)

// Aggregate sums the component scores into the overall score. Components are
// already pre-scaled by their own caps, so no further weighting happens
// here. Each component is summed at the one-decimal precision it is reported
// at, so the overall score always equals the sum of the components the
// report displays. When gated, the overall score is capped at the configured
// must-have cap regardless of the component sum.
func Aggregate(components types.ComponentScores, gated bool, cfg *config.Config) float64 {
	overall := 0.0
	for _, v := range components {
		overall += math.Round(v*10) / 10
	}
	if gated && overall > cfg.Thresholds.MustHaveCap {
		overall = cfg.Thresholds.MustHaveCap
	}
	return overall
}

// Bucket maps an overall score onto the tier ladder. The cutpoints are
// validated as strictly descending at config load, which keeps this
// first-match walk monotonic.
func Bucket(overall float64, cfg *config.Config) string {
	t := cfg.Thresholds
	switch {
	case overall >= t.TierStrong:
		return TierStrong
	case overall >= t.TierGood:
		return TierGood
	case overall >= t.TierPossible:
		return TierPossible
	case overall >= t.TierNeeds:
		return TierNeeds
	default:
		return TierLow
	}
}
