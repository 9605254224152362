// Package report derives improvement suggestions from the source map and
// assembles the final explainable MatchReport. No scoring happens here.
package report

import (
	"fmt"
	"math"

	"github.com/jonathan/jobmatch-checker/internal/config"
	"github.com/jonathan/jobmatch-checker/internal/types"
)

// Disclaimer is attached verbatim to every report.
const Disclaimer = "This score is an estimate based on job description and resume text. " +
	"There is no universal benchmark for a 'good' match rate; companies and roles vary widely. " +
	"We use keyword normalization and semantic similarity to approximate relevance. Human review is essential."

// MaxImprovements bounds the suggestion list.
const MaxImprovements = 5

// BuildImprovements scans the source map in job-responsibility order and
// emits a templated suggestion for every responsibility without a supporting
// match or whose similarity fell below the semantic match minimum. The first
// MaxImprovements suggestions win; earlier responsibilities take priority.
func BuildImprovements(sourceMap []types.SourceMapEntry, cfg *config.Config) []string {
	tips := []string{}
	for _, entry := range sourceMap {
		if entry.CVSupportingLine != nil && entry.Similarity >= cfg.Thresholds.SemanticMatchMin {
			continue
		}
		tips = append(tips, fmt.Sprintf("Address: %s with a recent, outcome-focused example.", entry.JDLine))
		if len(tips) == MaxImprovements {
			break
		}
	}
	return tips
}

// Assemble packages everything into the final report. Pure data assembly:
// scores are rounded to one decimal and the fixed disclaimer is attached.
func Assemble(overall float64, tier string, missing []string, components types.ComponentScores, sourceMap []types.SourceMapEntry, improvements []string) *types.MatchReport {
	rounded := make(types.ComponentScores, len(components))
	for name, v := range components {
		rounded[name] = Round1(v)
	}

	return &types.MatchReport{
		OverallScore:     Round1(overall),
		Tier:             tier,
		GatedByMustHaves: len(missing) > 0,
		MissingMustHaves: missing,
		Components:       rounded,
		MatchedLines:     sourceMap,
		Improvements:     improvements,
		Disclaimer:       Disclaimer,
	}
}

// Round1 rounds to one decimal, the precision scores are reported at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
