package scoring

import (
	"strings"

	"github.com/jonathan/jobmatch-checker/internal/config"
	"github.com/jonathan/jobmatch-checker/internal/types"
)

// defaultTitleRank is the rank assumed for seniority levels missing from the
// configured rank table (individual contributor).
const defaultTitleRank = 1

// ScoreSeniority compares the job's required seniority against the highest
// level in the candidate's title history through the configured rank table.
// Two or more ranks below the requirement scores zero, exactly one below
// scores half the cap, at or above scores the full cap.
func ScoreSeniority(jdLevel string, titles []types.Title, cfg *config.Config) float64 {
	levels := cfg.Thresholds.TitleLevels

	maxCV := 0
	for _, t := range titles {
		maxCV = max(maxCV, rankOf(t.Level, levels))
	}
	jdRank := rankOf(jdLevel, levels)

	diff := jdRank - maxCV
	switch {
	case diff >= 2:
		return 0.0
	case diff == 1:
		return cfg.Weights.SeniorityAlignment / 2
	default:
		return cfg.Weights.SeniorityAlignment
	}
}

func rankOf(level string, levels map[string]int) int {
	if level == "" {
		level = "IC"
	}
	if rank, ok := levels[level]; ok {
		return rank
	}
	return defaultTitleRank
}

// ScoreDomain scores domain fit by case-insensitive tag comparison: exact
// intersection gets the full cap, substring overlap half, nothing zero.
// A job with no domain tags is not penalized and gets the full cap.
func ScoreDomain(jdDomains, cvDomains []string, cfg *config.Config) float64 {
	if len(jdDomains) == 0 {
		return cfg.Weights.DomainFit
	}

	jdSet := lowerSet(jdDomains)
	cvSet := lowerSet(cvDomains)

	for d := range jdSet {
		if _, ok := cvSet[d]; ok {
			return cfg.Weights.DomainFit
		}
	}
	for jd := range jdSet {
		for cv := range cvSet {
			if strings.Contains(cv, jd) || strings.Contains(jd, cv) {
				return cfg.Weights.DomainFit / 2
			}
		}
	}
	return 0.0
}

// ScoreEducation checks the education requirement by token overlap against
// the resume's education and certification text. An empty requirement is
// neutral (full cap); a miss still earns partial credit, not a hard fail.
func ScoreEducation(required string, cv *types.ResumeProfile, cfg *config.Config) float64 {
	if required == "" {
		return cfg.Weights.Education
	}

	blob := strings.ToLower(cv.Education + " " + strings.Join(cv.Certifications, " "))
	if anyTokenIn(required, blob) {
		return cfg.Weights.Education
	}
	return cfg.Weights.Education / 2
}

// ScoreLocation applies the same token-overlap policy against the resume's
// work authorization, timezones, and location text.
func ScoreLocation(constraint string, cv *types.ResumeProfile, cfg *config.Config) float64 {
	if constraint == "" {
		return cfg.Weights.Location
	}

	blob := strings.ToLower(cv.WorkAuth + " " + strings.Join(cv.Timezones, " ") + " " + cv.Location)
	if anyTokenIn(constraint, blob) {
		return cfg.Weights.Location
	}
	return cfg.Weights.Location / 2
}

// outcomeIndicators are the substrings that mark a bullet as outcome-focused.
// The list mirrors what recruiters read as measurable results: percentages,
// money, growth and efficiency verbs, multipliers.
var outcomeIndicators = []string{
	"%", "$", " roi", "arr", "maus", "conversion", "retention",
	"latency", "cost", "time to", "reduced", "increased", "grew", "x",
}

// outcomePointsPerBullet is the score awarded per outcome-bearing bullet.
const outcomePointsPerBullet = 2.0

// ScoreOutcomes awards points per resume bullet containing an outcome
// indicator, capped at the configured component cap.
func ScoreOutcomes(bullets []types.Bullet, cfg *config.Config) float64 {
	score := 0.0
	for _, b := range bullets {
		text := strings.ToLower(b.Text)
		for _, ind := range outcomeIndicators {
			if strings.Contains(text, ind) {
				score += outcomePointsPerBullet
				break
			}
		}
	}
	return min(score, cfg.Weights.OutcomesAlignment)
}

// anyTokenIn reports whether any significant token (longer than two
// characters) of requirement appears as a substring in blob. Blob must
// already be lowercased.
func anyTokenIn(requirement, blob string) bool {
	for _, tok := range significantTokens(requirement) {
		if strings.Contains(blob, tok) {
			return true
		}
	}
	return false
}

// significantTokens lowercases and splits text on whitespace, keeping only
// tokens longer than two characters.
func significantTokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
