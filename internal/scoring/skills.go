package scoring

import (
	"strings"

	"github.com/jonathan/jobmatch-checker/internal/config"
	"github.com/jonathan/jobmatch-checker/internal/types"
)

// Weighting of required vs nice-to-have skills in coverage.
const (
	requiredSkillWeight   = 2.0
	niceToHaveSkillWeight = 1.0
)

// ScoreSkills computes the skills coverage component. Required skills weigh
// 2x, nice-to-haves 1x; a matched skill contributes its weight scaled by the
// recency of its last use. A job that lists no skills at all gets the full
// cap (benefit of the doubt).
func ScoreSkills(jd *types.JobDescription, cv *types.ResumeProfile, cfg *config.Config, currentYear int) float64 {
	required := lowerSet(jd.RequiredSkills)
	nice := lowerSet(jd.NiceToHaveSkills)

	cvSkills := make(map[string]int, len(cv.Skills))
	for _, s := range cv.Skills {
		name := strings.ToLower(s.Name)
		if name != "" {
			cvSkills[name] = s.LastUsedYear
		}
	}

	total := float64(len(required))*requiredSkillWeight + float64(len(nice))*niceToHaveSkillWeight
	if total == 0 {
		return cfg.Weights.SkillsCoverage
	}

	matched := 0.0
	for skill := range required {
		if year, ok := cvSkills[skill]; ok {
			matched += requiredSkillWeight * RecencyWeight(year, currentYear, cfg.Thresholds.RecencyWeights)
		}
	}
	for skill := range nice {
		if year, ok := cvSkills[skill]; ok {
			matched += niceToHaveSkillWeight * RecencyWeight(year, currentYear, cfg.Thresholds.RecencyWeights)
		}
	}

	return matched / total * cfg.Weights.SkillsCoverage
}

// lowerSet lowercases and deduplicates the given names, dropping empties.
func lowerSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
