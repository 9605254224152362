package scoring

import (
	"strings"

	"github.com/jonathan/jobmatch-checker/internal/types"
)

// CheckMustHaves returns the must-have requirements with no evidence in the
// resume. Evidence is any significant token (longer than two characters) of
// the requirement appearing as a substring in the concatenation of the
// resume's education text, bullet texts, and skill names.
//
// A requirement whose tokens are all filtered out is treated as satisfied.
// Gating is punitive, and a requirement that tokenizes to nothing carries no
// evidence either way.
func CheckMustHaves(mustHaves []string, cv *types.ResumeProfile) []string {
	var parts []string
	parts = append(parts, cv.Education)
	for _, b := range cv.ExperienceBullets {
		parts = append(parts, b.Text)
	}
	for _, s := range cv.Skills {
		parts = append(parts, s.Name)
	}
	blob := strings.ToLower(strings.Join(parts, " "))

	missing := []string{}
	for _, m := range mustHaves {
		tokens := significantTokens(m)
		if len(tokens) == 0 {
			continue
		}
		found := false
		for _, tok := range tokens {
			if strings.Contains(blob, tok) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, m)
		}
	}
	return missing
}
