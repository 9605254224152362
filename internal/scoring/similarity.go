// Package scoring implements the seven component sub-scorers, the must-have
// gate, and the aggregator. Every function here is a pure function of
// (job, resume, config); components never reference each other.
package scoring

import (
	"math"

	"github.com/jonathan/jobmatch-checker/internal/config"
)

// Cosine returns the cosine similarity of a and b. A zero-norm vector yields
// 0.0 rather than an error; this guards the divide, it is not a failure.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		na += v * v
	}
	for _, v := range b {
		nb += v * v
	}
	if na == 0 || nb == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// RecencyWeight returns the multiplier for a skill last used in year.
// A missing (zero) year is treated as maximally stale.
func RecencyWeight(year, currentYear int, rw config.RecencyWeights) float64 {
	if year == 0 {
		return rw.Stale
	}
	age := currentYear - year
	if age < 0 {
		age = 0
	}
	switch {
	case age <= 3:
		return rw.Recent
	case age <= 7:
		return rw.Aging
	default:
		return rw.Stale
	}
}
