package embedding

import (
	"context"
	"hash/fnv"
	"math/rand"

	"github.com/jonathan/jobmatch-checker/internal/types"
)

// FallbackProvider produces deterministic pseudo-random vectors derived from
// a hash of the input text. Identical text always yields the identical
// vector, so similarity scoring stays defined and reproducible offline.
type FallbackProvider struct{}

// Embed returns the deterministic fallback vector for text.
func (FallbackProvider) Embed(_ context.Context, text string) ([]float64, types.ExtractionMode) {
	return FallbackVector(text), types.ModeFallback
}

// EmbedBatch returns the deterministic fallback vectors for texts.
func (FallbackProvider) EmbedBatch(_ context.Context, texts []string) ([][]float64, types.ExtractionMode) {
	return fallbackBatch(texts), types.ModeFallback
}

// FallbackVector derives a fixed-dimension vector from a hash of text.
// math/rand's generator is sequence-stable for a given seed, which is what
// makes the reproducibility invariant hold across processes.
func FallbackVector(text string) []float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	rng := rand.New(rand.NewSource(int64(h.Sum64()))) //nolint:gosec // seeded generator; output is not used for secrets

	vec := make([]float64, Dimensions)
	for i := range vec {
		vec[i] = rng.NormFloat64()
	}
	return vec
}

func fallbackBatch(texts []string) [][]float64 {
	vecs := make([][]float64, len(texts))
	for i, t := range texts {
		vecs[i] = FallbackVector(t)
	}
	return vecs
}
