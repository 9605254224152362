package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch-checker/internal/types"
)

func TestFallbackVector_Deterministic(t *testing.T) {
	v1 := FallbackVector("Designed and shipped a payments API")
	v2 := FallbackVector("Designed and shipped a payments API")

	require.Len(t, v1, Dimensions)
	assert.Equal(t, v1, v2, "identical text must yield the identical vector")
}

func TestFallbackVector_DifferentTextDifferentVector(t *testing.T) {
	v1 := FallbackVector("alpha")
	v2 := FallbackVector("beta")

	assert.NotEqual(t, v1, v2)
}

func TestFallbackVector_NonZeroNorm(t *testing.T) {
	v := FallbackVector("")

	norm := 0.0
	for _, x := range v {
		norm += x * x
	}
	assert.Greater(t, norm, 0.0, "even empty text must produce a usable vector")
}

func TestFallbackProvider_BatchMatchesSingle(t *testing.T) {
	p := FallbackProvider{}
	texts := []string{"lead the team", "write Go", "lead the team"}

	batch, mode := p.EmbedBatch(context.Background(), texts)
	require.Len(t, batch, len(texts))
	assert.Equal(t, types.ModeFallback, mode)

	for i, text := range texts {
		single, singleMode := p.Embed(context.Background(), text)
		assert.Equal(t, types.ModeFallback, singleMode)
		assert.Equal(t, single, batch[i], "batch index %d diverges from single call", i)
	}
}

func TestFallbackProvider_EmptyBatch(t *testing.T) {
	p := FallbackProvider{}

	batch, mode := p.EmbedBatch(context.Background(), nil)
	assert.Empty(t, batch)
	assert.Equal(t, types.ModeFallback, mode)
}

func TestNewProvider_EmptyKeyIsFallback(t *testing.T) {
	p, err := NewProvider(context.Background(), "", "")
	require.NoError(t, err)
	_, ok := p.(FallbackProvider)
	assert.True(t, ok, "missing API key must select the fallback provider")
}
