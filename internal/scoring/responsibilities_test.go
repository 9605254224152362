package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch-checker/internal/config"
	"github.com/jonathan/jobmatch-checker/internal/embedding"
	"github.com/jonathan/jobmatch-checker/internal/types"
)

// stubProvider returns fixed vectors per text so cosine outcomes are exact.
type stubProvider struct {
	vectors map[string][]float64
	mode    types.ExtractionMode
}

func (s stubProvider) Embed(_ context.Context, text string) ([]float64, types.ExtractionMode) {
	return s.vectors[text], s.mode
}

func (s stubProvider) EmbedBatch(_ context.Context, texts []string) ([][]float64, types.ExtractionMode) {
	vecs := make([][]float64, len(texts))
	for i, t := range texts {
		vecs[i] = s.vectors[t]
	}
	return vecs, s.mode
}

func bullets(texts ...string) []types.Bullet {
	bs := make([]types.Bullet, len(texts))
	for i, t := range texts {
		bs[i] = types.Bullet{Text: t}
	}
	return bs
}

func TestScoreResponsibilities_MatchedAndUnmatchedLines(t *testing.T) {
	cfg := config.Default()
	provider := stubProvider{
		mode: types.ModeAIPowered,
		vectors: map[string][]float64{
			"design APIs":      {1, 0, 0},
			"run incident ops": {0, 1, 0},
			"Designed REST APIs for billing": {1, 0, 0},
			"Wrote internal docs":            {0, 0, 1},
		},
	}

	score, sourceMap, mode := ScoreResponsibilities(
		context.Background(),
		[]string{"design APIs", "run incident ops"},
		bullets("Designed REST APIs for billing", "Wrote internal docs"),
		cfg,
		provider,
	)

	require.Len(t, sourceMap, 2)
	assert.Equal(t, types.ModeAIPowered, mode)

	// First line: perfect match, supported.
	assert.Equal(t, "design APIs", sourceMap[0].JDLine)
	require.NotNil(t, sourceMap[0].CVSupportingLine)
	assert.Equal(t, "Designed REST APIs for billing", *sourceMap[0].CVSupportingLine)
	assert.Equal(t, 1.0, sourceMap[0].Similarity)

	// Second line: orthogonal to every bullet, unsupported but still listed.
	assert.Equal(t, "run incident ops", sourceMap[1].JDLine)
	assert.Nil(t, sourceMap[1].CVSupportingLine)
	assert.Equal(t, 0.0, sourceMap[1].Similarity)

	// One supported line of two: 1.0 / 2 * cap.
	assert.InDelta(t, cfg.Weights.ResponsibilitiesSimilarity/2, score, 1e-9)
}

func TestScoreResponsibilities_BelowThresholdIsUnsupported(t *testing.T) {
	cfg := config.Default()
	// cos = 0.6 < the 0.62 default minimum.
	provider := stubProvider{
		mode: types.ModeAIPowered,
		vectors: map[string][]float64{
			"lead migrations": {1, 0},
			"Led a team":      {0.6, 0.8},
		},
	}

	score, sourceMap, _ := ScoreResponsibilities(
		context.Background(),
		[]string{"lead migrations"},
		bullets("Led a team"),
		cfg,
		provider,
	)

	require.Len(t, sourceMap, 1)
	assert.Nil(t, sourceMap[0].CVSupportingLine)
	assert.Equal(t, 0.6, sourceMap[0].Similarity)
	assert.Equal(t, 0.0, score)
}

func TestScoreResponsibilities_EmptyInputs(t *testing.T) {
	cfg := config.Default()
	provider := stubProvider{mode: types.ModeAIPowered}

	score, sourceMap, mode := ScoreResponsibilities(context.Background(), nil, bullets("x"), cfg, provider)
	assert.Equal(t, 0.0, score)
	assert.NotNil(t, sourceMap)
	assert.Empty(t, sourceMap)
	assert.Equal(t, types.ModeFallback, mode)

	score, sourceMap, mode = ScoreResponsibilities(context.Background(), []string{"ship"}, nil, cfg, provider)
	assert.Equal(t, 0.0, score)
	assert.Empty(t, sourceMap)
	assert.Equal(t, types.ModeFallback, mode)
}

func TestScoreResponsibilities_FallbackProviderIsDeterministic(t *testing.T) {
	cfg := config.Default()
	jdResps := []string{"build services", "review designs"}
	cvBullets := bullets("Built Go services", "Reviewed system designs")

	s1, m1, mode := ScoreResponsibilities(context.Background(), jdResps, cvBullets, cfg, embedding.FallbackProvider{})
	s2, m2, _ := ScoreResponsibilities(context.Background(), jdResps, cvBullets, cfg, embedding.FallbackProvider{})

	assert.Equal(t, types.ModeFallback, mode)
	assert.Equal(t, s1, s2)
	assert.Equal(t, m1, m2)
}

func TestScoreResponsibilities_OneBulletCanBackSeveralLines(t *testing.T) {
	cfg := config.Default()
	provider := stubProvider{
		mode: types.ModeAIPowered,
		vectors: map[string][]float64{
			"own the roadmap":    {1, 0},
			"drive the roadmap":  {0.9, 0.1},
			"Owned product roadmap end to end": {1, 0},
		},
	}

	_, sourceMap, _ := ScoreResponsibilities(
		context.Background(),
		[]string{"own the roadmap", "drive the roadmap"},
		bullets("Owned product roadmap end to end"),
		cfg,
		provider,
	)

	require.Len(t, sourceMap, 2)
	require.NotNil(t, sourceMap[0].CVSupportingLine)
	require.NotNil(t, sourceMap[1].CVSupportingLine)
	assert.Equal(t, *sourceMap[0].CVSupportingLine, *sourceMap[1].CVSupportingLine)
}
