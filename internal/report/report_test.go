package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch-checker/internal/config"
	"github.com/jonathan/jobmatch-checker/internal/types"
)

func strPtr(s string) *string { return &s }

func TestBuildImprovements_OnlyUnsupportedLines(t *testing.T) {
	cfg := config.Default()
	sourceMap := []types.SourceMapEntry{
		{JDLine: "design APIs", CVSupportingLine: strPtr("Designed APIs"), Similarity: 0.9},
		{JDLine: "run incident response", CVSupportingLine: nil, Similarity: 0.3},
	}

	tips := BuildImprovements(sourceMap, cfg)
	require.Len(t, tips, 1)
	assert.Equal(t, "Address: run incident response with a recent, outcome-focused example.", tips[0])
}

func TestBuildImprovements_CappedAtMax(t *testing.T) {
	cfg := config.Default()
	sourceMap := make([]types.SourceMapEntry, 8)
	for i := range sourceMap {
		sourceMap[i] = types.SourceMapEntry{JDLine: "line", Similarity: 0.1}
	}

	tips := BuildImprovements(sourceMap, cfg)
	assert.Len(t, tips, MaxImprovements)
}

func TestBuildImprovements_PreservesResponsibilityOrder(t *testing.T) {
	cfg := config.Default()
	sourceMap := []types.SourceMapEntry{
		{JDLine: "first", Similarity: 0.1},
		{JDLine: "second", Similarity: 0.5},
		{JDLine: "third", Similarity: 0.0},
	}

	tips := BuildImprovements(sourceMap, cfg)
	require.Len(t, tips, 3)
	assert.Contains(t, tips[0], "first")
	assert.Contains(t, tips[1], "second")
	assert.Contains(t, tips[2], "third")
}

func TestBuildImprovements_FullySupportedMapIsEmpty(t *testing.T) {
	cfg := config.Default()
	sourceMap := []types.SourceMapEntry{
		{JDLine: "a", CVSupportingLine: strPtr("x"), Similarity: 0.8},
		{JDLine: "b", CVSupportingLine: strPtr("y"), Similarity: 0.7},
	}

	tips := BuildImprovements(sourceMap, cfg)
	assert.NotNil(t, tips)
	assert.Empty(t, tips)
}

func TestAssemble_RoundsAndFlags(t *testing.T) {
	components := types.ComponentScores{
		types.ComponentSkillsCoverage: 14.999,
		types.ComponentDomainFit:      5.01,
	}

	rep := Assemble(67.89, "Good fit", []string{"clearance"}, components, []types.SourceMapEntry{}, []string{})

	assert.Equal(t, 67.9, rep.OverallScore)
	assert.Equal(t, "Good fit", rep.Tier)
	assert.True(t, rep.GatedByMustHaves)
	assert.Equal(t, []string{"clearance"}, rep.MissingMustHaves)
	assert.Equal(t, 15.0, rep.Components[types.ComponentSkillsCoverage])
	assert.Equal(t, 5.0, rep.Components[types.ComponentDomainFit])
	assert.Equal(t, Disclaimer, rep.Disclaimer)
}

func TestAssemble_NotGatedWhenNothingMissing(t *testing.T) {
	rep := Assemble(80, "Strong fit", []string{}, types.ComponentScores{}, nil, nil)

	assert.False(t, rep.GatedByMustHaves)
	assert.Empty(t, rep.MissingMustHaves)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 12.5, Round1(12.49999))
	assert.Equal(t, 12.4, Round1(12.44))
	assert.Equal(t, 0.0, Round1(0.04))
}
