package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobmatch-checker/internal/config"
	"github.com/jonathan/jobmatch-checker/internal/types"
)

func TestScoreSeniority(t *testing.T) {
	cfg := config.Default()
	cap := cfg.Weights.SeniorityAlignment

	tests := []struct {
		name     string
		jdLevel  string
		titles   []types.Title
		expected float64
	}{
		{
			name:     "At Required Level",
			jdLevel:  "Senior",
			titles:   []types.Title{{Level: "Senior"}},
			expected: cap,
		},
		{
			name:     "Above Required Level",
			jdLevel:  "Senior",
			titles:   []types.Title{{Level: "Staff"}},
			expected: cap,
		},
		{
			name:     "One Level Below",
			jdLevel:  "Senior",
			titles:   []types.Title{{Level: "IC"}},
			expected: cap / 2,
		},
		{
			name:     "Two Levels Below",
			jdLevel:  "Staff",
			titles:   []types.Title{{Level: "IC"}},
			expected: 0.0,
		},
		{
			name:     "Highest Title Wins",
			jdLevel:  "Staff",
			titles:   []types.Title{{Level: "Intern"}, {Level: "Lead"}},
			expected: cap,
		},
		{
			name:     "Unknown Level Defaults To IC Rank",
			jdLevel:  "Senior",
			titles:   []types.Title{{Level: "Wizard"}},
			expected: cap / 2,
		},
		{
			name:     "Empty Requirement Defaults To IC",
			jdLevel:  "",
			titles:   []types.Title{{Level: "IC"}},
			expected: cap,
		},
		{
			name:     "No Titles At All",
			jdLevel:  "Senior",
			titles:   nil,
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreSeniority(tt.jdLevel, tt.titles, cfg))
		})
	}
}

func TestScoreDomain(t *testing.T) {
	cfg := config.Default()
	cap := cfg.Weights.DomainFit

	tests := []struct {
		name      string
		jdDomains []string
		cvDomains []string
		expected  float64
	}{
		{
			name:      "No Job Domains Is Neutral",
			jdDomains: nil,
			cvDomains: []string{"fintech"},
			expected:  cap,
		},
		{
			name:      "Exact Intersection",
			jdDomains: []string{"Fintech", "Payments"},
			cvDomains: []string{"fintech"},
			expected:  cap,
		},
		{
			name:      "Substring Overlap",
			jdDomains: []string{"fintech"},
			cvDomains: []string{"fintech infrastructure"},
			expected:  cap / 2,
		},
		{
			name:      "No Overlap",
			jdDomains: []string{"healthcare"},
			cvDomains: []string{"gaming"},
			expected:  0.0,
		},
		{
			name:      "Empty Resume Domains",
			jdDomains: []string{"healthcare"},
			cvDomains: nil,
			expected:  0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreDomain(tt.jdDomains, tt.cvDomains, cfg))
		})
	}
}

func TestScoreEducation(t *testing.T) {
	cfg := config.Default()
	cap := cfg.Weights.Education

	cv := &types.ResumeProfile{
		Education:      "BSc Computer Science, MIT",
		Certifications: []string{"AWS Solutions Architect"},
	}

	assert.Equal(t, cap, ScoreEducation("", cv, cfg), "no requirement is neutral")
	assert.Equal(t, cap, ScoreEducation("Computer Science degree", cv, cfg))
	assert.Equal(t, cap, ScoreEducation("AWS certification", cv, cfg), "certifications count as evidence")
	assert.Equal(t, cap/2, ScoreEducation("PhD in Physics", cv, cfg), "miss earns partial credit")
}

func TestScoreLocation(t *testing.T) {
	cfg := config.Default()
	cap := cfg.Weights.Location

	cv := &types.ResumeProfile{
		Location:  "Lisbon, Portugal",
		WorkAuth:  "EU citizen",
		Timezones: []string{"UTC", "CET"},
	}

	assert.Equal(t, cap, ScoreLocation("", cv, cfg))
	assert.Equal(t, cap, ScoreLocation("CET working hours", cv, cfg))
	assert.Equal(t, cap, ScoreLocation("must be in Portugal", cv, cfg))
	assert.Equal(t, cap/2, ScoreLocation("US work authorization required", cv, cfg))
}

func TestScoreOutcomes(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name     string
		bullets  []types.Bullet
		expected float64
	}{
		{
			name:     "No Bullets",
			bullets:  nil,
			expected: 0.0,
		},
		{
			name: "Percentage Indicator",
			bullets: []types.Bullet{
				{Text: "Reduced build times by 40%"},
			},
			expected: 2.0,
		},
		{
			name: "One Point Per Bullet Even With Multiple Indicators",
			bullets: []types.Bullet{
				{Text: "Cut cost by $2M and improved retention by 15%"},
			},
			expected: 2.0,
		},
		{
			name: "No Indicators",
			bullets: []types.Bullet{
				{Text: "Worked on the billing team"},
			},
			expected: 0.0,
		},
		{
			name: "Capped At Component Cap",
			bullets: []types.Bullet{
				{Text: "grew revenue 1"}, {Text: "grew revenue 2"}, {Text: "grew revenue 3"},
				{Text: "grew revenue 4"}, {Text: "grew revenue 5"}, {Text: "grew revenue 6"},
				{Text: "grew revenue 7"},
			},
			expected: cfg.Weights.OutcomesAlignment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreOutcomes(tt.bullets, cfg))
		})
	}
}

func TestSignificantTokens_FiltersShortWords(t *testing.T) {
	tokens := significantTokens("5+ years of Go on K8s")
	assert.Equal(t, []string{"years", "k8s"}, tokens)
}
