// Package config provides load-once configuration for the scoring engine.
// Weights and thresholds are read from JSON documents at process start and
// never reloaded; a missing or malformed document is startup-fatal.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Weights maps each scoring component to its cap. Every component score is
// pre-scaled during its own computation, so the aggregator only sums.
type Weights struct {
	SkillsCoverage             float64 `json:"skills_coverage" validate:"required,gt=0"`
	ResponsibilitiesSimilarity float64 `json:"responsibilities_similarity" validate:"required,gt=0"`
	SeniorityAlignment         float64 `json:"seniority_alignment" validate:"required,gt=0"`
	DomainFit                  float64 `json:"domain_fit" validate:"required,gt=0"`
	Education                  float64 `json:"education" validate:"required,gt=0"`
	Location                   float64 `json:"location" validate:"required,gt=0"`
	OutcomesAlignment          float64 `json:"outcomes_alignment" validate:"required,gt=0"`
}

// RecencyWeights holds the three multipliers applied to a skill match based
// on how long ago the skill was last used.
type RecencyWeights struct {
	Recent float64 `json:"0_3" validate:"required,gt=0,lte=1"`
	Aging  float64 `json:"3_7" validate:"required,gt=0,lte=1"`
	Stale  float64 `json:"7_inf" validate:"required,gt=0,lte=1"`
}

// Thresholds holds tier cutpoints, recency buckets, the seniority rank
// table, the semantic match minimum, and the must-have gate cap.
type Thresholds struct {
	TierStrong       float64        `json:"tier_strong" validate:"required,gt=0"`
	TierGood         float64        `json:"tier_good" validate:"required,gt=0"`
	TierPossible     float64        `json:"tier_possible" validate:"required,gt=0"`
	TierNeeds        float64        `json:"tier_needs" validate:"required,gt=0"`
	MustHaveCap      float64        `json:"must_have_cap" validate:"required,gt=0"`
	SemanticMatchMin float64        `json:"semantic_match_min" validate:"required,gt=0,lt=1"`
	RecencyWeights   RecencyWeights `json:"recency_weights"`
	TitleLevels      map[string]int `json:"title_levels" validate:"required,min=1"`
}

// Config bundles the two load-once documents.
type Config struct {
	Weights    Weights
	Thresholds Thresholds
}

// DefaultWeightsPath and DefaultThresholdsPath are where Load looks when no
// explicit paths are given.
const (
	DefaultWeightsPath    = "config/weights.json"
	DefaultThresholdsPath = "config/thresholds.json"
)

var validate = validator.New()

// Load reads and validates the weights and thresholds documents.
// Any read, parse, or validation failure is returned as an error the caller
// must treat as fatal.
func Load(weightsPath, thresholdsPath string) (*Config, error) {
	var w Weights
	if err := loadJSON(weightsPath, &w); err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}

	var t Thresholds
	if err := loadJSON(thresholdsPath, &t); err != nil {
		return nil, fmt.Errorf("thresholds: %w", err)
	}

	cfg := &Config{Weights: w, Thresholds: t}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags plus the cross-field constraints the tags
// cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(&c.Weights); err != nil {
		return fmt.Errorf("invalid weights config: %w", err)
	}
	if err := validate.Struct(&c.Thresholds); err != nil {
		return fmt.Errorf("invalid thresholds config: %w", err)
	}

	// The tier ladder is a strict descending chain of cutpoints; anything
	// else makes bucketing non-monotonic.
	t := c.Thresholds
	if !(t.TierStrong > t.TierGood && t.TierGood > t.TierPossible && t.TierPossible > t.TierNeeds) {
		return fmt.Errorf("invalid thresholds config: tier cutpoints must be strictly descending (strong=%g good=%g possible=%g needs=%g)",
			t.TierStrong, t.TierGood, t.TierPossible, t.TierNeeds)
	}
	return nil
}

// Default returns the canonical configuration. It is used by tests and as
// the built-in configuration when no documents are supplied.
func Default() *Config {
	return &Config{
		Weights: Weights{
			SkillsCoverage:             30,
			ResponsibilitiesSimilarity: 25,
			SeniorityAlignment:         10,
			DomainFit:                  10,
			Education:                  5,
			Location:                   5,
			OutcomesAlignment:          10,
		},
		Thresholds: Thresholds{
			TierStrong:       75,
			TierGood:         60,
			TierPossible:     45,
			TierNeeds:        30,
			MustHaveCap:      50,
			SemanticMatchMin: 0.62,
			RecencyWeights:   RecencyWeights{Recent: 1.0, Aging: 0.7, Stale: 0.4},
			TitleLevels: map[string]int{
				"Intern":   0,
				"IC":       1,
				"Senior":   2,
				"Staff":    3,
				"Lead":     3,
				"Manager":  3,
				"Director": 4,
				"VP":       5,
			},
		},
	}
}

// loadJSON reads a JSON document into out, resolving relative paths against
// the current working directory.
func loadJSON(path string, out any) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse config JSON %s: %w", path, err)
	}
	return nil
}
