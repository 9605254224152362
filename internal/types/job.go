// Package types provides type definitions for structured data used throughout the jobmatch-checker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExtractionMode identifies the provenance of a structured record or vector:
// produced by a real external provider or by a deterministic offline substitute.
type ExtractionMode string

const (
	// ModeAIPowered indicates a real provider call produced the data
	ModeAIPowered ExtractionMode = "ai-powered"
	// ModeFallback indicates the deterministic offline substitute produced the data
	ModeFallback ExtractionMode = "fallback"
)

// JobDescription represents a structured job posting extracted from raw text.
// It is immutable once parsed; the scoring engine never mutates it.
type JobDescription struct {
	Title              string   `json:"title"`
	Seniority          string   `json:"seniority"`
	LocationPolicy     string   `json:"location_policy,omitempty"`
	RequiredSkills     []string `json:"required_skills"`
	NiceToHaveSkills   []string `json:"nice_to_have_skills"`
	Responsibilities   []string `json:"responsibilities"`
	MustHaveExperience []string `json:"must_have_experience"`
	Domains            []string `json:"domain"`
	EducationRequired  string   `json:"education_required"`
	VisaOrTimezone     string   `json:"visa_or_timezone"`

	// Mode records how this record was extracted (ai-powered or fallback).
	Mode ExtractionMode `json:"-"`
}

// FallbackJobDescription returns the minimal record used when extraction
// degrades, so the pipeline still runs end to end.
func FallbackJobDescription() *JobDescription {
	return &JobDescription{
		Title:              "Unknown",
		Seniority:          "Senior",
		RequiredSkills:     []string{},
		NiceToHaveSkills:   []string{},
		Responsibilities:   []string{},
		MustHaveExperience: []string{},
		Domains:            []string{},
		Mode:               ModeFallback,
	}
}
