package types

// Skill is a named skill with the year it was last used.
// A zero LastUsedYear means unknown and is treated as maximally stale.
type Skill struct {
	Name         string `json:"name"`
	LastUsedYear int    `json:"last_used_year,omitempty"`
}

// Title is one entry in a candidate's title history.
type Title struct {
	Name  string `json:"name,omitempty"`
	Level string `json:"level"`
}

// Bullet is a single free-text experience statement from a resume.
type Bullet struct {
	Text string `json:"text"`
}

// ResumeProfile represents a structured resume extracted from raw text.
// It is immutable once parsed; the scoring engine never mutates it.
type ResumeProfile struct {
	Name              string   `json:"name"`
	Location          string   `json:"location"`
	Titles            []Title  `json:"titles"`
	Skills            []Skill  `json:"skills"`
	ExperienceBullets []Bullet `json:"experience_bullets"`
	Education         string   `json:"education"`
	Certifications    []string `json:"certifications"`
	Domains           []string `json:"domains"`
	WorkAuth          string   `json:"work_auth"`
	Timezones         []string `json:"timezones"`

	// Mode records how this record was extracted (ai-powered or fallback).
	Mode ExtractionMode `json:"-"`
}

// FallbackResumeProfile returns the minimal record used when extraction
// degrades, so the pipeline still runs end to end.
func FallbackResumeProfile() *ResumeProfile {
	return &ResumeProfile{
		Name:              "Unknown",
		Titles:            []Title{},
		Skills:            []Skill{},
		ExperienceBullets: []Bullet{},
		Certifications:    []string{},
		Domains:           []string{},
		Timezones:         []string{},
		Mode:              ModeFallback,
	}
}
