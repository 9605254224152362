package types

// Component names used as keys in ComponentScores. The set is fixed; every
// report contains exactly these seven entries.
const (
	ComponentSkillsCoverage             = "skills_coverage"
	ComponentResponsibilitiesSimilarity = "responsibilities_similarity"
	ComponentSeniorityAlignment         = "seniority_alignment"
	ComponentDomainFit                  = "domain_fit"
	ComponentEducation                  = "education"
	ComponentLocation                   = "location"
	ComponentOutcomesAlignment          = "outcomes_alignment"
)

// ComponentNames lists the fixed component keys in report order.
var ComponentNames = []string{
	ComponentSkillsCoverage,
	ComponentResponsibilitiesSimilarity,
	ComponentSeniorityAlignment,
	ComponentDomainFit,
	ComponentEducation,
	ComponentLocation,
	ComponentOutcomesAlignment,
}

// ComponentScores maps component name to its bounded, pre-weighted score.
type ComponentScores map[string]float64

// SourceMapEntry pairs one job responsibility line with its best-matching
// resume bullet, or nil when no bullet cleared the semantic match minimum.
// Entries keep job-responsibility order; a resume line may back several
// entries.
type SourceMapEntry struct {
	JDLine           string  `json:"jd_line"`
	CVSupportingLine *string `json:"cv_supporting_line"`
	Similarity       float64 `json:"similarity"`
}

// Modes discloses the provenance of each degraded-capable stage so a
// fallback analysis is never silently indistinguishable from a full one.
type Modes struct {
	Parsing    ExtractionMode `json:"parsing"`
	Embeddings ExtractionMode `json:"embeddings"`
}

// Timings holds per-stage elapsed time in seconds, rounded to millisecond
// precision.
type Timings struct {
	ParseJD             float64 `json:"parse_jd"`
	ParseCV             float64 `json:"parse_cv"`
	SkillsScore         float64 `json:"skills_score"`
	ResponsibilityMatch float64 `json:"responsibility_match"`
	Rest                float64 `json:"rest"`
	Total               float64 `json:"total"`
}

// MatchReport is the final explainable result of one analysis. It is created
// once per analysis call, returned to the caller, and never persisted.
type MatchReport struct {
	OverallScore     float64          `json:"overall_score"`
	Tier             string           `json:"tier"`
	GatedByMustHaves bool             `json:"gated_by_must_haves"`
	MissingMustHaves []string         `json:"missing_must_haves"`
	Components       ComponentScores  `json:"components"`
	MatchedLines     []SourceMapEntry `json:"matched_lines"`
	Improvements     []string         `json:"improvements"`
	Disclaimer       string           `json:"disclaimer"`
	Modes            Modes            `json:"modes"`
	TimingsSec       Timings          `json:"timings_sec"`
}
