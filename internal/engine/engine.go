// Package engine runs the fixed analysis pipeline: extract (or accept)
// structured records, compute the seven component scores, apply the
// must-have gate, aggregate, bucket, and assemble the explainable report.
package engine

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/jonathan/jobmatch-checker/internal/config"
	"github.com/jonathan/jobmatch-checker/internal/embedding"
	"github.com/jonathan/jobmatch-checker/internal/extract"
	"github.com/jonathan/jobmatch-checker/internal/report"
	"github.com/jonathan/jobmatch-checker/internal/scoring"
	"github.com/jonathan/jobmatch-checker/internal/types"
)

// Input caps applied before any scoring. They bound cost, not accuracy.
const (
	maxResponsibilities = 12
	maxExperienceBullet = 25
)

// Engine evaluates one job/resume pair per call. It holds no cross-request
// mutable state; configuration is read-only after load.
type Engine struct {
	cfg      *config.Config
	embedder embedding.Provider
	parser   extract.Parser
	now      func() time.Time
}

// New creates an engine with the given collaborators.
func New(cfg *config.Config, embedder embedding.Provider, parser extract.Parser) *Engine {
	return &Engine{
		cfg:      cfg,
		embedder: embedder,
		parser:   parser,
		now:      time.Now,
	}
}

// AnalyzeTexts parses both raw texts and analyzes the resulting records.
func (e *Engine) AnalyzeTexts(ctx context.Context, jdText, cvText string) (rep *types.MatchReport, err error) {
	defer recoverAnalysis(&err)

	t0 := e.now()
	jd := e.parser.ParseJob(ctx, jdText)
	tJD := e.now()
	cv := e.parser.ParseResume(ctx, cvText)
	tCV := e.now()

	rep, err = e.analyze(ctx, jd, cv)
	if err != nil {
		return nil, err
	}
	rep.TimingsSec.ParseJD = roundSec(tJD.Sub(t0))
	rep.TimingsSec.ParseCV = roundSec(tCV.Sub(tJD))
	rep.TimingsSec.Total = round3(rep.TimingsSec.Total + rep.TimingsSec.ParseJD + rep.TimingsSec.ParseCV)
	return rep, nil
}

// Analyze scores an already-structured pair. An analysis either fully
// succeeds, possibly in degraded mode, or fully fails with a single
// analysis error; there is no partial-result contract.
func (e *Engine) Analyze(ctx context.Context, jd *types.JobDescription, cv *types.ResumeProfile) (rep *types.MatchReport, err error) {
	defer recoverAnalysis(&err)
	return e.analyze(ctx, jd, cv)
}

func (e *Engine) analyze(ctx context.Context, jd *types.JobDescription, cv *types.ResumeProfile) (*types.MatchReport, error) {
	t0 := e.now()
	currentYear := t0.Year()

	// Records are immutable; cap into local copies. Every stage below,
	// the must-have gate included, sees only the capped view.
	responsibilities := capList(jd.Responsibilities, maxResponsibilities)
	bullets := capList(cv.ExperienceBullets, maxExperienceBullet)
	cappedCV := *cv
	cappedCV.ExperienceBullets = bullets

	skills := scoring.ScoreSkills(jd, &cappedCV, e.cfg, currentYear)
	tSkills := e.now()

	respScore, sourceMap, embedMode := scoring.ScoreResponsibilities(ctx, responsibilities, bullets, e.cfg, e.embedder)
	tResp := e.now()

	components := types.ComponentScores{
		types.ComponentSkillsCoverage:             skills,
		types.ComponentResponsibilitiesSimilarity: respScore,
		types.ComponentSeniorityAlignment:         scoring.ScoreSeniority(jd.Seniority, cv.Titles, e.cfg),
		types.ComponentDomainFit:                  scoring.ScoreDomain(jd.Domains, cv.Domains, e.cfg),
		types.ComponentEducation:                  scoring.ScoreEducation(jd.EducationRequired, &cappedCV, e.cfg),
		types.ComponentLocation:                   scoring.ScoreLocation(jd.VisaOrTimezone, &cappedCV, e.cfg),
		types.ComponentOutcomesAlignment:          scoring.ScoreOutcomes(bullets, e.cfg),
	}

	missing := scoring.CheckMustHaves(jd.MustHaveExperience, &cappedCV)
	overall := scoring.Aggregate(components, len(missing) > 0, e.cfg)
	tier := scoring.Bucket(overall, e.cfg)
	improvements := report.BuildImprovements(sourceMap, e.cfg)
	tRest := e.now()

	rep := report.Assemble(overall, tier, missing, components, sourceMap, improvements)
	rep.Modes = types.Modes{
		Parsing:    parsingMode(jd, cv),
		Embeddings: embedMode,
	}
	rep.TimingsSec = types.Timings{
		SkillsScore:         roundSec(tSkills.Sub(t0)),
		ResponsibilityMatch: roundSec(tResp.Sub(tSkills)),
		Rest:                roundSec(tRest.Sub(tResp)),
		Total:               roundSec(tRest.Sub(t0)),
	}
	return rep, nil
}

// recoverAnalysis converts a panic anywhere in an analysis into the single
// user-visible analysis error. No partial report escapes.
func recoverAnalysis(err *error) {
	if r := recover(); r != nil {
		log.Printf("[engine] analysis panicked: %v", r)
		*err = &AnalysisError{Cause: r}
	}
}

// parsingMode reports ai-powered when either record came from a real
// extraction call.
func parsingMode(jd *types.JobDescription, cv *types.ResumeProfile) types.ExtractionMode {
	if jd.Mode == types.ModeAIPowered || cv.Mode == types.ModeAIPowered {
		return types.ModeAIPowered
	}
	return types.ModeFallback
}

func capList[T any](xs []T, n int) []T {
	if len(xs) > n {
		return xs[:n]
	}
	return xs
}

// roundSec converts a duration to seconds at millisecond precision.
func roundSec(d time.Duration) float64 {
	return round3(d.Seconds())
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
