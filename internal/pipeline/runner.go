// Package pipeline orchestrates a full resume analysis run: validate,
// parse, extract skills, fetch jobs, match, plan, persist.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/analyze"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/analysis"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/learning"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/resume"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/fetch"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/parser"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/store"

	"github.com/rs/zerolog"
)

// Defaults applied when Params leaves them unset.
const (
	DefaultDomain   = "Software Developer"
	DefaultJobCount = 50
)

// Progress receives user-facing stage updates as the run advances.
// Percent is 0 when the run fails.
type Progress func(stage string, percent int)

type resumeParser interface {
	Parse(ctx context.Context, path string) (*resume.Resume, error)
}

type skillExtractor interface {
	Extract(text string) []skill.Skill
}

type jobFetcher interface {
	Fetch(ctx context.Context, domain string, count int) ([]job.Job, error)
	FetchFrom(ctx context.Context, name, domain string, count int) ([]job.Job, error)
}

type matcher interface {
	Analyze(r *resume.Resume, jobs []job.Job, domain string) *analysis.Result
	JobMatches(r *resume.Resume, jobs []job.Job) []analyze.JobMatch
}

type pathGenerator interface {
	Generate(ctx context.Context, res *analysis.Result) (*learning.Path, error)
}

// Runner wires the stages together. Stores may be nil, in which case
// nothing is persisted.
type Runner struct {
	parser    resumeParser
	extractor skillExtractor
	fetcher   jobFetcher
	analyzer  matcher
	generator pathGenerator
	analyses  store.AnalysisStore
	paths     store.PathStore
	logger    zerolog.Logger
}

func NewRunner(
	p resumeParser,
	extractor skillExtractor,
	fetcher jobFetcher,
	analyzer matcher,
	generator pathGenerator,
	analyses store.AnalysisStore,
	paths store.PathStore,
	logger zerolog.Logger,
) *Runner {
	return &Runner{
		parser:    p,
		extractor: extractor,
		fetcher:   fetcher,
		analyzer:  analyzer,
		generator: generator,
		analyses:  analyses,
		paths:     paths,
		logger:    logger,
	}
}

type Params struct {
	ResumePath string
	Domain     string
	JobCount   int
	// Source pins one job source by name. Empty (or "auto") uses the
	// fetcher's ordered fallback.
	Source   string
	Progress Progress
}

// Report bundles everything one run produced. AnalysisID is 0 when
// persistence was skipped or failed.
type Report struct {
	Resume     *resume.Resume
	Result     *analysis.Result
	Plan       *learning.Path
	Jobs       []job.Job
	Matches    []analyze.JobMatch
	AnalysisID int64
}

func (r *Runner) Run(ctx context.Context, params Params) (*Report, error) {
	start := time.Now()
	r.logger.Info().
		Str("pipeline", "analysis").
		Str("resume", params.ResumePath).
		Str("domain", params.Domain).
		Int("jobs", params.JobCount).
		Msg("pipeline started")

	rep, err := r.run(ctx, params)
	if err != nil {
		r.emit(params.Progress, "Error: "+err.Error(), 0)
		r.logger.Error().
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("pipeline failed")
		return nil, err
	}

	r.logger.Info().
		Dur("duration", time.Since(start)).
		Float64("match", rep.Result.MatchPercentage).
		Int("matching", len(rep.Result.MatchingSkills)).
		Int("missing", len(rep.Result.MissingSkills)).
		Msg("pipeline finished")
	return rep, nil
}

func (r *Runner) run(ctx context.Context, params Params) (*Report, error) {
	if params.Domain == "" {
		params.Domain = DefaultDomain
	}
	if params.JobCount <= 0 {
		params.JobCount = DefaultJobCount
	}

	r.emit(params.Progress, "Validating file...", 5)
	if err := r.step(ctx, "validate", func(context.Context) error {
		return parser.Validate(params.ResumePath)
	}); err != nil {
		return nil, err
	}

	var rsm *resume.Resume
	r.emit(params.Progress, "Extracting text from resume...", 15)
	if err := r.step(ctx, "parse", func(ctx context.Context) error {
		var err error
		rsm, err = r.parser.Parse(ctx, params.ResumePath)
		return err
	}); err != nil {
		return nil, err
	}

	r.emit(params.Progress, "Identifying skills...", 30)
	if err := r.step(ctx, "skills", func(context.Context) error {
		rsm.Skills = r.extractor.Extract(rsm.RawText)
		r.logger.Info().Int("count", len(rsm.Skills)).Msg("resume skills extracted")
		return nil
	}); err != nil {
		return nil, err
	}

	var jobs []job.Job
	r.emit(params.Progress, "Fetching job postings...", 45)
	if err := r.step(ctx, "fetch", func(ctx context.Context) error {
		var err error
		if pinned := params.Source; pinned != "" && pinned != "auto" {
			jobs, err = r.fetcher.FetchFrom(ctx, pinned, params.Domain, params.JobCount)
		} else {
			jobs, err = r.fetcher.Fetch(ctx, params.Domain, params.JobCount)
		}
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			return fetch.ErrNoJobs
		}
		return nil
	}); err != nil {
		return nil, err
	}

	var (
		result  *analysis.Result
		matches []analyze.JobMatch
	)
	r.emit(params.Progress, "Analyzing with K-Means...", 65)
	if err := r.step(ctx, "analyze", func(context.Context) error {
		result = r.analyzer.Analyze(rsm, jobs, params.Domain)
		matches = r.analyzer.JobMatches(rsm, jobs)
		return nil
	}); err != nil {
		return nil, err
	}

	var plan *learning.Path
	r.emit(params.Progress, "Creating learning path...", 80)
	if err := r.step(ctx, "plan", func(ctx context.Context) error {
		var err error
		plan, err = r.generator.Generate(ctx, result)
		return err
	}); err != nil {
		return nil, err
	}

	var analysisID int64
	r.emit(params.Progress, "Saving results...", 90)
	if err := r.step(ctx, "save", func(ctx context.Context) error {
		analysisID = r.saveResults(ctx, rsm, result, plan)
		return nil
	}); err != nil {
		return nil, err
	}

	r.emit(params.Progress, "Analysis complete!", 100)

	return &Report{
		Resume:     rsm,
		Result:     result,
		Plan:       plan,
		Jobs:       jobs,
		Matches:    matches,
		AnalysisID: analysisID,
	}, nil
}

// saveResults persists the history row and the week summaries.
// Persistence failures do not fail the run; the caller still gets its
// report. The history row keeps the skills that matched the market,
// not the full extraction.
func (r *Runner) saveResults(ctx context.Context, rsm *resume.Resume, res *analysis.Result, plan *learning.Path) int64 {
	if r.analyses == nil {
		return 0
	}

	rec := store.RecordFromResult(res, filepath.Base(rsm.FilePath), rsm.ContactName, rsm.Email, res.MatchingSkills)
	id, err := r.analyses.SaveAnalysis(ctx, rec)
	if err != nil {
		r.logger.Error().Err(err).Msg("save analysis history")
		return 0
	}

	if id > 0 && r.paths != nil && plan != nil {
		if err := r.paths.SaveWeeks(ctx, id, plan.Weeks); err != nil {
			r.logger.Error().Err(err).Int64("analysis_id", id).Msg("save learning path")
		}
	}

	r.logger.Info().Int64("analysis_id", id).Msg("results saved")
	return id
}

func (r *Runner) step(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	r.logger.Info().Str("step", name).Msg("step started")
	if err := fn(ctx); err != nil {
		r.logger.Error().
			Str("step", name).
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("step failed")
		return fmt.Errorf("%s: %w", name, err)
	}
	r.logger.Info().
		Str("step", name).
		Dur("duration", time.Since(start)).
		Msg("step finished")
	return nil
}

func (r *Runner) emit(p Progress, stage string, percent int) {
	if p != nil {
		p(stage, percent)
	}
	r.logger.Debug().Int("percent", percent).Msg(stage)
}
