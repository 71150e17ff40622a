package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/analyze"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/analysis"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/learning"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/resume"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/fetch"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/store"

	"github.com/rs/zerolog"
)

type fakeParser struct {
	rsm     *resume.Resume
	err     error
	gotPath string
}

func (f *fakeParser) Parse(ctx context.Context, path string) (*resume.Resume, error) {
	f.gotPath = path
	if f.err != nil {
		return nil, f.err
	}
	out := *f.rsm
	out.FilePath = path
	return &out, nil
}

type fakeExtractor struct {
	skills []skill.Skill
}

func (f *fakeExtractor) Extract(text string) []skill.Skill { return f.skills }

type fakeFetcher struct {
	jobs []job.Job
	err  error

	gotDomain string
	gotCount  int
	gotPinned string
	fetches   int
	pinned    int
}

func (f *fakeFetcher) Fetch(ctx context.Context, domain string, count int) ([]job.Job, error) {
	f.fetches++
	f.gotDomain, f.gotCount = domain, count
	return f.jobs, f.err
}

func (f *fakeFetcher) FetchFrom(ctx context.Context, name, domain string, count int) ([]job.Job, error) {
	f.pinned++
	f.gotPinned, f.gotDomain, f.gotCount = name, domain, count
	return f.jobs, f.err
}

type fakeMatcher struct {
	result  *analysis.Result
	matches []analyze.JobMatch
}

func (f *fakeMatcher) Analyze(r *resume.Resume, jobs []job.Job, domain string) *analysis.Result {
	return f.result
}

func (f *fakeMatcher) JobMatches(r *resume.Resume, jobs []job.Job) []analyze.JobMatch {
	return f.matches
}

type fakeGenerator struct {
	plan *learning.Path
	err  error
}

func (f *fakeGenerator) Generate(ctx context.Context, res *analysis.Result) (*learning.Path, error) {
	return f.plan, f.err
}

type fakeAnalysisStore struct {
	id    int64
	err   error
	saved []store.AnalysisRecord
}

func (f *fakeAnalysisStore) SaveAnalysis(ctx context.Context, rec store.AnalysisRecord) (int64, error) {
	f.saved = append(f.saved, rec)
	return f.id, f.err
}

func (f *fakeAnalysisStore) RecentAnalyses(ctx context.Context, limit int) ([]store.AnalysisRecord, error) {
	return nil, nil
}

func (f *fakeAnalysisStore) AnalysisByID(ctx context.Context, id int64) (store.AnalysisRecord, error) {
	return store.AnalysisRecord{}, nil
}

type fakePathStore struct {
	err   error
	gotID int64
	weeks []learning.Week
	calls int
}

func (f *fakePathStore) SaveWeeks(ctx context.Context, analysisID int64, weeks []learning.Week) error {
	f.calls++
	f.gotID = analysisID
	f.weeks = weeks
	return f.err
}

func (f *fakePathStore) WeeksByAnalysis(ctx context.Context, analysisID int64) ([]store.WeekRecord, error) {
	return nil, nil
}

type progressRecorder struct {
	stages   []string
	percents []int
}

func (p *progressRecorder) record(stage string, percent int) {
	p.stages = append(p.stages, stage)
	p.percents = append(p.percents, percent)
}

// writeResumeFixture creates a file that passes upfront validation.
func writeResumeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 test fixture"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

type runnerFixture struct {
	parser    *fakeParser
	extractor *fakeExtractor
	fetcher   *fakeFetcher
	matcher   *fakeMatcher
	generator *fakeGenerator
	analyses  *fakeAnalysisStore
	paths     *fakePathStore
}

func newFixture() *runnerFixture {
	return &runnerFixture{
		parser: &fakeParser{rsm: &resume.Resume{
			RawText:     "Experienced Python developer",
			ContactName: "John Smith",
			Email:       "john@example.com",
		}},
		extractor: &fakeExtractor{skills: []skill.Skill{
			{Name: "Python", Frequency: 2},
			{Name: "Docker", Frequency: 1},
		}},
		fetcher: &fakeFetcher{jobs: []job.Job{
			{ID: "1", Title: "Backend Dev", RequiredSkills: []string{"Python", "Kubernetes"}},
			{ID: "2", Title: "Platform Eng", RequiredSkills: []string{"Docker"}},
		}},
		matcher: &fakeMatcher{
			result: &analysis.Result{
				MatchPercentage: 75,
				MatchingSkills:  []string{"Docker", "Python"},
				MissingSkills:   []analysis.MissingSkill{{Name: "Kubernetes", Demand: 1}},
				JobCount:        2,
			},
			matches: []analyze.JobMatch{{MatchPercentage: 50}},
		},
		generator: &fakeGenerator{plan: &learning.Path{
			Weeks: []learning.Week{{Number: 1, Skills: []analysis.MissingSkill{{Name: "Kubernetes"}}}},
		}},
		analyses: &fakeAnalysisStore{id: 7},
		paths:    &fakePathStore{},
	}
}

func (f *runnerFixture) runner() *Runner {
	return NewRunner(f.parser, f.extractor, f.fetcher, f.matcher, f.generator, f.analyses, f.paths, zerolog.Nop())
}

func TestRun_FullPipeline(t *testing.T) {
	fx := newFixture()
	path := writeResumeFixture(t)
	progress := &progressRecorder{}

	rep, err := fx.runner().Run(context.Background(), Params{
		ResumePath: path,
		Domain:     "Software Developer",
		JobCount:   2,
		Progress:   progress.record,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantStages := []string{
		"Validating file...",
		"Extracting text from resume...",
		"Identifying skills...",
		"Fetching job postings...",
		"Analyzing with K-Means...",
		"Creating learning path...",
		"Saving results...",
		"Analysis complete!",
	}
	if !reflect.DeepEqual(progress.stages, wantStages) {
		t.Errorf("stages = %v, want %v", progress.stages, wantStages)
	}
	wantPercents := []int{5, 15, 30, 45, 65, 80, 90, 100}
	if !reflect.DeepEqual(progress.percents, wantPercents) {
		t.Errorf("percents = %v, want %v", progress.percents, wantPercents)
	}

	if rep.AnalysisID != 7 {
		t.Errorf("AnalysisID = %d, want 7", rep.AnalysisID)
	}
	if rep.Result != fx.matcher.result {
		t.Error("Result is not the analyzer's result")
	}
	if rep.Plan != fx.generator.plan {
		t.Error("Plan is not the generator's plan")
	}
	if len(rep.Jobs) != 2 {
		t.Errorf("Jobs = %d, want 2", len(rep.Jobs))
	}
	if len(rep.Matches) != 1 {
		t.Errorf("Matches = %d, want 1", len(rep.Matches))
	}
	if len(rep.Resume.Skills) != 2 {
		t.Errorf("resume skills = %d, want the extractor's", len(rep.Resume.Skills))
	}
	if fx.parser.gotPath != path {
		t.Errorf("parser got %q, want %q", fx.parser.gotPath, path)
	}
}

func TestRun_SavesMatchingSkillsInHistory(t *testing.T) {
	fx := newFixture()
	path := writeResumeFixture(t)

	if _, err := fx.runner().Run(context.Background(), Params{ResumePath: path}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(fx.analyses.saved) != 1 {
		t.Fatalf("saved %d records, want 1", len(fx.analyses.saved))
	}
	rec := fx.analyses.saved[0]
	if rec.ResumeFilename != "resume.pdf" {
		t.Errorf("ResumeFilename = %q, want resume.pdf", rec.ResumeFilename)
	}
	if rec.UserName != "John Smith" || rec.UserEmail != "john@example.com" {
		t.Errorf("contact = %q/%q", rec.UserName, rec.UserEmail)
	}
	if !reflect.DeepEqual(rec.ExtractedSkills, fx.matcher.result.MatchingSkills) {
		t.Errorf("ExtractedSkills = %v, want the matching skills %v",
			rec.ExtractedSkills, fx.matcher.result.MatchingSkills)
	}
	if fx.paths.calls != 1 || fx.paths.gotID != 7 {
		t.Errorf("SaveWeeks calls = %d id = %d, want 1 call for id 7", fx.paths.calls, fx.paths.gotID)
	}
	if len(fx.paths.weeks) != 1 {
		t.Errorf("saved %d weeks, want 1", len(fx.paths.weeks))
	}
}

func TestRun_DefaultsApplied(t *testing.T) {
	fx := newFixture()
	path := writeResumeFixture(t)

	if _, err := fx.runner().Run(context.Background(), Params{ResumePath: path}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if fx.fetcher.gotDomain != DefaultDomain {
		t.Errorf("domain = %q, want %q", fx.fetcher.gotDomain, DefaultDomain)
	}
	if fx.fetcher.gotCount != DefaultJobCount {
		t.Errorf("count = %d, want %d", fx.fetcher.gotCount, DefaultJobCount)
	}
}

func TestRun_PinnedSource(t *testing.T) {
	fx := newFixture()
	path := writeResumeFixture(t)

	if _, err := fx.runner().Run(context.Background(), Params{ResumePath: path, Source: "samples"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if fx.fetcher.pinned != 1 || fx.fetcher.gotPinned != "samples" {
		t.Errorf("FetchFrom calls = %d source = %q, want 1 call for samples", fx.fetcher.pinned, fx.fetcher.gotPinned)
	}
	if fx.fetcher.fetches != 0 {
		t.Errorf("Fetch calls = %d, want 0 when pinned", fx.fetcher.fetches)
	}
}

func TestRun_AutoSourceUsesFallbackChain(t *testing.T) {
	fx := newFixture()
	path := writeResumeFixture(t)

	if _, err := fx.runner().Run(context.Background(), Params{ResumePath: path, Source: "auto"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if fx.fetcher.fetches != 1 || fx.fetcher.pinned != 0 {
		t.Errorf("Fetch/FetchFrom = %d/%d, want 1/0", fx.fetcher.fetches, fx.fetcher.pinned)
	}
}

func TestRun_ValidationFailure(t *testing.T) {
	fx := newFixture()
	progress := &progressRecorder{}

	rep, err := fx.runner().Run(context.Background(), Params{
		ResumePath: filepath.Join(t.TempDir(), "resume.txt"),
		Progress:   progress.record,
	})
	if err == nil {
		t.Fatal("Run() error = nil, want validation failure")
	}
	if rep != nil {
		t.Errorf("report = %+v, want nil", rep)
	}
	if fx.parser.gotPath != "" {
		t.Error("parser called after validation failed")
	}

	last := len(progress.stages) - 1
	if !strings.HasPrefix(progress.stages[last], "Error: ") {
		t.Errorf("last stage = %q, want an error stage", progress.stages[last])
	}
	if progress.percents[last] != 0 {
		t.Errorf("last percent = %d, want 0", progress.percents[last])
	}
}

func TestRun_ParseFailure(t *testing.T) {
	fx := newFixture()
	fx.parser.err = errors.New("garbled file")
	path := writeResumeFixture(t)

	_, err := fx.runner().Run(context.Background(), Params{ResumePath: path})
	if err == nil || !strings.HasPrefix(err.Error(), "parse: ") {
		t.Fatalf("error = %v, want parse-step wrap", err)
	}
}

func TestRun_EmptyFetchIsNoJobs(t *testing.T) {
	fx := newFixture()
	fx.fetcher.jobs = nil
	path := writeResumeFixture(t)

	_, err := fx.runner().Run(context.Background(), Params{ResumePath: path})
	if !errors.Is(err, fetch.ErrNoJobs) {
		t.Fatalf("error = %v, want ErrNoJobs", err)
	}
}

func TestRun_GeneratorFailure(t *testing.T) {
	fx := newFixture()
	fx.generator.err = errors.New("catalog offline")
	path := writeResumeFixture(t)

	_, err := fx.runner().Run(context.Background(), Params{ResumePath: path})
	if err == nil || !strings.HasPrefix(err.Error(), "plan: ") {
		t.Fatalf("error = %v, want plan-step wrap", err)
	}
}

func TestRun_SaveFailureKeepsReport(t *testing.T) {
	fx := newFixture()
	fx.analyses.err = errors.New("disk full")
	path := writeResumeFixture(t)
	progress := &progressRecorder{}

	rep, err := fx.runner().Run(context.Background(), Params{ResumePath: path, Progress: progress.record})
	if err != nil {
		t.Fatalf("Run() error = %v, want persistence failures swallowed", err)
	}
	if rep.AnalysisID != 0 {
		t.Errorf("AnalysisID = %d, want 0", rep.AnalysisID)
	}
	if fx.paths.calls != 0 {
		t.Errorf("SaveWeeks calls = %d, want 0 after a failed history insert", fx.paths.calls)
	}
	if progress.percents[len(progress.percents)-1] != 100 {
		t.Errorf("final percent = %d, want 100", progress.percents[len(progress.percents)-1])
	}
}

func TestRun_NilStoresSkipPersistence(t *testing.T) {
	fx := newFixture()
	path := writeResumeFixture(t)
	r := NewRunner(fx.parser, fx.extractor, fx.fetcher, fx.matcher, fx.generator, nil, nil, zerolog.Nop())

	rep, err := r.Run(context.Background(), Params{ResumePath: path})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.AnalysisID != 0 {
		t.Errorf("AnalysisID = %d, want 0", rep.AnalysisID)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	fx := newFixture()
	path := writeResumeFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.runner().Run(ctx, Params{ResumePath: path})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
