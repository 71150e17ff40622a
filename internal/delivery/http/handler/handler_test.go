package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/analyze"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/middleware"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/analysis"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/learning"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/resume"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/store"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newV1App builds an app the way the route registry does: error
// middleware first, then the handler mounted under /api/v1.
func newV1App(register func(v1 fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(zerolog.Nop()).Middleware())

	v1 := app.Group("/api").Group("/v1")
	register(v1)
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) semanticResponse {
	t.Helper()

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var sr semanticResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		t.Fatalf("decode envelope: %v (body=%s)", err, body)
	}
	if resp.StatusCode != sr.Status {
		t.Errorf("HTTP status %d disagrees with envelope status %d", resp.StatusCode, sr.Status)
	}
	return sr
}

type stubExtractor struct {
	skills  []skill.Skill
	gotText string
}

func (s *stubExtractor) Extract(text string) []skill.Skill {
	s.gotText = text
	return s.skills
}

type stubFetcher struct {
	jobs []job.Job
	err  error

	gotDomain string
	gotCount  int
	gotPinned string
	fetches   int
	pinned    int
}

func (s *stubFetcher) Fetch(ctx context.Context, domain string, count int) ([]job.Job, error) {
	s.fetches++
	s.gotDomain, s.gotCount = domain, count
	return s.jobs, s.err
}

func (s *stubFetcher) FetchFrom(ctx context.Context, name, domain string, count int) ([]job.Job, error) {
	s.pinned++
	s.gotPinned, s.gotDomain, s.gotCount = name, domain, count
	return s.jobs, s.err
}

type stubAnalysisStore struct {
	recent   []store.AnalysisRecord
	byID     store.AnalysisRecord
	byIDErr  error
	saveID   int64
	gotLimit int
	gotID    int64
}

func (s *stubAnalysisStore) SaveAnalysis(ctx context.Context, rec store.AnalysisRecord) (int64, error) {
	return s.saveID, nil
}

func (s *stubAnalysisStore) RecentAnalyses(ctx context.Context, limit int) ([]store.AnalysisRecord, error) {
	s.gotLimit = limit
	return s.recent, nil
}

func (s *stubAnalysisStore) AnalysisByID(ctx context.Context, id int64) (store.AnalysisRecord, error) {
	s.gotID = id
	if s.byIDErr != nil {
		return store.AnalysisRecord{}, s.byIDErr
	}
	return s.byID, nil
}

type stubPathStore struct {
	weeks []store.WeekRecord
}

func (s *stubPathStore) SaveWeeks(ctx context.Context, analysisID int64, weeks []learning.Week) error {
	return nil
}

func (s *stubPathStore) WeeksByAnalysis(ctx context.Context, analysisID int64) ([]store.WeekRecord, error) {
	return s.weeks, nil
}

type okParser struct {
	rsm resume.Resume
}

func (p *okParser) Parse(ctx context.Context, path string) (*resume.Resume, error) {
	out := p.rsm
	out.FilePath = path
	return &out, nil
}

type okMatcher struct {
	result  *analysis.Result
	matches []analyze.JobMatch
}

func (m *okMatcher) Analyze(r *resume.Resume, jobs []job.Job, domain string) *analysis.Result {
	return m.result
}

func (m *okMatcher) JobMatches(r *resume.Resume, jobs []job.Job) []analyze.JobMatch {
	return m.matches
}

type okGenerator struct {
	plan *learning.Path
}

func (g *okGenerator) Generate(ctx context.Context, res *analysis.Result) (*learning.Path, error) {
	return g.plan, nil
}
