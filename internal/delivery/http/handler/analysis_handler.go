// Package handler implements the API endpoints. Each handler owns its
// route group and maps domain output into dto shapes.
package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/dto"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/middleware"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/parser"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/pipeline"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/pkg/response"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/store"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/ws"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

const maxJobCount = 200

var validate = validator.New()

type AnalysisHandler struct {
	runner   *pipeline.Runner
	analyses store.AnalysisStore
	paths    store.PathStore
	logger   zerolog.Logger
}

func NewAnalysisHandler(runner *pipeline.Runner, analyses store.AnalysisStore, paths store.PathStore, logger zerolog.Logger) *AnalysisHandler {
	return &AnalysisHandler{runner: runner, analyses: analyses, paths: paths, logger: logger}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/analyses")
	grp.Post("/", h.HandleRunAnalysis)
	grp.Get("/", h.HandleListAnalyses)
	grp.Get("/:id", h.HandleGetAnalysis)
}

// HandleRunAnalysis accepts a multipart resume upload and runs the
// full pipeline synchronously. Progress is mirrored to the WebSocket
// hub so a browser can follow along.
func (h *AnalysisHandler) HandleRunAnalysis(c fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "resume file is required", nil, err)
	}

	jobCount, err := parseFormIntStrict(c, "jobs", pipeline.DefaultJobCount)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "jobs must be a number", nil, err)
	}

	req := dto.RunAnalysisRequest{
		Domain: c.FormValue("domain"),
		Source: c.FormValue("source"),
		Jobs:   jobCount,
	}
	if err := validateRunAnalysis(req); err != nil {
		return err
	}

	path, cleanup, err := saveUpload(fh)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	defer cleanup()

	rep, err := h.runner.Run(c.Context(), pipeline.Params{
		ResumePath: path,
		Domain:     req.Domain,
		JobCount:   req.Jobs,
		Source:     req.Source,
		Progress:   ws.NotifyProgress,
	})
	if err != nil {
		return mapPipelineError(err)
	}

	ws.NotifyAnalysisCompleted(rep.AnalysisID, rep.Result.MatchPercentage)

	return response.Success(c, fiber.StatusOK, "analysis completed", buildRunResponse(rep))
}

func (h *AnalysisHandler) HandleListAnalyses(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 10)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "limit must be a number", nil, err)
	}

	recs, err := h.analyses.RecentAnalyses(c.Context(), limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	out := make([]dto.HistoryItemResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, buildHistoryItem(rec))
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *AnalysisHandler) HandleGetAnalysis(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "id must be a number", nil, err)
	}

	rec, err := h.analyses.AnalysisByID(c.Context(), id)
	if err != nil {
		if database.IsNoRows(err) {
			return middleware.NewAppError(fiber.StatusNotFound, "analysis not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	weeks, err := h.paths.WeeksByAnalysis(c.Context(), id)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	detail := dto.HistoryDetailResponse{
		HistoryItemResponse: buildHistoryItem(rec),
		Weeks:               make([]dto.WeekResponse, 0, len(weeks)),
	}
	for _, w := range weeks {
		detail.Weeks = append(detail.Weeks, dto.WeekResponse{
			WeekNumber: w.WeekNumber,
			SkillFocus: w.SkillFocus,
			Resources:  w.Resources,
			Milestones: w.Milestones,
		})
	}
	return response.Success(c, fiber.StatusOK, "success", detail)
}

func buildRunResponse(rep *pipeline.Report) dto.AnalysisRunResponse {
	res := rep.Result

	resumeSkills := make([]dto.SkillResponse, 0, len(rep.Resume.Skills))
	for _, s := range rep.Resume.Skills {
		resumeSkills = append(resumeSkills, dto.SkillResponse{
			Name:      s.Name,
			Category:  s.Category,
			Frequency: s.Frequency,
		})
	}

	missing := make([]dto.MissingSkillResponse, 0, len(res.MissingSkills))
	for _, m := range res.MissingSkills {
		missing = append(missing, dto.MissingSkillResponse{Name: m.Name, Demand: m.Demand})
	}

	matches := make([]dto.JobMatchResponse, 0, len(rep.Matches))
	for _, m := range rep.Matches {
		matches = append(matches, dto.JobMatchResponse{
			Title:           m.Job.Title,
			Company:         m.Job.Company,
			Location:        m.Job.Location,
			MatchPercentage: m.MatchPercentage,
			MatchingSkills:  m.Matching,
			MissingSkills:   m.Missing,
		})
	}

	return dto.AnalysisRunResponse{
		AnalysisID: rep.AnalysisID,
		Resume: dto.ResumeResponse{
			FileName:    filepath.Base(rep.Resume.FilePath),
			ContactName: rep.Resume.ContactName,
			Email:       rep.Resume.Email,
			Phone:       rep.Resume.Phone,
			Skills:      resumeSkills,
		},
		Domain:            res.Domain,
		JobsAnalyzed:      res.JobCount,
		MatchPercentage:   res.MatchPercentage,
		Method:            res.Method,
		ClusterID:         res.ClusterID,
		JobsInSameCluster: res.JobsInSameCluster,
		MatchingSkills:    res.MatchingSkills,
		MissingSkills:     missing,
		JobMatches:        matches,
		LearningPath:      rep.Plan.FormatText(),
	}
}

func buildHistoryItem(rec store.AnalysisRecord) dto.HistoryItemResponse {
	date := ""
	if !rec.AnalysisDate.IsZero() {
		date = rec.AnalysisDate.UTC().Format(time.RFC3339)
	}
	return dto.HistoryItemResponse{
		ID:                rec.ID,
		ResumeFilename:    rec.ResumeFilename,
		UserName:          rec.UserName,
		UserEmail:         rec.UserEmail,
		ExtractedSkills:   rec.ExtractedSkills,
		MissingSkills:     rec.MissingSkills,
		MatchPercentage:   rec.MatchPercentage,
		JobsAnalyzed:      rec.JobsAnalyzed,
		ClusterID:         rec.ClusterID,
		JobsInSameCluster: rec.JobsInSameCluster,
		AnalysisDate:      date,
	}
}

// saveUpload spools the multipart file into a temp directory, keeping
// the original filename so extension-based validation still applies.
func saveUpload(fh *multipart.FileHeader) (string, func(), error) {
	dir, err := os.MkdirTemp("", "resume-upload-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	src, err := fh.Open()
	if err != nil {
		cleanup()
		return "", nil, err
	}
	defer src.Close()

	path := filepath.Join(dir, filepath.Base(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

func mapPipelineError(err error) error {
	switch {
	case errors.Is(err, parser.ErrUnsupportedType),
		errors.Is(err, parser.ErrFileTooLarge),
		errors.Is(err, parser.ErrEmptyFile),
		errors.Is(err, parser.ErrContentMismatch),
		errors.Is(err, parser.ErrTooLittleText),
		errors.Is(err, parser.ErrNoTextExtracted):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return middleware.NewAppError(fiber.StatusBadRequest, "request canceled", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}

// validateRunAnalysis checks the struct tags and maps the first field
// failure onto the API's error wording.
func validateRunAnalysis(req dto.RunAnalysisRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Jobs":
			return middleware.NewAppError(fiber.StatusBadRequest, "jobs must be between 1 and 200", nil, err)
		case "Source":
			return middleware.NewAppError(fiber.StatusBadRequest, "source must be auto, adzuna, board, or samples", nil, err)
		}
	}
	return middleware.NewAppError(fiber.StatusBadRequest, "invalid analysis request", nil, err)
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func parseFormIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.FormValue(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
