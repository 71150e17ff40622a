package handler

import (
	"context"
	"errors"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/dto"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/delivery/http/middleware"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/fetch"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/pipeline"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type jobFetcher interface {
	Fetch(ctx context.Context, domain string, count int) ([]job.Job, error)
	FetchFrom(ctx context.Context, name, domain string, count int) ([]job.Job, error)
}

type JobsHandler struct {
	fetcher jobFetcher
}

func NewJobsHandler(fetcher jobFetcher) *JobsHandler {
	return &JobsHandler{fetcher: fetcher}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.HandleListJobs)
}

// HandleListJobs fetches postings for a domain without running a full
// analysis, useful for probing what the sources return.
func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	domain := c.Query("domain")
	if domain == "" {
		domain = pipeline.DefaultDomain
	}
	source := c.Query("source")

	count, err := parseQueryIntStrict(c, "count", pipeline.DefaultJobCount)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "count must be a number", nil, err)
	}
	if count < 1 || count > maxJobCount {
		return middleware.NewAppError(fiber.StatusBadRequest, "count must be between 1 and 200", nil, nil)
	}

	var jobs []job.Job
	if source != "" && source != "auto" {
		jobs, err = h.fetcher.FetchFrom(c.Context(), source, domain, count)
	} else {
		jobs, err = h.fetcher.Fetch(c.Context(), domain, count)
	}
	if err != nil {
		if errors.Is(err, fetch.ErrNoJobs) {
			return middleware.NewAppError(fiber.StatusNotFound, "no jobs found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		posted := ""
		if j.PostedAt != nil && !j.PostedAt.IsZero() {
			posted = j.PostedAt.UTC().Format(time.RFC3339)
		}
		out = append(out, dto.JobResponse{
			ID:             j.ID,
			Title:          j.Title,
			Company:        j.Company,
			Location:       j.Location,
			Description:    j.Description,
			RequiredSkills: j.RequiredSkills,
			SalaryMin:      j.SalaryMin,
			SalaryMax:      j.SalaryMax,
			URL:            j.URL,
			Source:         j.Source,
			PostedDate:     posted,
		})
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}
