package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/config"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/skills"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

// AdzunaSource pulls postings from the Adzuna search API. Descriptions
// arrive as HTML snippets, so they are stripped before skill scanning.
type AdzunaSource struct {
	client    *http.Client
	baseURL   string
	country   string
	appID     string
	appKey    string
	perPage   int
	extractor *skills.Extractor
	sanitize  *bluemonday.Policy
	logger    zerolog.Logger
}

func NewAdzunaSource(cfg config.AdzunaConfig, fetchCfg config.FetchConfig, extractor *skills.Extractor, logger zerolog.Logger) *AdzunaSource {
	perPage := fetchCfg.PerPage
	if perPage <= 0 || perPage > 50 {
		perPage = 50
	}
	return &AdzunaSource{
		client:    &http.Client{Timeout: fetchCfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		country:   cfg.Country,
		appID:     cfg.AppID,
		appKey:    cfg.AppKey,
		perPage:   perPage,
		extractor: extractor,
		sanitize:  bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

func (s *AdzunaSource) Name() string { return "adzuna" }

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

type adzunaJob struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Company     adzunaCompany `json:"company"`
	Location    adzunaPlace   `json:"location"`
	SalaryMin   float64       `json:"salary_min"`
	SalaryMax   float64       `json:"salary_max"`
	RedirectURL string        `json:"redirect_url"`
	Created     string        `json:"created"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaPlace struct {
	DisplayName string `json:"display_name"`
}

func (s *AdzunaSource) Fetch(ctx context.Context, domain string, count int) ([]job.Job, error) {
	if count <= 0 {
		count = 1
	}
	pages := (count + s.perPage - 1) / s.perPage

	jobs := make([]job.Job, 0, count)
	for page := 1; page <= pages && len(jobs) < count; page++ {
		results, err := s.fetchPage(ctx, domain, page)
		if err != nil {
			if len(jobs) > 0 {
				s.logger.Warn().Err(err).Int("page", page).Msg("adzuna page failed, keeping partial results")
				break
			}
			return nil, fmt.Errorf("adzuna page %d: %w", page, err)
		}
		if len(results) == 0 {
			break
		}
		for _, raw := range results {
			jobs = append(jobs, s.parseJob(raw))
			if len(jobs) >= count {
				break
			}
		}
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: adzuna returned nothing for %q", ErrNoJobs, domain)
	}
	return jobs, nil
}

func (s *AdzunaSource) fetchPage(ctx context.Context, domain string, page int) ([]adzunaJob, error) {
	q := url.Values{}
	q.Set("app_id", s.appID)
	q.Set("app_key", s.appKey)
	q.Set("results_per_page", strconv.Itoa(s.perPage))
	q.Set("what", domain)

	endpoint := fmt.Sprintf("%s/v1/api/jobs/%s/search/%d?%s", s.baseURL, s.country, page, q.Encode())
	body, err := httpGetWithRetry(ctx, s.client, endpoint, 3)
	if err != nil {
		return nil, err
	}

	var out adzunaResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Results, nil
}

func (s *AdzunaSource) parseJob(raw adzunaJob) job.Job {
	description := strings.TrimSpace(s.sanitize.Sanitize(raw.Description))
	return job.Job{
		ID:             pickNonEmpty(raw.ID, externalIDFromURL(raw.RedirectURL)),
		Title:          pickNonEmpty(raw.Title, "Unknown"),
		Company:        pickNonEmpty(raw.Company.DisplayName, "Unknown"),
		Location:       raw.Location.DisplayName,
		Description:    description,
		RequiredSkills: s.extractor.RequiredSkills(description),
		SalaryMin:      raw.SalaryMin,
		SalaryMax:      raw.SalaryMax,
		URL:            raw.RedirectURL,
		Source:         s.Name(),
		PostedAt:       parseTimeOrNil(raw.Created),
	}
}
