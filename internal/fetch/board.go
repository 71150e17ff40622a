package fetch

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/skills"

	"github.com/gocolly/colly/v2"
	"github.com/rs/zerolog"
)

// maxListingPages bounds pagination on boards that keep serving pages.
const maxListingPages = 10

// BoardSource scrapes a job board that follows the common listing plus
// detail-page shape: search results link to /jobs/<slug> pages carrying
// the full description. Detail pages are fetched through the worker
// pool so a large listing does not serialize.
type BoardSource struct {
	baseURL     string
	allowedHost string
	workers     int
	extractor   *skills.Extractor
	logger      zerolog.Logger
}

func NewBoardSource(baseURL string, workers int, extractor *skills.Extractor, logger zerolog.Logger) *BoardSource {
	if workers <= 0 {
		workers = 4
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &BoardSource{
		baseURL:     baseURL,
		allowedHost: hostFromBaseURL(baseURL),
		workers:     workers,
		extractor:   extractor,
		logger:      logger,
	}
}

func (s *BoardSource) Name() string { return "board" }

func (s *BoardSource) Fetch(ctx context.Context, domain string, count int) ([]job.Job, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("job board url not configured")
	}
	if count <= 0 {
		count = 1
	}

	links, err := s.collectLinks(ctx, domain, count)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, fmt.Errorf("%w: board listed nothing for %q", ErrNoJobs, domain)
	}

	pool := NewWorkerPool(s.workers, s.workers*2)
	pool.SetRateLimit(4)
	results := pool.Run(ctx)

	// Submit from a separate goroutine while this one drains results.
	// With a bounded result buffer, submit-all-then-read deadlocks once
	// the link count outruns the buffer.
	go func() {
		for _, link := range links {
			link := link
			pool.Submit(func(ctx context.Context) (*job.Job, error) {
				return s.scrapeDetail(ctx, link)
			})
		}
		pool.Close()
	}()

	jobs := make([]job.Job, 0, len(links))
	for res := range results {
		if res.Err != nil {
			s.logger.Warn().Err(res.Err).Msg("board detail page failed")
			continue
		}
		if res.Job != nil {
			jobs = append(jobs, *res.Job)
		}
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: every board detail page failed for %q", ErrNoJobs, domain)
	}
	if len(jobs) > count {
		jobs = jobs[:count]
	}
	return jobs, nil
}

// collectLinks walks listing pages until enough detail links are found
// or a page comes back empty.
func (s *BoardSource) collectLinks(ctx context.Context, domain string, count int) ([]string, error) {
	seen := map[string]struct{}{}
	links := make([]string, 0, count)

	for page := 1; page <= maxListingPages && len(links) < count; page++ {
		listURL := fmt.Sprintf("%s/jobs?q=%s&page=%d", s.baseURL, url.QueryEscape(domain), page)
		pageLinks, err := s.scrapeListing(ctx, listURL)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("board listing: %w", err)
			}
			s.logger.Warn().Err(err).Int("page", page).Msg("board listing page failed")
			break
		}
		added := 0
		for _, link := range pageLinks {
			if _, ok := seen[link]; ok {
				continue
			}
			seen[link] = struct{}{}
			links = append(links, link)
			added++
			if len(links) >= count {
				break
			}
		}
		if added == 0 {
			break
		}
	}
	return links, nil
}

func (s *BoardSource) scrapeListing(ctx context.Context, listURL string) ([]string, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 200 * time.Millisecond})

	var links []string
	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" || !strings.Contains(href, "/jobs/") {
			return
		}
		if abs := e.Request.AbsoluteURL(href); abs != "" {
			links = append(links, abs)
		}
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return links, nil
}

func (s *BoardSource) scrapeDetail(ctx context.Context, jobURL string) (*job.Job, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 200 * time.Millisecond})

	out := job.Job{
		ID:     externalIDFromURL(jobURL),
		URL:    jobURL,
		Source: s.Name(),
	}

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
	})
	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if out.Title == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML(".company", func(e *colly.HTMLElement) {
		out.Company = strings.TrimSpace(e.Text)
	})
	c.OnHTML(".location", func(e *colly.HTMLElement) {
		out.Location = strings.TrimSpace(e.Text)
	})
	c.OnHTML(".description", func(e *colly.HTMLElement) {
		out.Description = strings.TrimSpace(e.Text)
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(jobURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	if out.Title == "" && out.Description == "" {
		return nil, nil
	}
	out.Title = pickNonEmpty(out.Title, "Unknown")
	out.RequiredSkills = s.extractor.RequiredSkills(out.Description)
	return &out, nil
}

func hostFromBaseURL(base string) string {
	base = strings.TrimSpace(base)
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	host := u.Host
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
