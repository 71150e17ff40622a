package fetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/infrastructure/cache"

	"github.com/rs/zerolog"
)

// Fetcher tries its sources in order and caches whatever a source
// returns. The sample source sits last in a default build, which makes
// Fetch effectively infallible.
type Fetcher struct {
	sources []Source
	cache   *cache.Redis
	logger  zerolog.Logger
}

func New(sources []Source, cache *cache.Redis, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		sources: sources,
		cache:   cache,
		logger:  logger,
	}
}

// Fetch returns up to count postings for the domain from the first
// source that answers.
func (f *Fetcher) Fetch(ctx context.Context, domain string, count int) ([]job.Job, error) {
	if len(f.sources) == 0 {
		return nil, fmt.Errorf("no job sources configured")
	}

	var lastErr error
	for _, src := range f.sources {
		jobs, err := f.fetchOne(ctx, src, domain, count)
		if err != nil {
			lastErr = err
			f.logger.Warn().Err(err).Str("source", src.Name()).Msg("job source failed, trying next")
			continue
		}
		return jobs, nil
	}
	return nil, fmt.Errorf("all job sources failed: %w", lastErr)
}

// FetchFrom uses one named source with no fallback, for callers that
// pin a source explicitly.
func (f *Fetcher) FetchFrom(ctx context.Context, name, domain string, count int) ([]job.Job, error) {
	for _, src := range f.sources {
		if src.Name() == name {
			return f.fetchOne(ctx, src, domain, count)
		}
	}
	return nil, fmt.Errorf("unknown job source %q", name)
}

func (f *Fetcher) fetchOne(ctx context.Context, src Source, domain string, count int) ([]job.Job, error) {
	key := cacheKey(src.Name(), domain, count)

	var cached []job.Job
	if hit, err := f.cache.GetJSON(ctx, key, &cached); err == nil && hit && len(cached) > 0 {
		f.logger.Debug().Str("source", src.Name()).Int("jobs", len(cached)).Msg("job cache hit")
		return cached, nil
	}

	jobs, err := src.Fetch(ctx, domain, count)
	if err != nil {
		return nil, err
	}
	if err := f.cache.SetJSON(ctx, key, jobs, 0); err != nil {
		f.logger.Debug().Err(err).Msg("job cache write failed")
	}

	f.logger.Info().Str("source", src.Name()).Str("domain", domain).Int("jobs", len(jobs)).Msg("jobs fetched")
	return jobs, nil
}

func cacheKey(source, domain string, count int) string {
	d := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(domain)), " ", "-")
	return fmt.Sprintf("jobs:%s:%s:%d", source, d, count)
}
