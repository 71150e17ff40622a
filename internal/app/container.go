// Package app builds the dependency graph and the HTTP server around
// it. The CLI and the server share the same container.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/analyze"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/config"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database/migration"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database/seeder"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database/sqlite"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/learning"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/fetch"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/infrastructure/cache"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/parser"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/pipeline"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/skills"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/store"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/migrations"

	"github.com/rs/zerolog"
)

// Container holds every long-lived dependency, built once at startup.
type Container struct {
	Config config.Config
	Logger zerolog.Logger

	DB    database.DB
	Cache *cache.Redis

	Analyses  store.AnalysisStore
	Paths     store.PathStore
	Resources store.ResourceStore

	Extractor *skills.Extractor
	Parser    *parser.Parser
	Fetcher   *fetch.Fetcher
	Analyzer  *analyze.Analyzer
	Generator *learning.Generator
	Runner    *pipeline.Runner

	closers []func() error
}

func NewContainer(cfg config.Config, logger zerolog.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := &Container{Config: cfg, Logger: logger}

	db, err := sqlite.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	c.DB = db
	c.closers = append(c.closers, db.Close)

	mig := migration.Runner{Dir: cfg.Database.MigrationsDir, FS: migrations.Files}
	if err := mig.Run(ctx, db.SQLDB()); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	seed := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seed.Run(ctx, db); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("seed database: %w", err)
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)
	c.closers = append(c.closers, c.Cache.Close)

	c.Analyses = store.NewSQLiteAnalysisStore(db)
	c.Paths = store.NewSQLitePathStore(db)
	c.Resources = store.NewSQLiteResourceStore(db)

	c.Extractor = skills.NewExtractor(logger)
	c.Parser = parser.New(cfg.OCR, logger)
	c.Fetcher = fetch.New(buildSources(cfg, c.Extractor, logger), c.Cache, logger)
	c.Analyzer = analyze.NewAnalyzer(logger)
	c.Generator = learning.NewGenerator(c.Resources, logger)

	c.Runner = pipeline.NewRunner(
		c.Parser,
		c.Extractor,
		c.Fetcher,
		c.Analyzer,
		c.Generator,
		c.Analyses,
		c.Paths,
		logger,
	)

	return c, nil
}

// buildSources orders the job sources by reliability of the data they
// return: the Adzuna API when credentials exist, a scrapeable board
// when one is configured, and the built-in samples as the floor that
// never fails.
func buildSources(cfg config.Config, extractor *skills.Extractor, logger zerolog.Logger) []fetch.Source {
	var sources []fetch.Source

	if cfg.AdzunaConfigured() {
		sources = append(sources, fetch.NewAdzunaSource(cfg.Adzuna, cfg.Fetch, extractor, logger))
	}
	if cfg.Fetch.BoardURL != "" {
		sources = append(sources, fetch.NewBoardSource(cfg.Fetch.BoardURL, cfg.Fetch.Workers, extractor, logger))
	}
	sources = append(sources, fetch.NewSampleSource(logger))

	return sources
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
