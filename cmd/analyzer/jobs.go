package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/app"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/config"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/logging"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/pipeline"

	"github.com/spf13/cobra"
)

func newJobsCmd() *cobra.Command {
	var (
		domain string
		count  int
		source string
	)

	cmd := &cobra.Command{
		Use:          "jobs",
		Short:        "Fetch and print job postings without analyzing a resume",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobs(domain, count, source)
		},
	}

	cmd.Flags().StringVar(&domain, "domain", pipeline.DefaultDomain, "Job domain to fetch")
	cmd.Flags().IntVar(&count, "count", 10, "Number of jobs to fetch")
	cmd.Flags().StringVar(&source, "source", "auto", "Job source: auto, adzuna, board, or samples")

	return cmd
}

func runJobs(domain string, count int, source string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.Setup(cfg.App.Environment, cfg.App.LogLevel)

	c, err := app.NewContainer(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var jobs []job.Job
	if source != "" && source != "auto" {
		jobs, err = c.Fetcher.FetchFrom(ctx, source, domain, count)
	} else {
		jobs, err = c.Fetcher.Fetch(ctx, domain, count)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Fetched %d jobs for %q\n\n", len(jobs), domain)
	for i, j := range jobs {
		fmt.Printf("%2d. %s - %s (%s) [%s]\n", i+1, j.Title, j.Company, j.Location, j.Source)
		if len(j.RequiredSkills) > 0 {
			fmt.Printf("    skills: %s\n", strings.Join(j.RequiredSkills, ", "))
		}
	}

	return nil
}
