package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/app"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/config"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/logging"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/pipeline"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/report"

	"github.com/spf13/cobra"
)

const rule = 70

func newRootCmd() *cobra.Command {
	var (
		mode      string
		domain    string
		jobCount  int
		source    string
		output    string
		chartsDir string
		noCharts  bool
	)

	cmd := &cobra.Command{
		Use:   "analyzer <resume-file>",
		Short: "Analyze a resume against the job market",
		Long: `Analyze a resume against current job postings.

The resume (PDF, DOCX, or image) is parsed, its skills are extracted
and compared with the skills demanded by fetched postings, and the
gaps become a four-week learning path.

Example:
  analyzer resume.pdf
  analyzer resume.pdf --domain "Data Scientist" --jobs 30
  analyzer --mode server`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch mode {
			case "server":
				return runServe("")
			case "cli":
			default:
				return fmt.Errorf("unknown mode %q (expected cli or server)", mode)
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return runAnalyze(args[0], domain, jobCount, source, output, chartsDir, noCharts)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "cli", "Run mode: cli or server")
	cmd.Flags().StringVar(&domain, "domain", pipeline.DefaultDomain, "Job domain to analyze against")
	cmd.Flags().IntVar(&jobCount, "jobs", pipeline.DefaultJobCount, "Number of jobs to analyze (1-200)")
	cmd.Flags().StringVar(&source, "source", "auto", "Job source: auto, adzuna, board, or samples")
	cmd.Flags().StringVar(&output, "output", "", "Report file path (default from config)")
	cmd.Flags().StringVar(&chartsDir, "charts-dir", "", "Chart output directory (default from config)")
	cmd.Flags().BoolVar(&noCharts, "no-charts", false, "Skip chart generation")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newJobsCmd())

	return cmd
}

func runAnalyze(resumePath, domain string, jobCount int, source, output, chartsDir string, noCharts bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.Setup(cfg.App.Environment, cfg.App.LogLevel)

	if output == "" {
		output = cfg.Output.ReportPath
	}
	if chartsDir == "" {
		chartsDir = cfg.Output.ChartsDir
	}
	if jobCount < 1 || jobCount > 200 {
		return fmt.Errorf("jobs must be between 1 and 200, got %d", jobCount)
	}

	c, err := app.NewContainer(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printBanner()
	fmt.Printf("Processing resume: %s\n", resumePath)
	fmt.Printf("Job domain: %s\n", domain)
	fmt.Printf("Jobs to analyze: %d\n\n", jobCount)

	rep, err := c.Runner.Run(ctx, pipeline.Params{
		ResumePath: resumePath,
		Domain:     domain,
		JobCount:   jobCount,
		Source:     source,
		Progress: func(stage string, percent int) {
			fmt.Printf("[%3d%%] %s\n", percent, stage)
		},
	})
	if err != nil {
		fmt.Println("\nAnalysis failed. Check logs for details.")
		return err
	}

	fmt.Println()
	printRule()
	fmt.Println("ANALYSIS COMPLETE!")
	printRule()
	fmt.Println(report.Summary(rep.Result, rep.Plan.ResourceCount()))

	if err := report.WriteText(output, rep.Result, rep.Plan); err != nil {
		logger.Error().Err(err).Msg("export report")
	} else {
		fmt.Printf("\nResults exported to: %s\n", output)
	}

	if !noCharts {
		charts := report.NewCharts(chartsDir, logger)
		if _, err := charts.RenderAll(rep.Result, rep.Matches, rep.Resume.Skills); err != nil {
			logger.Error().Err(err).Msg("render charts")
		} else {
			fmt.Printf("Charts saved to: %s/\n", chartsDir)
		}
	}

	fmt.Println()
	printRule()
	fmt.Println("LEARNING PATH")
	printRule()
	fmt.Println(rep.Plan.FormatText())

	return nil
}

func printBanner() {
	printRule()
	fmt.Println("JOB MARKET ANALYZER - AI-Powered Career Analysis Tool")
	printRule()
	fmt.Println()
}

func printRule() {
	fmt.Println(strings.Repeat("=", rule))
}
