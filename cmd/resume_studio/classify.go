package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/keywords"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/spf13/cobra"
)

func newClassifyCmd(g *globalFlags) *cobra.Command {
	var (
		flags config.Config
		jobID string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Score a resume's keywords against a job",
		Long: `Splits the job's keywords into matching, similar and missing, relative to the resume's
keywords, and writes the scorecard as JSON. Reads a job document with --job, or a stored job
with --job-id.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, g, flags)
			if err != nil {
				return err
			}

			var report *types.KeywordReport
			if jobID != "" {
				report, err = storedReport(cmd.Context(), cfg, jobID)
			} else {
				var job *types.Job
				if job, err = loadJob(cmd, cfg); err == nil {
					report, err = keywords.BuildReport(job)
				}
			}
			if err != nil {
				return err
			}

			if p := printer(cmd.ErrOrStderr(), cfg); p != nil {
				p.PrintScorecard(report)
			}
			return writeJSON(cmd, cfg.Out, report, schemas.KeywordReportSchema)
		},
	}

	cmd.Flags().StringVarP(&flags.Job, "job", "j", "", "Path to job JSON document")
	cmd.Flags().StringVar(&jobID, "job-id", "", "ID of a stored job (uses the database instead of --job)")
	cmd.Flags().StringVarP(&flags.Out, "out", "o", "", "Path to output report JSON (default: stdout)")
	cmd.MarkFlagsMutuallyExclusive("job", "job-id")
	return cmd
}

func storedReport(ctx context.Context, cfg config.Config, rawID string) (*types.KeywordReport, error) {
	id, err := parseJobID(rawID)
	if err != nil {
		return nil, err
	}

	b, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	report, err := b.studio.Report(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}
	return report, nil
}
