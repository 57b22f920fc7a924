package main

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/spf13/cobra"
)

func newImportCmd(g *globalFlags) *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store a job document in the database",
		Long:  "Validates a job document and stores it. Its resume text is kept as the original that reset restores.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, g, flags)
			if err != nil {
				return err
			}

			job, err := loadJob(cmd, cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			b, err := openBackend(ctx, cfg)
			if err != nil {
				return err
			}
			defer b.Close()

			created, err := b.studio.CreateJob(ctx, &types.JobDocument{
				Title:          job.Title,
				Company:        job.Company,
				Description:    job.Description,
				Keywords:       job.Keywords,
				ResumeKeywords: job.ResumeKeywords,
				ResumeText:     job.ResumeText,
				Score:          job.Score,
			})
			if err != nil {
				return fmt.Errorf("failed to import job: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported job %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Job, "job", "j", "", "Path to job JSON document (required)")
	return cmd
}
