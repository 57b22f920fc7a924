package main

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/spf13/cobra"
)

func newAutoUpdateCmd(g *globalFlags) *cobra.Command {
	var jobID string

	cmd := &cobra.Command{
		Use:   "auto-update",
		Short: "Auto-update a stored job's resume",
		Long:  "Rewrites the stored resume of a job so its similar keywords use the job's phrasing, and saves it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, g, config.Config{})
			if err != nil {
				return err
			}
			id, err := parseJobID(jobID)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			b, err := openBackend(ctx, cfg)
			if err != nil {
				return err
			}
			defer b.Close()

			result, err := b.studio.AutoUpdate(ctx, id)
			if err != nil {
				return fmt.Errorf("auto update failed: %w", err)
			}

			if p := printer(cmd.ErrOrStderr(), cfg); p != nil {
				p.PrintConversions(result.Conversions)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully auto-updated job %s (%d conversions)\n", id, len(result.Conversions))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobID, "job-id", "", "ID of the stored job (required)")
	if err := cmd.MarkFlagRequired("job-id"); err != nil {
		panic(fmt.Sprintf("failed to mark job-id flag as required: %v", err))
	}
	return cmd
}
