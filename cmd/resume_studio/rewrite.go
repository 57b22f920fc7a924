package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/studio"
	"github.com/spf13/cobra"
)

func newRewriteCmd(g *globalFlags) *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite a job document's resume text offline",
		Long: `Runs classify, plan and rewrite on a job document and writes the updated resume text.
Fails when the resume has no similar keywords to update.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, g, flags)
			if err != nil {
				return err
			}
			if cfg.Out == "" {
				return fmt.Errorf("--out is required")
			}

			job, err := loadJob(cmd, cfg)
			if err != nil {
				return err
			}

			result, err := studio.PlanAutoUpdate(job)
			if errors.Is(err, studio.ErrNothingToUpdate) {
				return fmt.Errorf("%s: %w", cfg.Job, err)
			}
			if err != nil {
				return err
			}

			if p := printer(cmd.ErrOrStderr(), cfg); p != nil {
				p.PrintConversions(result.Conversions)
			}

			if err := writeFile(cfg.Out, []byte(result.Job.ResumeText)); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied %d conversions\n", len(result.Conversions))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", cfg.Out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Job, "job", "j", "", "Path to job JSON document")
	cmd.Flags().StringVarP(&flags.Out, "out", "o", "", "Path to output resume text (required)")
	return cmd
}
