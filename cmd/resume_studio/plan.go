package main

import (
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/keywords"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/spf13/cobra"
)

func newPlanCmd(g *globalFlags) *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the replacements an auto-update would make",
		Long: `For every similar keyword, pairs the resume's phrasing of the skill with the job's phrasing
and writes the list as a conversion plan. The resume text is not touched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, g, flags)
			if err != nil {
				return err
			}

			job, err := loadJob(cmd, cfg)
			if err != nil {
				return err
			}

			similar := keywords.Similar(job.Keywords, job.ResumeKeywords)
			plan := types.ConversionPlan{Conversions: keywords.PlanConversions(similar, job.ResumeKeywords)}

			if p := printer(cmd.ErrOrStderr(), cfg); p != nil {
				p.PrintConversions(plan.Conversions)
			}
			return writeJSON(cmd, cfg.Out, plan, schemas.ConversionPlanSchema)
		},
	}

	cmd.Flags().StringVarP(&flags.Job, "job", "j", "", "Path to job JSON document")
	cmd.Flags().StringVarP(&flags.Out, "out", "o", "", "Path to output plan JSON (default: stdout)")
	return cmd
}
