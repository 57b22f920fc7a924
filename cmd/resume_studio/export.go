package main

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/spf13/cobra"
)

func newExportCmd(g *globalFlags) *cobra.Command {
	var (
		flags config.Config
		jobID string
		pdf   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a resume as LaTeX or PDF",
		Long: `Renders the resume text of a job document (--job) or a stored job (--job-id) as a LaTeX document.
With --pdf the document is compiled with pdflatex and the PDF is written instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, g, flags)
			if err != nil {
				return err
			}
			if cfg.Out == "" {
				return fmt.Errorf("--out is required")
			}

			job, err := exportSource(cmd, cfg, jobID)
			if err != nil {
				return err
			}

			var tex string
			if cfg.Template != "" {
				tex, err = rendering.RenderResumeLaTeXWithTemplate(job, cfg.Template)
			} else {
				tex, err = rendering.RenderResumeLaTeX(job)
			}
			if err != nil {
				return fmt.Errorf("failed to render LaTeX: %w", err)
			}

			if pdf {
				out, err := rendering.CompilePDF(cmd.Context(), tex)
				if err != nil {
					return fmt.Errorf("failed to compile PDF: %w", err)
				}
				if err := writeFile(cfg.Out, out); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully compiled PDF resume (%d bytes)\n", len(out))
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", cfg.Out)
				return nil
			}

			if err := writeFile(cfg.Out, []byte(tex)); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully rendered LaTeX resume\n")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", cfg.Out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Job, "job", "j", "", "Path to job JSON document")
	cmd.Flags().StringVar(&jobID, "job-id", "", "ID of a stored job (uses the database instead of --job)")
	cmd.Flags().StringVarP(&flags.Out, "out", "o", "", "Path to output file (required)")
	cmd.Flags().StringVarP(&flags.Template, "template", "t", "", "Path to a LaTeX text/template (default: built-in)")
	cmd.Flags().BoolVar(&pdf, "pdf", false, "Compile the LaTeX to PDF with pdflatex")
	cmd.MarkFlagsMutuallyExclusive("job", "job-id")
	return cmd
}

func exportSource(cmd *cobra.Command, cfg config.Config, rawID string) (*types.Job, error) {
	if rawID == "" {
		return loadJob(cmd, cfg)
	}

	id, err := parseJobID(rawID)
	if err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	b, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	return b.studio.GetJob(ctx, id)
}
