package rendering

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-studio/internal/types"
)

// CompilationTimeout is the maximum time to wait for pdflatex
const CompilationTimeout = 30 * time.Second

// compiler is the pdflatex binary; tests point it elsewhere.
var compiler = "pdflatex"

// CompilePDF compiles a LaTeX document in a scratch directory and returns the PDF bytes.
// A PDF produced despite LaTeX errors is still returned, together with a *CompilationError.
func CompilePDF(ctx context.Context, tex string) ([]byte, error) {
	if _, err := exec.LookPath(compiler); err != nil {
		return nil, ErrCompilerUnavailable
	}

	workDir, err := os.MkdirTemp("", "resume-studio-pdf-*")
	if err != nil {
		return nil, &CompilationError{Message: "failed to create working directory", Cause: err}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(tex), 0644); err != nil {
		return nil, &CompilationError{Message: "failed to write LaTeX source", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	// -interaction=nonstopmode keeps pdflatex from waiting on stdin after an error.
	cmd := exec.CommandContext(ctx, compiler, "-interaction=nonstopmode", "-halt-on-error",
		"-output-directory", workDir, texPath)
	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output
	runErr := cmd.Run()

	pdf, readErr := os.ReadFile(filepath.Join(workDir, "resume.pdf"))
	if readErr != nil {
		return nil, &CompilationError{
			Message:   "PDF was not generated",
			LogOutput: output.String(),
			Cause:     firstErr(runErr, readErr),
		}
	}
	if runErr != nil {
		return pdf, &CompilationError{
			Message:   "compilation completed with errors (PDF may be incomplete)",
			LogOutput: output.String(),
			Cause:     runErr,
		}
	}
	return pdf, nil
}

// RenderResumePDF renders the job's resume with DefaultTemplate and compiles it.
func RenderResumePDF(ctx context.Context, job *types.Job) ([]byte, error) {
	tex, err := RenderResumeLaTeX(job)
	if err != nil {
		return nil, err
	}
	pdf, err := CompilePDF(ctx, tex)
	if err != nil {
		return nil, fmt.Errorf("failed to compile resume: %w", err)
	}
	return pdf, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
