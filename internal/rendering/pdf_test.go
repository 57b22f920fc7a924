package rendering

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompiler installs a shell script as the compiler for the duration of the test.
func fakeCompiler(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script compiler requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-pdflatex")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))

	old := compiler
	compiler = path
	t.Cleanup(func() { compiler = old })
}

func TestCompilePDF_CompilerMissing(t *testing.T) {
	old := compiler
	compiler = "resume-studio-no-such-compiler"
	defer func() { compiler = old }()

	_, err := CompilePDF(context.Background(), `\documentclass{article}`)
	assert.ErrorIs(t, err, ErrCompilerUnavailable)
}

func TestCompilePDF_FakeCompiler(t *testing.T) {
	// The last argument is the .tex path; "compile" by copying it next to itself.
	fakeCompiler(t, `for a; do last=$a; done; cp "$last" "${last%.tex}.pdf"`)

	pdf, err := CompilePDF(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(pdf))
}

func TestCompilePDF_Failure(t *testing.T) {
	fakeCompiler(t, `echo "! Undefined control sequence."; exit 1`)

	pdf, err := CompilePDF(context.Background(), "broken")
	assert.Nil(t, pdf)

	var compileErr *CompilationError
	require.ErrorAs(t, err, &compileErr)
	assert.Contains(t, compileErr.LogOutput, "Undefined control sequence")
}

func TestCompilePDF_PartialOutput(t *testing.T) {
	fakeCompiler(t, `for a; do last=$a; done; cp "$last" "${last%.tex}.pdf"; exit 1`)

	pdf, err := CompilePDF(context.Background(), "partial")
	assert.Equal(t, "partial", string(pdf))

	var compileErr *CompilationError
	require.ErrorAs(t, err, &compileErr)
	assert.Contains(t, compileErr.Message, "may be incomplete")
}

func TestRenderResumePDF_Pdflatex(t *testing.T) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		t.Skip("pdflatex not available, skipping compilation test")
	}

	pdf, err := RenderResumePDF(context.Background(), &types.Job{
		Title:      "Engineer",
		ResumeText: "Shipped 100% of features & fixed #bugs.",
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
