package main

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/studio"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJobJSON = `{
  "title": "Platform Engineer",
  "company": "Acme",
  "keywords": [
    {"skill": "js", "value": "JavaScript"},
    {"skill": "k8s", "value": "Kubernetes"},
    {"skill": "go", "value": "Go"},
    {"skill": "rust", "value": "Rust"}
  ],
  "resume_keywords": [
    {"skill": "js", "value": "JS"},
    {"skill": "k8s", "value": "k8s"},
    {"skill": "go", "value": "Go"}
  ],
  "resume_text": "Built JS dashboards.\n\nRan Go services on k8s.",
  "score": 0.8
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs the CLI in-process and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestClassifyCommand_Stdout(t *testing.T) {
	jobFile := writeTemp(t, "job.json", sampleJobJSON)

	stdout, _, err := execute(t, "classify", "--job", jobFile)
	require.NoError(t, err)

	var report types.KeywordReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, []types.Keyword{{Skill: "go", Value: "Go"}}, report.Matching)
	assert.Equal(t, []types.Keyword{{Skill: "js", Value: "JavaScript"}, {Skill: "k8s", Value: "Kubernetes"}}, report.Similar)
	assert.Equal(t, []types.Keyword{{Skill: "rust", Value: "Rust"}}, report.Missing)
	assert.Equal(t, types.BucketCount{Count: 1, Total: 4}, report.MissingInfo)
	assert.Equal(t, "80.00%", report.ScorePercent)
}

func TestClassifyCommand_OutFileAndVerbose(t *testing.T) {
	jobFile := writeTemp(t, "job.json", sampleJobJSON)
	out := filepath.Join(t.TempDir(), "nested", "report.json")

	stdout, stderr, err := execute(t, "classify", "--job", jobFile, "--out", out, "--verbose")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Output: "+out)
	assert.Contains(t, stderr, "RESUME SCORECARD")
	assert.Contains(t, stderr, "Similar Keywords (2 / 4)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"score_percent": "80.00%"`)
}

func TestClassifyCommand_Errors(t *testing.T) {
	invalid := writeTemp(t, "invalid.json", `{"title": "x", "keywords": [{"skill": "", "value": "Go"}], "resume_keywords": [], "resume_text": ""}`)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing job", args: []string{"classify"}, wantErr: "--job is required"},
		{name: "unreadable job", args: []string{"classify", "--job", "/nonexistent/job.json"}, wantErr: "failed to read job file"},
		{name: "empty skill", args: []string{"classify", "--job", invalid}},
		{name: "job and job-id", args: []string{"classify", "--job", invalid, "--job-id", "x"}, wantErr: "none of the others"},
		{name: "stored job without database", args: []string{"classify", "--job-id", "4b7c6f4e-0f7a-4d55-8a43-1b8f0f7f6a11"}, wantErr: "DATABASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestPlanCommand(t *testing.T) {
	jobFile := writeTemp(t, "job.json", sampleJobJSON)
	out := filepath.Join(t.TempDir(), "plan.json")

	_, _, err := execute(t, "plan", "--job", jobFile, "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var plan types.ConversionPlan
	require.NoError(t, json.Unmarshal(data, &plan))
	assert.Equal(t, []types.ConversionPair{
		{From: "JS", To: "JavaScript"},
		{From: "k8s", To: "Kubernetes"},
	}, plan.Conversions)
}

func TestRewriteCommand(t *testing.T) {
	jobFile := writeTemp(t, "job.json", sampleJobJSON)
	out := filepath.Join(t.TempDir(), "resume.txt")

	stdout, _, err := execute(t, "rewrite", "--job", jobFile, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Applied 2 conversions")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Built JavaScript dashboards.\n\nRan Go services on Kubernetes.", string(data))
}

func TestRewriteCommand_NothingToUpdate(t *testing.T) {
	jobFile := writeTemp(t, "job.json", `{
  "title": "Go Developer",
  "keywords": [{"skill": "go", "value": "Go"}],
  "resume_keywords": [{"skill": "go", "value": "Go"}],
  "resume_text": "Go"
}`)

	_, _, err := execute(t, "rewrite", "--job", jobFile, "--out", filepath.Join(t.TempDir(), "out.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, studio.ErrNothingToUpdate)
}

func TestRewriteCommand_RequiresOut(t *testing.T) {
	jobFile := writeTemp(t, "job.json", sampleJobJSON)

	_, _, err := execute(t, "rewrite", "--job", jobFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--out is required")
}

func TestExportCommand(t *testing.T) {
	jobFile := writeTemp(t, "job.json", sampleJobJSON)
	out := filepath.Join(t.TempDir(), "resume.tex")

	_, _, err := execute(t, "export", "--job", jobFile, "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `\documentclass`)
	assert.Contains(t, string(data), `Built JS dashboards.\par`)
}

func TestExportCommand_CustomTemplate(t *testing.T) {
	jobFile := writeTemp(t, "job.json", sampleJobJSON)
	tmpl := writeTemp(t, "resume.tmpl", `{{.Title}}{{range .Lines}}|{{.Text}}{{end}}`)
	out := filepath.Join(t.TempDir(), "resume.tex")

	_, _, err := execute(t, "export", "--job", jobFile, "--template", tmpl, "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer|Built JS dashboards.||Ran Go services on k8s.", string(data))
}

func TestExportCommand_PDF(t *testing.T) {
	jobFile := writeTemp(t, "job.json", sampleJobJSON)
	out := filepath.Join(t.TempDir(), "resume.pdf")

	_, _, err := execute(t, "export", "--job", jobFile, "--pdf", "--out", out)
	if _, lookErr := exec.LookPath("pdflatex"); lookErr != nil {
		require.Error(t, err)
		assert.ErrorIs(t, err, rendering.ErrCompilerUnavailable)
		assert.NoFileExists(t, out)
		return
	}
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestConfigFile(t *testing.T) {
	jobFile := writeTemp(t, "job.json", sampleJobJSON)
	out := filepath.Join(t.TempDir(), "plan.json")
	configFile := writeTemp(t, "config.json", `{"job": "`+jobFile+`", "out": "`+out+`"}`)

	_, _, err := execute(t, "plan", "--config", configFile)
	require.NoError(t, err)
	assert.FileExists(t, out)

	_, _, err = execute(t, "plan", "--config", writeTemp(t, "bad.json", `{"port": -5}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'port'")
}

func TestDatabaseCommands_RequireDatabaseURL(t *testing.T) {
	jobFile := writeTemp(t, "job.json", sampleJobJSON)

	tests := [][]string{
		{"migrate"},
		{"auto-update", "--job-id", "4b7c6f4e-0f7a-4d55-8a43-1b8f0f7f6a11"},
		{"import", "--job", jobFile},
		{"serve"},
	}

	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "DATABASE_URL")
		})
	}
}

func TestAutoUpdateCommand_InvalidJobID(t *testing.T) {
	_, _, err := execute(t, "auto-update", "--job-id", "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid job-id")
}
