// Package rendering exports resume text as a LaTeX document.
package rendering

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resume-studio/internal/types"
)

// DefaultTemplate lays the resume out one paragraph per line, in the order the text has.
const DefaultTemplate = `\documentclass[11pt]{article}
\usepackage[margin=0.75in]{geometry}
\setlength{\parindent}{0pt}
\pagestyle{empty}
\begin{document}
{{- if .Title}}
% {{.Title}}{{if .Company}} at {{.Company}}{{end}}
{{- end}}
{{range .Lines}}
{{- if .Blank}}
\vspace{0.5\baselineskip}
{{- else}}
{{.Text}}\par
{{- end}}
{{- end}}
\end{document}
`

// TemplateData is passed to the resume template. All strings are already escaped.
type TemplateData struct {
	Title   string
	Company string
	Lines   []Line
}

// Line is one line of resume text; blank lines become vertical space.
type Line struct {
	Text  string
	Blank bool
}

// RenderResumeLaTeX renders the job's resume text with DefaultTemplate.
func RenderResumeLaTeX(job *types.Job) (string, error) {
	tmpl, err := template.New("resume").Parse(DefaultTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse default template", Cause: err}
	}
	return execute(tmpl, job)
}

// RenderResumeLaTeXWithTemplate renders the job's resume text with the template at templatePath.
func RenderResumeLaTeXWithTemplate(job *types.Job, templatePath string) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
	}).Parse(string(content))
	if err != nil {
		return "", &TemplateError{Message: "failed to parse template", Cause: err}
	}
	return execute(tmpl, job)
}

func execute(tmpl *template.Template, job *types.Job) (string, error) {
	if job == nil {
		return "", &RenderError{Message: "no job to render"}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, BuildTemplateData(job)); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return result.String(), nil
}

// BuildTemplateData splits the resume into escaped lines.
func BuildTemplateData(job *types.Job) *TemplateData {
	text := strings.ReplaceAll(job.ResumeText, "\r\n", "\n")
	raw := strings.Split(text, "\n")

	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			lines = append(lines, Line{Blank: true})
			continue
		}
		lines = append(lines, Line{Text: EscapeLaTeX(trimmed)})
	}

	return &TemplateData{
		Title:   EscapeLaTeX(job.Title),
		Company: EscapeLaTeX(job.Company),
		Lines:   lines,
	}
}
