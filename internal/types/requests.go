// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// ClassifyRequest asks for a keyword comparison without touching stored jobs.
type ClassifyRequest struct {
	Keywords       []Keyword `json:"keywords" validate:"dive"`
	ResumeKeywords []Keyword `json:"resume_keywords" validate:"dive"`
	Score          float64   `json:"score" validate:"gte=0,lte=1"`
}

// PlanRequest asks for the conversion plan of a set of similar keywords.
type PlanRequest struct {
	Similar        []Keyword `json:"similar" validate:"dive"`
	ResumeKeywords []Keyword `json:"resume_keywords" validate:"dive"`
}

// RewriteRequest applies a conversion plan to a text.
type RewriteRequest struct {
	Text        string           `json:"text"`
	Conversions []ConversionPair `json:"conversions" validate:"dive"`
}

// RewriteResponse carries the rewritten text.
type RewriteResponse struct {
	Text string `json:"text"`
}

// SaveResumeRequest stores a manually edited resume body.
type SaveResumeRequest struct {
	ResumeText string `json:"resume_text"`
}

// JobDocument is a job as read from a JSON file on disk.
type JobDocument struct {
	Title          string    `json:"title" validate:"required"`
	Company        string    `json:"company,omitempty"`
	Description    string    `json:"description,omitempty"`
	Keywords       []Keyword `json:"keywords" validate:"dive"`
	ResumeKeywords []Keyword `json:"resume_keywords" validate:"dive"`
	ResumeText     string    `json:"resume_text"`
	Score          float64   `json:"score" validate:"gte=0,lte=1"`
}

// Job converts the document into a Job with the original resume text set.
func (d *JobDocument) Job() *Job {
	return &Job{
		Title:              d.Title,
		Company:            d.Company,
		Description:        d.Description,
		Keywords:           d.Keywords,
		ResumeKeywords:     d.ResumeKeywords,
		ResumeText:         d.ResumeText,
		OriginalResumeText: d.ResumeText,
		Score:              d.Score,
	}
}

var validate = validator.New()

// Validate validates the ClassifyRequest using the validator.
func (r *ClassifyRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the PlanRequest using the validator.
func (r *PlanRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the RewriteRequest using the validator.
func (r *RewriteRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the JobDocument using the validator.
func (d *JobDocument) Validate() error {
	return validate.Struct(d)
}
