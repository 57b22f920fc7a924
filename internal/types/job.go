// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Job is a tracked job posting together with the resume tailored for it.
// Keywords are the terms the posting requires; ResumeKeywords are the terms
// detected in ResumeText. Score is computed upstream and only displayed.
type Job struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Company            string    `json:"company,omitempty"`
	Description        string    `json:"description,omitempty"`
	Keywords           []Keyword `json:"keywords"`
	ResumeKeywords     []Keyword `json:"resume_keywords"`
	ResumeText         string    `json:"resume_text"`
	OriginalResumeText string    `json:"original_resume_text,omitempty"`
	Score              float64   `json:"score"`
	CreatedAt          time.Time `json:"created_at,omitempty"`
	UpdatedAt          time.Time `json:"updated_at,omitempty"`
}
