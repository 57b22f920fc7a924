package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-studio/internal/types"
)

// -----------------------------------------------------------------------------
// Job Methods
// -----------------------------------------------------------------------------

const jobColumns = `id, title, company, description, keywords, resume_keywords,
		        resume_text, original_resume_text, score, created_at, updated_at`

// JobCreateInput is the data needed to start tracking a job.
// ResumeText also becomes the original text that ResetResumeText restores.
type JobCreateInput struct {
	Title          string
	Company        string
	Description    string
	Keywords       []types.Keyword
	ResumeKeywords []types.Keyword
	ResumeText     string
	Score          float64
}

// CreateJob inserts a new job and returns it
func (db *DB) CreateJob(ctx context.Context, input *JobCreateInput) (*types.Job, error) {
	keywordsJSON, err := encodeKeywords(input.Keywords)
	if err != nil {
		return nil, err
	}
	resumeKeywordsJSON, err := encodeKeywords(input.ResumeKeywords)
	if err != nil {
		return nil, err
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, description, keywords, resume_keywords,
		                   resume_text, original_resume_text, score)
		 VALUES ($1, $2, $3, $4, $5, $6, $6, $7)
		 RETURNING `+jobColumns,
		input.Title, input.Company, input.Description, keywordsJSON, resumeKeywordsJSON,
		input.ResumeText, input.Score,
	)
	job, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// GetJob retrieves a job by ID. Returns nil, nil when no such job exists.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	row := db.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs retrieves the most recently updated jobs
func (db *DB) ListJobs(ctx context.Context, limit int) ([]types.Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []types.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, nil
}

// UpdateResumeText stores a new resume body for the job and returns the updated record.
// Returns nil, nil when no such job exists.
func (db *DB) UpdateResumeText(ctx context.Context, id uuid.UUID, text string) (*types.Job, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE jobs SET resume_text = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+jobColumns,
		id, text,
	)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resume text: %w", err)
	}
	return job, nil
}

// ResetResumeText restores the resume body that was uploaded when the job was created.
// Returns nil, nil when no such job exists.
func (db *DB) ResetResumeText(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE jobs SET resume_text = original_resume_text, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+jobColumns,
		id,
	)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to reset resume text: %w", err)
	}
	return job, nil
}

// DeleteJob removes a job
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}

func scanJob(row pgx.Row) (*types.Job, error) {
	var job types.Job
	var keywordsJSON, resumeKeywordsJSON []byte

	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Description,
		&keywordsJSON, &resumeKeywordsJSON, &job.ResumeText, &job.OriginalResumeText,
		&job.Score, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if job.Keywords, err = decodeKeywords(keywordsJSON); err != nil {
		return nil, err
	}
	if job.ResumeKeywords, err = decodeKeywords(resumeKeywordsJSON); err != nil {
		return nil, err
	}
	return &job, nil
}

func encodeKeywords(kws []types.Keyword) ([]byte, error) {
	if kws == nil {
		kws = []types.Keyword{}
	}
	data, err := json.Marshal(kws)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}
	return data, nil
}

func decodeKeywords(data []byte) ([]types.Keyword, error) {
	kws := []types.Keyword{}
	if len(data) == 0 {
		return kws, nil
	}
	if err := json.Unmarshal(data, &kws); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
	}
	return kws, nil
}
