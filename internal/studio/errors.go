package studio

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNothingToUpdate is returned by auto-update when the job has no similar keywords.
var ErrNothingToUpdate = errors.New("there are no keywords to auto update")

// ErrAutoUpdateInProgress is returned when an auto-update for the same job has not finished.
var ErrAutoUpdateInProgress = errors.New("auto update already in progress")

// JobNotFoundError indicates the store has no job with the given ID.
type JobNotFoundError struct {
	JobID uuid.UUID
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// StoreError wraps a failure from the persistence collaborator.
type StoreError struct {
	Op    string
	JobID uuid.UUID
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s %s: %v", e.Op, e.JobID, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
