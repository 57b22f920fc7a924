package studio

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/keywords"
	"github.com/jonathan/resume-studio/internal/metrics"
	"github.com/jonathan/resume-studio/internal/types"
)

// AutoUpdateResult describes one automatic resume update.
type AutoUpdateResult struct {
	Job         *types.Job             `json:"job"`
	Conversions []types.ConversionPair `json:"conversions"`
}

// PlanAutoUpdate runs classify, plan and rewrite on a job without persisting anything.
// The returned job is a copy carrying the rewritten resume text.
func PlanAutoUpdate(job *types.Job) (*AutoUpdateResult, error) {
	if err := keywords.ValidateJob(job); err != nil {
		return nil, err
	}

	similar := keywords.Similar(job.Keywords, job.ResumeKeywords)
	if len(similar) == 0 {
		return nil, ErrNothingToUpdate
	}

	pairs := keywords.PlanConversions(similar, job.ResumeKeywords)
	updated := *job
	updated.ResumeText = keywords.Rewrite(job.ResumeText, pairs)

	return &AutoUpdateResult{Job: &updated, Conversions: pairs}, nil
}

// AutoUpdate rewrites the stored resume so similar keywords use the job's phrasing, then
// persists it. Only one auto-update per job runs at a time; a second call while the first
// is still running fails with ErrAutoUpdateInProgress.
func (s *Service) AutoUpdate(ctx context.Context, id uuid.UUID) (*AutoUpdateResult, error) {
	if !s.acquire(id) {
		s.metrics.ObserveAutoUpdate(metrics.OutcomeInProgress, 0)
		return nil, ErrAutoUpdateInProgress
	}
	defer s.release(id)

	result, err := s.autoUpdate(ctx, id)
	switch {
	case errors.Is(err, ErrNothingToUpdate):
		s.metrics.ObserveAutoUpdate(metrics.OutcomeNothing, 0)
	case err != nil:
		s.metrics.ObserveAutoUpdate(metrics.OutcomeFailed, 0)
	default:
		s.metrics.ObserveAutoUpdate(metrics.OutcomeUpdated, len(result.Conversions))
	}
	return result, err
}

func (s *Service) autoUpdate(ctx context.Context, id uuid.UUID) (*AutoUpdateResult, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := PlanAutoUpdate(job)
	if err != nil {
		return nil, err
	}

	saved, err := s.store.UpdateResumeText(ctx, id, result.Job.ResumeText)
	if err != nil {
		return nil, &StoreError{Op: "save auto update", JobID: id, Cause: err}
	}
	if saved == nil {
		return nil, &JobNotFoundError{JobID: id}
	}
	s.invalidate(ctx, id)

	log.Printf("[studio] auto-updated job %s with %d conversions", id, len(result.Conversions))
	result.Job = saved
	return result, nil
}

func (s *Service) acquire(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[id]; busy {
		return false
	}
	s.inFlight[id] = struct{}{}
	return true
}

func (s *Service) release(id uuid.UUID) {
	s.mu.Lock()
	delete(s.inFlight, id)
	s.mu.Unlock()
}
