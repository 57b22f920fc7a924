// Package studio orchestrates the resume studio workflow: keyword scorecards, automatic
// resume updates, manual edits and resets, on top of a job store.
package studio

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/cache"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/keywords"
	"github.com/jonathan/resume-studio/internal/metrics"
	"github.com/jonathan/resume-studio/internal/types"
	"golang.org/x/sync/errgroup"
)

// reportWorkers bounds concurrent report builds in Reports.
const reportWorkers = 4

// Store is the persistence collaborator. Lookups and updates return nil, nil when the
// job does not exist.
type Store interface {
	CreateJob(ctx context.Context, input *db.JobCreateInput) (*types.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error)
	ListJobs(ctx context.Context, limit int) ([]types.Job, error)
	UpdateResumeText(ctx context.Context, id uuid.UUID, text string) (*types.Job, error)
	ResetResumeText(ctx context.Context, id uuid.UUID) (*types.Job, error)
}

// Service runs the studio workflow against a Store.
type Service struct {
	store   Store
	reports cache.ReportCache
	metrics *metrics.Recorder

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// NewService creates a Service. reports may be nil, in which case nothing is cached;
// recorder may be nil, in which case nothing is recorded.
func NewService(store Store, reports cache.ReportCache, recorder *metrics.Recorder) *Service {
	if reports == nil {
		reports = cache.NopCache{}
	}
	return &Service{
		store:    store,
		reports:  reports,
		metrics:  recorder,
		inFlight: make(map[uuid.UUID]struct{}),
	}
}

// GetJob returns the job or a *JobNotFoundError.
func (s *Service) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		return nil, &StoreError{Op: "get job", JobID: id, Cause: err}
	}
	if job == nil {
		return nil, &JobNotFoundError{JobID: id}
	}
	return job, nil
}

// CreateJob validates a job document and starts tracking it. The uploaded resume text
// becomes the text that ResetResume restores.
func (s *Service) CreateJob(ctx context.Context, doc *types.JobDocument) (*types.Job, error) {
	if err := keywords.ValidateJob(doc.Job()); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job document: %w", err)
	}

	job, err := s.store.CreateJob(ctx, &db.JobCreateInput{
		Title:          doc.Title,
		Company:        doc.Company,
		Description:    doc.Description,
		Keywords:       doc.Keywords,
		ResumeKeywords: doc.ResumeKeywords,
		ResumeText:     doc.ResumeText,
		Score:          doc.Score,
	})
	if err != nil {
		return nil, &StoreError{Op: "create job", Cause: err}
	}
	log.Printf("[studio] created job %s (%s)", job.ID, job.Title)
	return job, nil
}

// ListJobs returns the most recently updated jobs.
func (s *Service) ListJobs(ctx context.Context, limit int) ([]types.Job, error) {
	jobs, err := s.store.ListJobs(ctx, limit)
	if err != nil {
		return nil, &StoreError{Op: "list jobs", Cause: err}
	}
	return jobs, nil
}

// Report returns the keyword scorecard for a job, served from the cache when the job
// content has not changed since it was computed.
func (s *Service) Report(ctx context.Context, id uuid.UUID) (*types.KeywordReport, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.reportFor(ctx, job)
}

func (s *Service) reportFor(ctx context.Context, job *types.Job) (*types.KeywordReport, error) {
	jobID := job.ID.String()
	version := ContentVersion(job)

	cached, err := s.reports.Get(ctx, jobID, version)
	if err != nil {
		log.Printf("[cache] report lookup for %s failed: %v", jobID, err)
	}
	if cached != nil {
		return cached, nil
	}

	report, err := keywords.BuildReport(job)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveClassification(len(report.Matching), len(report.Similar), len(report.Missing))

	if err := s.reports.Set(ctx, jobID, version, report); err != nil {
		log.Printf("[cache] storing report for %s failed: %v", jobID, err)
	}
	return report, nil
}

// Reports returns scorecards for up to limit recent jobs, in the store's order.
func (s *Service) Reports(ctx context.Context, limit int) ([]*types.KeywordReport, error) {
	jobs, err := s.ListJobs(ctx, limit)
	if err != nil {
		return nil, err
	}

	reports := make([]*types.KeywordReport, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportWorkers)
	for i := range jobs {
		g.Go(func() error {
			report, err := s.reportFor(gctx, &jobs[i])
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// SaveResume stores a manually edited resume body.
func (s *Service) SaveResume(ctx context.Context, id uuid.UUID, text string) (*types.Job, error) {
	job, err := s.store.UpdateResumeText(ctx, id, text)
	if err != nil {
		return nil, &StoreError{Op: "save resume", JobID: id, Cause: err}
	}
	if job == nil {
		return nil, &JobNotFoundError{JobID: id}
	}
	s.invalidate(ctx, id)
	return job, nil
}

// ResetResume restores the resume body originally uploaded for the job.
func (s *Service) ResetResume(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	job, err := s.store.ResetResumeText(ctx, id)
	if err != nil {
		return nil, &StoreError{Op: "reset resume", JobID: id, Cause: err}
	}
	if job == nil {
		return nil, &JobNotFoundError{JobID: id}
	}
	s.invalidate(ctx, id)
	log.Printf("[studio] reset resume for job %s", id)
	return job, nil
}

func (s *Service) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.reports.Delete(ctx, id.String()); err != nil {
		log.Printf("[cache] invalidating report for %s failed: %v", id, err)
	}
}

// ContentVersion fingerprints the parts of a job that affect its report.
func ContentVersion(job *types.Job) string {
	data, _ := json.Marshal(struct {
		Keywords       []types.Keyword `json:"k"`
		ResumeKeywords []types.Keyword `json:"r"`
		Score          float64         `json:"s"`
	}{job.Keywords, job.ResumeKeywords, job.Score})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
