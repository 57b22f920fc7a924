package studio

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanAutoUpdate(t *testing.T) {
	job := sampleJob()
	original := job.ResumeText

	result, err := PlanAutoUpdate(job)
	require.NoError(t, err)

	assert.Equal(t, []types.ConversionPair{
		{From: "JS", To: "JavaScript"},
		{From: "k8s", To: "Kubernetes"},
	}, result.Conversions)
	assert.Equal(t, "I know JavaScript and have used JavaScript in production.\nDeployed Go services to Kubernetes.", result.Job.ResumeText)
	assert.Equal(t, original, job.ResumeText, "input job must not be modified")
}

func TestPlanAutoUpdate_NothingToUpdate(t *testing.T) {
	job := sampleJob()
	job.ResumeKeywords = []types.Keyword{{Skill: "go", Value: "Go"}}

	_, err := PlanAutoUpdate(job)
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestAutoUpdate(t *testing.T) {
	job := sampleJob()
	store := newMemoryStore(job)
	c := newMemoryCache()
	s := newTestService(store, c)

	result, err := s.AutoUpdate(context.Background(), job.ID)
	require.NoError(t, err)

	assert.Len(t, result.Conversions, 2)
	assert.Contains(t, result.Job.ResumeText, "JavaScript")
	assert.NotContains(t, result.Job.ResumeText, "JS ")
	assert.Equal(t, 1, store.updates)
	assert.Equal(t, 1, c.deletes)

	stored, err := store.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Job.ResumeText, stored.ResumeText)
}

func TestAutoUpdate_NotFound(t *testing.T) {
	s := newTestService(newMemoryStore(), newMemoryCache())

	_, err := s.AutoUpdate(context.Background(), uuid.New())
	var notFound *JobNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestAutoUpdate_NothingToUpdateDoesNotPersist(t *testing.T) {
	job := sampleJob()
	job.ResumeKeywords = nil
	store := newMemoryStore(job)
	s := newTestService(store, newMemoryCache())

	_, err := s.AutoUpdate(context.Background(), job.ID)
	assert.True(t, errors.Is(err, ErrNothingToUpdate))
	assert.Equal(t, 0, store.updates)
}

func TestAutoUpdate_RejectsConcurrentCallForSameJob(t *testing.T) {
	job := sampleJob()
	store := newMemoryStore(job)
	s := newTestService(store, newMemoryCache())

	entered := make(chan struct{})
	proceed := make(chan struct{})
	store.onUpdate = func() {
		close(entered)
		<-proceed
	}

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = s.AutoUpdate(context.Background(), job.ID)
	}()

	<-entered
	_, err := s.AutoUpdate(context.Background(), job.ID)
	assert.ErrorIs(t, err, ErrAutoUpdateInProgress)

	close(proceed)
	wg.Wait()
	require.NoError(t, firstErr)

	// The guard is released once the first update finishes. Resume keywords are only
	// refreshed by re-extraction, so the job still has similar keywords to plan for.
	store.onUpdate = nil
	_, err = s.AutoUpdate(context.Background(), job.ID)
	assert.NoError(t, err)
}

func TestAutoUpdate_DifferentJobsRunIndependently(t *testing.T) {
	a, b := sampleJob(), sampleJob()
	store := newMemoryStore(a, b)
	s := newTestService(store, newMemoryCache())

	entered := make(chan struct{}, 2)
	proceed := make(chan struct{})
	store.onUpdate = func() {
		entered <- struct{}{}
		<-proceed
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uuid.UUID{a.ID, b.ID} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.AutoUpdate(context.Background(), id)
		}()
	}
	<-entered
	<-entered
	close(proceed)
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, 2, store.updates)
}
