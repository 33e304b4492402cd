// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jobs tracks processing runs through their lifecycle so callers
// can report on a batch after the fact.
package jobs

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

// Status is a job lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Job records one processing run. Stats is set only on completion, Error
// only on failure.
type Job struct {
	ID        string
	Queries   []string
	Status    Status
	CreatedAt time.Time
	StartedAt time.Time
	EndedAt   time.Time
	Stats     *types.ProcessingStats
	Error     string
}

// Tracker holds jobs in memory. Safe for concurrent use.
type Tracker struct {
	mu   sync.Mutex
	jobs map[string]*Job
	now  func() time.Time
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		jobs: make(map[string]*Job),
		now:  time.Now,
	}
}

// Create registers a new pending job and returns its identifier.
func (t *Tracker) Create(queries []string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := uuid.NewString()
	t.jobs[id] = &Job{
		ID:        id,
		Queries:   append([]string(nil), queries...),
		Status:    StatusPending,
		CreatedAt: t.now().UTC(),
	}
	return id
}

// Start moves a pending job to running.
func (t *Tracker) Start(id string) error {
	return t.transition(id, StatusPending, StatusRunning, func(j *Job) {
		j.StartedAt = t.now().UTC()
	})
}

// Complete moves a running job to completed and attaches its stats.
func (t *Tracker) Complete(id string, stats types.ProcessingStats) error {
	return t.transition(id, StatusRunning, StatusCompleted, func(j *Job) {
		j.EndedAt = t.now().UTC()
		j.Stats = &stats
	})
}

// Fail moves a running job to failed and records the cause.
func (t *Tracker) Fail(id string, cause error) error {
	return t.transition(id, StatusRunning, StatusFailed, func(j *Job) {
		j.EndedAt = t.now().UTC()
		if cause != nil {
			j.Error = cause.Error()
		}
	})
}

// transition applies the state change under the lock. Terminal jobs never
// change again.
func (t *Tracker) transition(id string, from, to Status, apply func(*Job)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	j, ok := t.jobs[id]
	if !ok {
		return fmt.Errorf("unknown job %s", id)
	}
	if j.Status != from {
		return fmt.Errorf("job %s is %s, cannot move to %s", id, j.Status, to)
	}
	j.Status = to
	apply(j)
	return nil
}

// Get returns a snapshot of a job.
func (t *Tracker) Get(id string) (Job, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	j, ok := t.jobs[id]
	if !ok {
		return Job{}, fmt.Errorf("unknown job %s", id)
	}
	return snapshot(j), nil
}

// List returns snapshots of all jobs, newest first.
func (t *Tracker) List() []Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Job, 0, len(t.jobs))
	for _, j := range t.jobs {
		out = append(out, snapshot(j))
	}
	sort.Slice(out, func(i, k int) bool {
		if !out[i].CreatedAt.Equal(out[k].CreatedAt) {
			return out[i].CreatedAt.After(out[k].CreatedAt)
		}
		return out[i].ID < out[k].ID
	})
	return out
}

func snapshot(j *Job) Job {
	out := *j
	out.Queries = append([]string(nil), j.Queries...)
	if j.Stats != nil {
		stats := *j.Stats
		out.Stats = &stats
	}
	return out
}
