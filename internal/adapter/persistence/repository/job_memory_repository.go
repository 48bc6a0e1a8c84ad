package repository

import (
	"context"
	"fixsync/internal/domain/entities"
	"fixsync/internal/usecase/interfaces"
	"sync"
)

// JobMemoryRepository keeps jobs in process memory. Safe for concurrent access.
// Intended for development and tests; everything is lost on restart.
type JobMemoryRepository struct {
	mu   sync.RWMutex
	jobs map[string]entities.JobRecord
}

var _ interfaces.IJobRepository = (*JobMemoryRepository)(nil)

func NewJobMemoryRepository() *JobMemoryRepository {
	return &JobMemoryRepository{jobs: make(map[string]entities.JobRecord)}
}

func (r *JobMemoryRepository) Create(_ context.Context, job entities.JobRecord) (entities.JobRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[job.ID]; ok {
		return entities.JobRecord{}, interfaces.ErrDuplicateID
	}
	job.Version = 1
	r.jobs[job.ID] = job.Clone()
	return job.Clone(), nil
}

func (r *JobMemoryRepository) GetByID(_ context.Context, id string) (entities.JobRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return entities.JobRecord{}, nil
	}
	return job.Clone(), nil
}

func (r *JobMemoryRepository) Update(_ context.Context, job entities.JobRecord) (entities.JobRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.jobs[job.ID]
	if !ok || stored.Version != job.Version {
		return entities.JobRecord{}, interfaces.ErrVersionConflict
	}
	job.Version++
	r.jobs[job.ID] = job.Clone()
	return job.Clone(), nil
}

func (r *JobMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return false, nil
	}
	delete(r.jobs, id)
	return true, nil
}

func (r *JobMemoryRepository) ListAll(_ context.Context) ([]entities.JobRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.JobRecord, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j.Clone())
	}
	return out, nil
}
