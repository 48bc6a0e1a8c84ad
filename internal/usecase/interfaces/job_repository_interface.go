package interfaces

import (
	"context"
	"errors"
	"fixsync/internal/domain/entities"
)

//go:generate mockgen -source=job_repository_interface.go -destination=mocks/mock_job_repository.go -package=mock_interfaces

var (
	// ErrDuplicateID is returned by Create when a record with the same id already exists.
	ErrDuplicateID = errors.New("job id already exists")
	// ErrVersionConflict is returned by Update when the stored version moved on.
	ErrVersionConflict = errors.New("job version conflict")
)

// IJobRepository abstracts persistence for JobRecord.
//
// Contract:
//   - GetByID returns a zero JobRecord (empty ID) when the job does not exist.
//   - Update is a compare-and-swap on Version: it succeeds only when the stored
//     version equals job.Version, and returns the record with Version+1.
//   - Delete reports whether a record was removed.
//   - ListAll gives no snapshot guarantee across records.

type IJobRepository interface {
	Create(ctx context.Context, job entities.JobRecord) (entities.JobRecord, error)
	GetByID(ctx context.Context, id string) (entities.JobRecord, error)
	Update(ctx context.Context, job entities.JobRecord) (entities.JobRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListAll(ctx context.Context) ([]entities.JobRecord, error)
}
