package usecase

import (
	"context"
	"errors"
	"fixsync/internal/domain/entities"
	"fixsync/internal/infrastructure/logger"
	"fixsync/internal/usecase/interfaces"
	"fmt"
	"sort"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	ErrJobNotFound           = errors.New("job not found")
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrQuoteNotPending       = errors.New("quote is not pending")
	ErrInvalidAmount         = errors.New("invalid quote amount")
	ErrEmptyMessage          = errors.New("empty message")
	ErrConflict              = errors.New("concurrent update conflict")
	ErrStorageUnavailable    = errors.New("storage unavailable")
	ErrInvalidJobID          = errors.New("invalid job id")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidMediaRef       = errors.New("invalid media reference")
	ErrMediaStoreUnavailable = errors.New("media store unavailable")
)

const (
	jobIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	jobIDLength   = 8
	maxIDAttempts = 5
)

// IJobUseCase is the public operation set of the job collaboration engine.
//
// Every mutating call loads the record, consults the AccessPolicy, delegates
// to StatusEngine/QuoteWorkflow/CollaborationLog and persists with a version
// check. Nothing is persisted when any step fails.

//go:generate mockgen -source=job_usecase.go -destination=../adapter/http/handlers/mocks/mock_job_usecase.go -package=mocks

type IJobUseCase interface {
	CreateJob(ctx context.Context, s entities.Session, details entities.JobDetails) (entities.JobRecord, error)
	GetJob(ctx context.Context, id string, s entities.Session) (entities.JobRecord, error)
	ListJobs(ctx context.Context, s entities.Session, filter entities.JobFilter) ([]entities.JobRecord, error)
	Dashboard(ctx context.Context, s entities.Session) (entities.Dashboard, error)
	ReadLog(ctx context.Context, id string, s entities.Session, window int) (entities.LogView, error)
	PostMessage(ctx context.Context, id string, s entities.Session, text string) (entities.JobRecord, error)
	AddAttachment(ctx context.Context, id string, s entities.Session, mediaRef string) (entities.JobRecord, error)
	UploadAttachment(ctx context.Context, id string, s entities.Session, filename, contentType string, data []byte) (entities.JobRecord, error)
	SubmitQuote(ctx context.Context, id string, s entities.Session, in entities.QuoteInput) (entities.JobRecord, error)
	ApproveQuote(ctx context.Context, id string, s entities.Session, quoteID string) (entities.JobRecord, error)
	DeclineQuote(ctx context.Context, id string, s entities.Session, quoteID string) (entities.JobRecord, error)
	UpdateDetails(ctx context.Context, id string, s entities.Session, details entities.JobDetails) (entities.JobRecord, error)
	ClaimJob(ctx context.Context, id string, s entities.Session) (entities.JobRecord, error)
	AssignJob(ctx context.Context, id string, s entities.Session, technician string) (entities.JobRecord, error)
	CancelJob(ctx context.Context, id string, s entities.Session) (entities.JobRecord, error)
	SetStatus(ctx context.Context, id string, s entities.Session, status entities.JobStatus) (entities.JobRecord, error)
	DeleteJob(ctx context.Context, id string, s entities.Session) error
}

type JobUseCase struct {
	repo   interfaces.IJobRepository
	media  interfaces.IMediaStore
	policy AccessPolicy
	log    *CollaborationLog
	status *StatusEngine
	quotes *QuoteWorkflow
	locks  *jobLocks
	now    func() time.Time
	newID  func() (string, error)
}

var _ IJobUseCase = (*JobUseCase)(nil)

// NewJobUseCase wires the engine. media may be nil, in which case uploads are rejected.
func NewJobUseCase(repo interfaces.IJobRepository, media interfaces.IMediaStore) *JobUseCase {
	return newJobUseCase(repo, media, time.Now)
}

func newJobUseCase(repo interfaces.IJobRepository, media interfaces.IMediaStore, now func() time.Time) *JobUseCase {
	log := NewCollaborationLog(now)
	status := NewStatusEngine(log)
	return &JobUseCase{
		repo:   repo,
		media:  media,
		log:    log,
		status: status,
		quotes: NewQuoteWorkflow(status, log, now),
		locks:  newJobLocks(),
		now:    now,
		newID: func() (string, error) {
			return gonanoid.Generate(jobIDAlphabet, jobIDLength)
		},
	}
}

func (u *JobUseCase) CreateJob(ctx context.Context, s entities.Session, details entities.JobDetails) (entities.JobRecord, error) {
	if err := u.policy.Authorize(s, ActionCreateJob, nil); err != nil {
		return entities.JobRecord{}, err
	}

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		id, err := u.newID()
		if err != nil {
			return entities.JobRecord{}, err
		}
		job := entities.NewJobRecord(id, s.Identity, u.now().UTC())
		if err := applyDetails(&job, details); err != nil {
			return entities.JobRecord{}, err
		}

		created, err := u.repo.Create(ctx, job)
		if errors.Is(err, interfaces.ErrDuplicateID) {
			logger.Warnf("[job][usecase] id collision job_id=%s attempt=%d", id, attempt)
			continue
		}
		if err != nil {
			logger.Errorf("[job][usecase] create failed customer=%s err=%v", s.Identity, err)
			return entities.JobRecord{}, storageError(err)
		}
		logger.Infof("[job][usecase] create success job_id=%s customer=%s", created.ID, created.CustomerIdentity)
		return created, nil
	}
	return entities.JobRecord{}, fmt.Errorf("%w: could not allocate a unique job id", ErrConflict)
}

func (u *JobUseCase) GetJob(ctx context.Context, id string, s entities.Session) (entities.JobRecord, error) {
	job, err := u.load(ctx, id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if err := u.policy.Authorize(s, ActionViewJob, &job); err != nil {
		return entities.JobRecord{}, err
	}
	return job, nil
}

// ListJobs returns jobs ordered by creation time. Customers only ever see their own jobs.
func (u *JobUseCase) ListJobs(ctx context.Context, s entities.Session, filter entities.JobFilter) ([]entities.JobRecord, error) {
	if err := u.policy.Authorize(s, ActionListJobs, nil); err != nil {
		return nil, err
	}
	if s.Role == entities.RoleCustomer {
		filter.CustomerIdentity = s.Identity
	}

	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	out := make([]entities.JobRecord, 0, len(all))
	for _, j := range all {
		if filter.Matches(j) {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(i, k int) bool {
		if out[i].CreatedAt.Equal(out[k].CreatedAt) {
			return out[i].ID < out[k].ID
		}
		return out[i].CreatedAt.Before(out[k].CreatedAt)
	})
	return out, nil
}

func (u *JobUseCase) Dashboard(ctx context.Context, s entities.Session) (entities.Dashboard, error) {
	if err := u.policy.Authorize(s, ActionViewDashboard, nil); err != nil {
		return entities.Dashboard{}, err
	}
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return entities.Dashboard{}, storageError(err)
	}
	return entities.BuildDashboard(all), nil
}

func (u *JobUseCase) ReadLog(ctx context.Context, id string, s entities.Session, window int) (entities.LogView, error) {
	job, err := u.GetJob(ctx, id, s)
	if err != nil {
		return entities.LogView{}, err
	}
	return u.log.ReadLog(job, window), nil
}

func (u *JobUseCase) PostMessage(ctx context.Context, id string, s entities.Session, text string) (entities.JobRecord, error) {
	return u.mutate(ctx, id, s, ActionPostMessage, func(job *entities.JobRecord) error {
		_, err := u.log.PostMessage(job, s, text)
		return err
	})
}

func (u *JobUseCase) AddAttachment(ctx context.Context, id string, s entities.Session, mediaRef string) (entities.JobRecord, error) {
	return u.mutate(ctx, id, s, ActionAddAttachment, func(job *entities.JobRecord) error {
		return u.log.AddAttachment(job, s, mediaRef)
	})
}

// UploadAttachment stores the bytes in the media store and appends the returned reference.
func (u *JobUseCase) UploadAttachment(ctx context.Context, id string, s entities.Session, filename, contentType string, data []byte) (entities.JobRecord, error) {
	if u.media == nil {
		return entities.JobRecord{}, ErrMediaStoreUnavailable
	}
	if len(data) == 0 {
		return entities.JobRecord{}, fmt.Errorf("%w: empty upload", ErrInvalidInput)
	}

	job, err := u.load(ctx, id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if err := u.policy.Authorize(s, ActionAddAttachment, &job); err != nil {
		return entities.JobRecord{}, err
	}

	ref, err := u.media.Put(ctx, job.ID, filename, contentType, data)
	if err != nil {
		logger.Errorf("[job][usecase] media upload failed job_id=%s err=%v", job.ID, err)
		return entities.JobRecord{}, fmt.Errorf("%w: %v", ErrMediaStoreUnavailable, err)
	}
	logger.Infof("[job][usecase] media uploaded job_id=%s media_ref=%s size=%d", job.ID, ref, len(data))
	return u.AddAttachment(ctx, job.ID, s, ref)
}

func (u *JobUseCase) SubmitQuote(ctx context.Context, id string, s entities.Session, in entities.QuoteInput) (entities.JobRecord, error) {
	return u.mutate(ctx, id, s, ActionSubmitQuote, func(job *entities.JobRecord) error {
		_, err := u.quotes.Submit(job, s, in)
		return err
	})
}

func (u *JobUseCase) ApproveQuote(ctx context.Context, id string, s entities.Session, quoteID string) (entities.JobRecord, error) {
	return u.mutate(ctx, id, s, ActionDecideQuote, func(job *entities.JobRecord) error {
		_, err := u.quotes.Approve(job, s, strings.TrimSpace(quoteID))
		return err
	})
}

func (u *JobUseCase) DeclineQuote(ctx context.Context, id string, s entities.Session, quoteID string) (entities.JobRecord, error) {
	return u.mutate(ctx, id, s, ActionDecideQuote, func(job *entities.JobRecord) error {
		_, err := u.quotes.Decline(job, s, strings.TrimSpace(quoteID))
		return err
	})
}

func (u *JobUseCase) UpdateDetails(ctx context.Context, id string, s entities.Session, details entities.JobDetails) (entities.JobRecord, error) {
	if details.Empty() {
		return entities.JobRecord{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	return u.mutate(ctx, id, s, ActionUpdateDetails, func(job *entities.JobRecord) error {
		return applyDetails(job, details)
	})
}

// ClaimJob self-assigns the calling technician and moves the job from open to in_progress.
func (u *JobUseCase) ClaimJob(ctx context.Context, id string, s entities.Session) (entities.JobRecord, error) {
	return u.mutate(ctx, id, s, ActionClaimJob, func(job *entities.JobRecord) error {
		if err := u.status.Transition(job, entities.JobStatusInProgress); err != nil {
			return err
		}
		job.AssignedTechnician = s.Identity
		u.log.postSystemMessage(job, fmt.Sprintf("Job claimed by %s", s.Identity))
		return nil
	})
}

// AssignJob lets an admin assign any technician. Open jobs move to in_progress;
// other non-terminal jobs are only reassigned.
func (u *JobUseCase) AssignJob(ctx context.Context, id string, s entities.Session, technician string) (entities.JobRecord, error) {
	technician = strings.TrimSpace(technician)
	if technician == "" {
		return entities.JobRecord{}, fmt.Errorf("%w: technician is required", ErrInvalidInput)
	}
	return u.mutate(ctx, id, s, ActionAssignJob, func(job *entities.JobRecord) error {
		if job.Status.Terminal() {
			return fmt.Errorf("%w: job is %s", ErrInvalidTransition, job.Status)
		}
		if job.Status == entities.JobStatusOpen {
			if err := u.status.Transition(job, entities.JobStatusInProgress); err != nil {
				return err
			}
		}
		job.AssignedTechnician = technician
		u.log.postSystemMessage(job, fmt.Sprintf("Job assigned to %s", technician))
		return nil
	})
}

func (u *JobUseCase) CancelJob(ctx context.Context, id string, s entities.Session) (entities.JobRecord, error) {
	return u.mutate(ctx, id, s, ActionCancelJob, func(job *entities.JobRecord) error {
		if err := u.status.Transition(job, entities.JobStatusCancelled); err != nil {
			return err
		}
		u.log.postSystemMessage(job, fmt.Sprintf("Job cancelled by %s", s.Role))
		return nil
	})
}

// SetStatus is the administrative override: any status, no workflow validation, always audited.
func (u *JobUseCase) SetStatus(ctx context.Context, id string, s entities.Session, status entities.JobStatus) (entities.JobRecord, error) {
	return u.mutate(ctx, id, s, ActionOverrideStatus, func(job *entities.JobRecord) error {
		return u.status.Override(job, status, s)
	})
}

// DeleteJob irreversibly removes the whole record, logs included.
func (u *JobUseCase) DeleteJob(ctx context.Context, id string, s entities.Session) error {
	id, err := normalizeJobID(id)
	if err != nil {
		return err
	}
	unlock := u.locks.lock(id)
	defer unlock()

	job, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if err := u.policy.Authorize(s, ActionDeleteJob, &job); err != nil {
		return err
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		logger.Errorf("[job][usecase] delete failed job_id=%s err=%v", id, err)
		return storageError(err)
	}
	if !deleted {
		return ErrJobNotFound
	}
	logger.Infof("[job][usecase] delete success job_id=%s by=%s", id, actorName(s))
	return nil
}

// mutate runs one serialized read-modify-write cycle. fn works on a copy, so
// a failing step leaves both the stored and the returned state untouched.
func (u *JobUseCase) mutate(ctx context.Context, id string, s entities.Session, action Action, fn func(job *entities.JobRecord) error) (entities.JobRecord, error) {
	id, err := normalizeJobID(id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	unlock := u.locks.lock(id)
	defer unlock()

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	if err := u.policy.Authorize(s, action, &current); err != nil {
		logger.Warnf("[job][usecase] %s denied job_id=%s role=%s", action, id, s.Role)
		return entities.JobRecord{}, err
	}

	working := current.Clone()
	if err := fn(&working); err != nil {
		logger.Debugf("[job][usecase] %s rejected job_id=%s err=%v", action, id, err)
		return entities.JobRecord{}, err
	}

	saved, err := u.repo.Update(ctx, working)
	if err != nil {
		logger.Errorf("[job][usecase] %s persist failed job_id=%s version=%d err=%v", action, id, working.Version, err)
		return entities.JobRecord{}, storageError(err)
	}
	logger.Infof("[job][usecase] %s success job_id=%s status=%s version=%d", action, id, saved.Status, saved.Version)
	return saved, nil
}

func (u *JobUseCase) load(ctx context.Context, id string) (entities.JobRecord, error) {
	id, err := normalizeJobID(id)
	if err != nil {
		return entities.JobRecord{}, err
	}
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobRecord{}, storageError(err)
	}
	if job.ID == "" {
		return entities.JobRecord{}, ErrJobNotFound
	}
	return job, nil
}

func normalizeJobID(id string) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return "", ErrInvalidJobID
	}
	return id, nil
}

func applyDetails(job *entities.JobRecord, d entities.JobDetails) error {
	if d.Category != nil {
		if *d.Category != entities.CategoryNone && !d.Category.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *d.Category)
		}
	}
	if d.Priority != nil && !d.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *d.Priority)
	}

	if d.Category != nil {
		job.Category = *d.Category
	}
	if d.Priority != nil {
		job.Priority = *d.Priority
	}
	if d.Location != nil {
		job.Location = strings.TrimSpace(*d.Location)
	}
	if d.Description != nil {
		job.Description = *d.Description
	}
	return nil
}

func storageError(err error) error {
	if errors.Is(err, interfaces.ErrVersionConflict) {
		return ErrConflict
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
