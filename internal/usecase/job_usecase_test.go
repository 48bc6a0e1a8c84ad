package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"fixsync/internal/adapter/persistence/repository"
	"fixsync/internal/domain/entities"
	"fixsync/internal/usecase/interfaces"
	mock_interfaces "fixsync/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	alice = entities.Session{Role: entities.RoleCustomer, Identity: "alice@example.com"}
	bob   = entities.Session{Role: entities.RoleTechnician, Identity: "bob"}
	admin = entities.Session{Role: entities.RoleAdmin}
)

var jobIDPattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func newMemoryUseCase() *JobUseCase {
	return NewJobUseCase(repository.NewJobMemoryRepository(), nil)
}

func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		next = next.Add(time.Second)
		return next
	}
}

func mustCreate(t *testing.T, uc *JobUseCase) entities.JobRecord {
	t.Helper()
	job, err := uc.CreateJob(context.Background(), alice, entities.JobDetails{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return job
}

func TestJobUseCase_CreateJob(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		uc := newMemoryUseCase()
		job := mustCreate(t, uc)

		if !jobIDPattern.MatchString(job.ID) {
			t.Fatalf("unexpected id %q", job.ID)
		}
		if job.Status != entities.JobStatusOpen || job.Priority != entities.PriorityMedium || job.Category != entities.CategoryNone {
			t.Fatalf("unexpected defaults: %+v", job)
		}
		if job.CustomerIdentity != alice.Identity || job.CreatedAt.IsZero() || job.Version != 1 {
			t.Fatalf("unexpected job: %+v", job)
		}
		if len(job.Messages) != 0 || len(job.Photos) != 0 || len(job.Quotes) != 0 {
			t.Fatalf("expected empty logs")
		}
	})

	t.Run("with details", func(t *testing.T) {
		uc := newMemoryUseCase()
		cat := entities.CategoryPlumbing
		prio := entities.PriorityEmergency
		loc := "  12 Main St  "
		job, err := uc.CreateJob(context.Background(), alice, entities.JobDetails{Category: &cat, Priority: &prio, Location: &loc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Category != cat || job.Priority != prio || job.Location != "12 Main St" {
			t.Fatalf("unexpected details: %+v", job)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		uc := newMemoryUseCase()
		cat := entities.Category("Gardening")
		if _, err := uc.CreateJob(context.Background(), alice, entities.JobDetails{Category: &cat}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("technician cannot create", func(t *testing.T) {
		uc := newMemoryUseCase()
		if _, err := uc.CreateJob(context.Background(), bob, entities.JobDetails{}); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("id collision is retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)
		ids := []string{"AAAAAAAA", "BBBBBBBB"}
		uc.newID = func() (string, error) {
			id := ids[0]
			ids = ids[1:]
			return id, nil
		}

		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.JobRecord{}, interfaces.ErrDuplicateID),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, j entities.JobRecord) (entities.JobRecord, error) {
					j.Version = 1
					return j, nil
				},
			),
		)

		job, err := uc.CreateJob(context.Background(), alice, entities.JobDetails{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.ID != "BBBBBBBB" {
			t.Fatalf("expected second id, got %s", job.ID)
		}
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)
		uc.newID = func() (string, error) { return "AAAAAAAA", nil }

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.JobRecord{}, interfaces.ErrDuplicateID).Times(maxIDAttempts)

		if _, err := uc.CreateJob(context.Background(), alice, entities.JobDetails{}); !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.JobRecord{}, errors.New("connection refused"))

		if _, err := uc.CreateJob(context.Background(), alice, entities.JobDetails{}); !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})
}

func TestJobUseCase_QuoteApprovalScenario(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()
	job := mustCreate(t, uc)

	job, err := uc.ClaimJob(ctx, job.ID, bob)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if job.Status != entities.JobStatusInProgress || job.AssignedTechnician != "bob" {
		t.Fatalf("unexpected job after claim: %+v", job)
	}

	before := len(job.Messages)
	job, err = uc.SubmitQuote(ctx, job.ID, bob, entities.QuoteInput{Amount: 275})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if job.Status != entities.JobStatusQuoted {
		t.Fatalf("expected quoted, got %s", job.Status)
	}
	if len(job.Messages) != before+1 || !job.Messages[before].IsSystem() {
		t.Fatalf("expected one system message, got %+v", job.Messages[before:])
	}

	job, err = uc.ApproveQuote(ctx, job.ID, alice, job.Quotes[0].ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if job.Quotes[0].Status != entities.QuoteStatusApproved || job.Status != entities.JobStatusApproved {
		t.Fatalf("unexpected state: %+v", job)
	}

	stored, err := uc.GetJob(ctx, job.ID, alice)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != entities.JobStatusApproved || stored.Version != job.Version {
		t.Fatalf("stored record differs: %+v", stored)
	}
}

func TestJobUseCase_DeclineThenApproveScenario(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()
	job := mustCreate(t, uc)
	job, _ = uc.ClaimJob(ctx, job.ID, bob)
	job, _ = uc.SubmitQuote(ctx, job.ID, bob, entities.QuoteInput{Amount: 300})
	job, _ = uc.SubmitQuote(ctx, job.ID, bob, entities.QuoteInput{Amount: 250})
	if len(job.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(job.Quotes))
	}

	job, err := uc.DeclineQuote(ctx, job.ID, alice, job.Quotes[0].ID)
	if err != nil {
		t.Fatalf("decline: %v", err)
	}
	job, err = uc.ApproveQuote(ctx, job.ID, alice, job.Quotes[1].ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if job.Quotes[0].Status != entities.QuoteStatusDeclined || job.Quotes[1].Status != entities.QuoteStatusApproved {
		t.Fatalf("unexpected quote statuses: %+v", job.Quotes)
	}
	if job.Status != entities.JobStatusApproved {
		t.Fatalf("expected approved, got %s", job.Status)
	}

	if _, err := uc.ApproveQuote(ctx, job.ID, alice, job.Quotes[1].ID); !errors.Is(err, ErrQuoteNotPending) {
		t.Fatalf("expected ErrQuoteNotPending, got %v", err)
	}
}

func TestJobUseCase_UnauthorizedQuoteScenario(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()
	job := mustCreate(t, uc)
	job, _ = uc.ClaimJob(ctx, job.ID, bob)

	if _, err := uc.SubmitQuote(ctx, job.ID, alice, entities.QuoteInput{Amount: 100}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	stored, _ := uc.GetJob(ctx, job.ID, alice)
	if len(stored.Quotes) != 0 || stored.Version != job.Version || stored.Status != job.Status {
		t.Fatalf("job changed after unauthorized call: %+v", stored)
	}
}

func TestJobUseCase_DeleteScenario(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()
	job := mustCreate(t, uc)

	if err := uc.DeleteJob(ctx, job.ID, alice); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := uc.DeleteJob(ctx, job.ID, admin); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.GetJob(ctx, job.ID, admin); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	if err := uc.DeleteJob(ctx, job.ID, admin); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUseCase_GetJob(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()
	job := mustCreate(t, uc)

	t.Run("case insensitive id", func(t *testing.T) {
		got, err := uc.GetJob(ctx, " "+strings.ToLower(job.ID)+" ", alice)
		if err != nil || got.ID != job.ID {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
	})

	t.Run("other customer", func(t *testing.T) {
		mallory := entities.Session{Role: entities.RoleCustomer, Identity: "mallory"}
		if _, err := uc.GetJob(ctx, job.ID, mallory); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		if _, err := uc.GetJob(ctx, "  ", alice); !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := uc.GetJob(ctx, "ZZZZZZZZ", alice); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_ListJobs(t *testing.T) {
	ctx := context.Background()
	uc := newJobUseCase(repository.NewJobMemoryRepository(), nil, steppingClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
	carol := entities.Session{Role: entities.RoleCustomer, Identity: "carol"}

	first := mustCreate(t, uc)
	if _, err := uc.CreateJob(ctx, carol, entities.JobDetails{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	third := mustCreate(t, uc)
	if _, err := uc.ClaimJob(ctx, third.ID, bob); err != nil {
		t.Fatalf("claim: %v", err)
	}

	t.Run("customer sees only own jobs", func(t *testing.T) {
		jobs, err := uc.ListJobs(ctx, alice, entities.JobFilter{CustomerIdentity: "carol"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 2 || jobs[0].ID != first.ID || jobs[1].ID != third.ID {
			t.Fatalf("unexpected jobs: %+v", jobs)
		}
	})

	t.Run("technician filter", func(t *testing.T) {
		jobs, _ := uc.ListJobs(ctx, bob, entities.JobFilter{AssignedTechnician: "bob"})
		if len(jobs) != 1 || jobs[0].ID != third.ID {
			t.Fatalf("unexpected jobs: %+v", jobs)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		jobs, _ := uc.ListJobs(ctx, admin, entities.JobFilter{Status: entities.JobStatusOpen})
		if len(jobs) != 2 {
			t.Fatalf("expected 2 open jobs, got %d", len(jobs))
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		d, err := uc.Dashboard(ctx, admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.TotalJobs != 3 || d.OpenJobs != 2 || d.StatusCounts[entities.JobStatusInProgress] != 1 {
			t.Fatalf("unexpected dashboard: %+v", d)
		}
		if _, err := uc.Dashboard(ctx, bob); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestJobUseCase_LogOperations(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()
	job := mustCreate(t, uc)

	if _, err := uc.PostMessage(ctx, job.ID, alice, "Kitchen sink is leaking"); err != nil {
		t.Fatalf("post: %v", err)
	}
	if _, err := uc.PostMessage(ctx, job.ID, alice, "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := uc.AddAttachment(ctx, job.ID, alice, "uploads/leak.jpg"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if _, err := uc.PostMessage(ctx, job.ID, bob, "On my way"); err != nil {
		t.Fatalf("post: %v", err)
	}

	first, err := uc.ReadLog(ctx, job.ID, alice, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(first.Messages) != 2 || len(first.Photos) != 1 {
		t.Fatalf("unexpected log: %+v", first)
	}

	if _, err := uc.PostMessage(ctx, job.ID, admin, "Checking in"); err != nil {
		t.Fatalf("post: %v", err)
	}
	second, _ := uc.ReadLog(ctx, job.ID, alice, 0)
	for i, m := range first.Messages {
		if second.Messages[i] != m {
			t.Fatalf("earlier read is not a prefix of the later one at %d", i)
		}
	}

	window, _ := uc.ReadLog(ctx, job.ID, alice, 1)
	if len(window.Messages) != 1 || window.Messages[0].Text != "Checking in" {
		t.Fatalf("unexpected window: %+v", window.Messages)
	}
}

func TestJobUseCase_UpdateDetails(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()
	job := mustCreate(t, uc)

	desc := "Water under the sink"
	updated, err := uc.UpdateDetails(ctx, job.ID, bob, entities.JobDetails{Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != desc || updated.Priority != entities.PriorityMedium {
		t.Fatalf("unexpected job: %+v", updated)
	}

	if _, err := uc.UpdateDetails(ctx, job.ID, alice, entities.JobDetails{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	prio := entities.Priority("urgent")
	if _, err := uc.UpdateDetails(ctx, job.ID, alice, entities.JobDetails{Priority: &prio}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUseCase_StatusOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("claim twice", func(t *testing.T) {
		uc := newMemoryUseCase()
		job := mustCreate(t, uc)
		_, _ = uc.ClaimJob(ctx, job.ID, bob)
		other := entities.Session{Role: entities.RoleTechnician, Identity: "dave"}
		if _, err := uc.ClaimJob(ctx, job.ID, other); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("assign by admin", func(t *testing.T) {
		uc := newMemoryUseCase()
		job := mustCreate(t, uc)
		job, err := uc.AssignJob(ctx, job.ID, admin, "dave")
		if err != nil {
			t.Fatalf("assign: %v", err)
		}
		if job.AssignedTechnician != "dave" || job.Status != entities.JobStatusInProgress {
			t.Fatalf("unexpected job: %+v", job)
		}
		if _, err := uc.AssignJob(ctx, job.ID, bob, "bob"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("cancel then assign", func(t *testing.T) {
		uc := newMemoryUseCase()
		job := mustCreate(t, uc)
		job, err := uc.CancelJob(ctx, job.ID, alice)
		if err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if job.Status != entities.JobStatusCancelled {
			t.Fatalf("expected cancelled, got %s", job.Status)
		}
		if _, err := uc.AssignJob(ctx, job.ID, admin, "dave"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if _, err := uc.CancelJob(ctx, job.ID, alice); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("admin override completes and reopens", func(t *testing.T) {
		uc := newMemoryUseCase()
		job := mustCreate(t, uc)
		job, err := uc.SetStatus(ctx, job.ID, admin, entities.JobStatusCompleted)
		if err != nil || job.Status != entities.JobStatusCompleted {
			t.Fatalf("unexpected result: %+v, %v", job, err)
		}
		job, err = uc.SetStatus(ctx, job.ID, admin, entities.JobStatusOpen)
		if err != nil || job.Status != entities.JobStatusOpen {
			t.Fatalf("unexpected result: %+v, %v", job, err)
		}
		if _, err := uc.SetStatus(ctx, job.ID, bob, entities.JobStatusCompleted); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestJobUseCase_ConcurrentMessages(t *testing.T) {
	ctx := context.Background()
	uc := newMemoryUseCase()
	job := mustCreate(t, uc)

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers*2)
	for i := 0; i < writers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := uc.PostMessage(ctx, job.ID, alice, fmt.Sprintf("message %d", i))
			errs <- err
		}(i)
		go func(i int) {
			defer wg.Done()
			_, err := uc.SubmitQuote(ctx, job.ID, bob, entities.QuoteInput{Amount: float64(i)})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stored, _ := uc.GetJob(ctx, job.ID, admin)
	users := 0
	for _, m := range stored.Messages {
		if !m.IsSystem() {
			users++
		}
	}
	if users != writers || len(stored.Quotes) != writers {
		t.Fatalf("lost writes: %d messages, %d quotes", users, len(stored.Quotes))
	}
	for i := 1; i < len(stored.Messages); i++ {
		if !stored.Messages[i].Timestamp.After(stored.Messages[i-1].Timestamp) {
			t.Fatalf("timestamps out of order at %d", i)
		}
	}
}

func TestJobUseCase_RepositoryFailures(t *testing.T) {
	ctx := context.Background()
	existing := entities.NewJobRecord("AB12CD34", alice.Identity, time.Now().UTC())
	existing.Version = 3

	t.Run("load failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "AB12CD34").Return(entities.JobRecord{}, errors.New("timeout"))

		if _, err := uc.PostMessage(ctx, "AB12CD34", alice, "hi"); !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "AB12CD34").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.JobRecord) (entities.JobRecord, error) {
				if j.Version != 3 || len(j.Messages) != 1 {
					t.Fatalf("unexpected write: %+v", j)
				}
				return entities.JobRecord{}, interfaces.ErrVersionConflict
			},
		)

		if _, err := uc.PostMessage(ctx, "AB12CD34", alice, "hi"); !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("rejected operation never writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "AB12CD34").Return(existing, nil)

		if _, err := uc.SubmitQuote(ctx, "AB12CD34", bob, entities.QuoteInput{Amount: -1}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("scan failed"))

		if _, err := uc.ListJobs(ctx, admin, entities.JobFilter{}); !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})

	t.Run("delete failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "AB12CD34").Return(existing, nil)
		repo.EXPECT().Delete(gomock.Any(), "AB12CD34").Return(false, errors.New("throttled"))

		if err := uc.DeleteJob(ctx, "AB12CD34", admin); !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})
}

func TestJobUseCase_UploadAttachment(t *testing.T) {
	ctx := context.Background()

	t.Run("no media store", func(t *testing.T) {
		uc := newMemoryUseCase()
		job := mustCreate(t, uc)
		if _, err := uc.UploadAttachment(ctx, job.ID, alice, "a.jpg", "image/jpeg", []byte{1}); !errors.Is(err, ErrMediaStoreUnavailable) {
			t.Fatalf("expected ErrMediaStoreUnavailable, got %v", err)
		}
	})

	t.Run("stores and attaches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		media := mock_interfaces.NewMockIMediaStore(ctrl)
		uc := NewJobUseCase(repository.NewJobMemoryRepository(), media)
		job := mustCreate(t, uc)

		media.EXPECT().Put(gomock.Any(), job.ID, "leak.jpg", "image/jpeg", []byte("img")).Return("s3://media/jobs/"+job.ID+"/leak.jpg", nil)

		got, err := uc.UploadAttachment(ctx, job.ID, alice, "leak.jpg", "image/jpeg", []byte("img"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Photos) != 1 || got.Photos[0].MediaRef != "s3://media/jobs/"+job.ID+"/leak.jpg" {
			t.Fatalf("unexpected photos: %+v", got.Photos)
		}
	})

	t.Run("store failure leaves job untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		media := mock_interfaces.NewMockIMediaStore(ctrl)
		uc := NewJobUseCase(repository.NewJobMemoryRepository(), media)
		job := mustCreate(t, uc)

		media.EXPECT().Put(gomock.Any(), job.ID, gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("access denied"))

		if _, err := uc.UploadAttachment(ctx, job.ID, alice, "a.jpg", "image/jpeg", []byte{1}); !errors.Is(err, ErrMediaStoreUnavailable) {
			t.Fatalf("expected ErrMediaStoreUnavailable, got %v", err)
		}
		stored, _ := uc.GetJob(ctx, job.ID, alice)
		if len(stored.Photos) != 0 || stored.Version != job.Version {
			t.Fatalf("job changed: %+v", stored)
		}
	})

	t.Run("stranger cannot upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		media := mock_interfaces.NewMockIMediaStore(ctrl)
		uc := NewJobUseCase(repository.NewJobMemoryRepository(), media)
		job := mustCreate(t, uc)

		mallory := entities.Session{Role: entities.RoleCustomer, Identity: "mallory"}
		if _, err := uc.UploadAttachment(ctx, job.ID, mallory, "a.jpg", "image/jpeg", []byte{1}); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}
