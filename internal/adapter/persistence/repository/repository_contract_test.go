package repository

import (
	"context"
	"testing"
	"time"

	"fixsync/internal/domain/entities"
	"fixsync/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleJob returns a record with every field and log populated.
func sampleJob(id string) entities.JobRecord {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	job := entities.NewJobRecord(id, "alice@example.com", at)
	job.Category = entities.CategoryPlumbing
	job.Priority = entities.PriorityHigh
	job.Location = "12 Main St"
	job.Description = "Kitchen sink is leaking"
	job.AssignedTechnician = "bob"
	job.Status = entities.JobStatusQuoted
	job.Messages = []entities.Message{
		{Kind: entities.MessageKindUser, AuthorRole: entities.RoleCustomer, AuthorIdentity: "alice@example.com", Text: "Help", Timestamp: at.Add(time.Minute)},
		entities.NewSystemMessage("New quote submitted for $275.50", at.Add(2*time.Minute)),
	}
	job.Photos = []entities.Attachment{
		{MediaRef: "s3://media/jobs/" + id + "/leak.jpg", UploadedAt: at.Add(90 * time.Second), UploadedByRole: entities.RoleCustomer},
	}
	job.Quotes = []entities.Quote{
		{ID: "q-1", Amount: 275.5, Breakdown: "Labor: $200, Parts: $75.50", Timeline: entities.TimelineOneToTwo, Warranty: entities.Warranty90Days, SubmittedBy: "bob", CreatedAt: at.Add(2 * time.Minute), Status: entities.QuoteStatusPending},
		{ID: "q-2", Amount: 0, Timeline: entities.TimelineASAP, Warranty: entities.Warranty30Days, SubmittedBy: "bob", CreatedAt: at.Add(3 * time.Minute), Status: entities.QuoteStatusDeclined},
	}
	return job
}

// runRepositoryContract checks the behaviour every IJobRepository backend must share.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) interfaces.IJobRepository) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		repo := newRepo(t)
		job := sampleJob("AB12CD34")

		created, err := repo.Create(ctx, job)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.Version)

		got, err := repo.GetByID(ctx, "AB12CD34")
		require.NoError(t, err)
		job.Version = 1
		assert.Equal(t, job, got)
	})

	t.Run("missing id returns zero record", func(t *testing.T) {
		repo := newRepo(t)
		got, err := repo.GetByID(ctx, "ZZZZZZZZ")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Create(ctx, sampleJob("AB12CD34"))
		require.NoError(t, err)
		_, err = repo.Create(ctx, sampleJob("AB12CD34"))
		assert.ErrorIs(t, err, interfaces.ErrDuplicateID)
	})

	t.Run("update is compare and swap", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx, sampleJob("AB12CD34"))
		require.NoError(t, err)

		first := created.Clone()
		first.Messages = append(first.Messages, entities.NewSystemMessage("first", time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)))
		saved, err := repo.Update(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, int64(2), saved.Version)

		stale := created.Clone()
		stale.Status = entities.JobStatusCancelled
		_, err = repo.Update(ctx, stale)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)

		got, err := repo.GetByID(ctx, "AB12CD34")
		require.NoError(t, err)
		assert.Equal(t, entities.JobStatusQuoted, got.Status)
		assert.Len(t, got.Messages, 3)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("update of a deleted job conflicts", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx, sampleJob("AB12CD34"))
		require.NoError(t, err)
		deleted, err := repo.Delete(ctx, "AB12CD34")
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.Update(ctx, created)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Create(ctx, sampleJob("AB12CD34"))
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, "AB12CD34")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "AB12CD34")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("list all", func(t *testing.T) {
		repo := newRepo(t)
		for _, id := range []string{"AAAAAAAA", "BBBBBBBB", "CCCCCCCC"} {
			_, err := repo.Create(ctx, sampleJob(id))
			require.NoError(t, err)
		}
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}
