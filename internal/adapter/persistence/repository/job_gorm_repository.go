package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixsync/internal/domain/entities"
	"fixsync/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobModel is the relational row for a job. The append-only logs are stored
// as JSON columns so a job is still written in a single statement.
type JobModel struct {
	ID                 string                `gorm:"primaryKey;size:8"`
	CustomerIdentity   string                `gorm:"not null;index"`
	CreatedAt          time.Time             `gorm:"not null;index"`
	Status             string                `gorm:"size:32;not null;index"`
	Category           string                `gorm:"size:32"`
	Priority           string                `gorm:"size:16;not null"`
	Location           string                `gorm:"type:text"`
	Description        string                `gorm:"type:text"`
	AssignedTechnician string                `gorm:"index"`
	Photos             []entities.Attachment `gorm:"serializer:json;type:text"`
	Messages           []entities.Message    `gorm:"serializer:json;type:text"`
	Quotes             []entities.Quote      `gorm:"serializer:json;type:text"`
	Version            int64                 `gorm:"not null"`
}

func (JobModel) TableName() string {
	return "jobs"
}

// JobGormRepository persists jobs through gorm (PostgreSQL in production,
// SQLite in tests). Update is an optimistic write guarded by the version column.
type JobGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IJobRepository = (*JobGormRepository)(nil)

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

// Migrate creates or updates the jobs table.
func (r *JobGormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&JobModel{})
}

func (r *JobGormRepository) Create(ctx context.Context, job entities.JobRecord) (entities.JobRecord, error) {
	job.Version = 1
	row := toJobModel(job)
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return entities.JobRecord{}, fmt.Errorf("failed to create job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.JobRecord{}, interfaces.ErrDuplicateID
	}
	return job, nil
}

func (r *JobGormRepository) GetByID(ctx context.Context, id string) (entities.JobRecord, error) {
	var row JobModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.JobRecord{}, nil
	}
	if err != nil {
		return entities.JobRecord{}, fmt.Errorf("failed to get job: %w", err)
	}
	return fromJobModel(row), nil
}

func (r *JobGormRepository) Update(ctx context.Context, job entities.JobRecord) (entities.JobRecord, error) {
	expected := job.Version
	job.Version++
	row := toJobModel(job)

	res := r.db.WithContext(ctx).
		Model(&JobModel{}).
		Where("id = ? AND version = ?", job.ID, expected).
		Select("*").
		Omit("id", "customer_identity", "created_at").
		Updates(&row)
	if res.Error != nil {
		return entities.JobRecord{}, fmt.Errorf("failed to update job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.JobRecord{}, interfaces.ErrVersionConflict
	}
	return job, nil
}

func (r *JobGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&JobModel{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete job: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *JobGormRepository) ListAll(ctx context.Context) ([]entities.JobRecord, error) {
	var rows []JobModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	out := make([]entities.JobRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromJobModel(row))
	}
	return out, nil
}

func toJobModel(j entities.JobRecord) JobModel {
	return JobModel{
		ID:                 j.ID,
		CustomerIdentity:   j.CustomerIdentity,
		CreatedAt:          j.CreatedAt.UTC(),
		Status:             string(j.Status),
		Category:           string(j.Category),
		Priority:           string(j.Priority),
		Location:           j.Location,
		Description:        j.Description,
		AssignedTechnician: j.AssignedTechnician,
		Photos:             nonNil(j.Photos),
		Messages:           nonNil(j.Messages),
		Quotes:             nonNil(j.Quotes),
		Version:            j.Version,
	}
}

func fromJobModel(m JobModel) entities.JobRecord {
	return entities.JobRecord{
		ID:                 m.ID,
		CustomerIdentity:   m.CustomerIdentity,
		CreatedAt:          m.CreatedAt.UTC(),
		Status:             entities.JobStatus(m.Status),
		Category:           entities.Category(m.Category),
		Priority:           entities.Priority(m.Priority),
		Location:           m.Location,
		Description:        m.Description,
		AssignedTechnician: m.AssignedTechnician,
		Photos:             nonNil(m.Photos),
		Messages:           nonNil(m.Messages),
		Quotes:             nonNil(m.Quotes),
		Version:            m.Version,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
