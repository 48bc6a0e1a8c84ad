package response

import (
	"fixsync/internal/domain/entities"
	"time"
)

type JobResponse struct {
	ID                 string                `json:"id"`
	CustomerIdentity   string                `json:"customer_identity"`
	CreatedAt          time.Time             `json:"created_at"`
	Status             string                `json:"status"`
	Category           string                `json:"category,omitempty"`
	Priority           string                `json:"priority"`
	Location           string                `json:"location"`
	Description        string                `json:"description"`
	AssignedTechnician string                `json:"assigned_technician,omitempty"`
	Photos             []entities.Attachment `json:"photos"`
	Messages           []entities.Message    `json:"messages"`
	Quotes             []entities.Quote      `json:"quotes"`
	Timeline           []entities.Milestone  `json:"timeline"`
	Version            int64                 `json:"version"`
}

func FromJob(j entities.JobRecord) JobResponse {
	return JobResponse{
		ID:                 j.ID,
		CustomerIdentity:   j.CustomerIdentity,
		CreatedAt:          j.CreatedAt,
		Status:             string(j.Status),
		Category:           string(j.Category),
		Priority:           string(j.Priority),
		Location:           j.Location,
		Description:        j.Description,
		AssignedTechnician: j.AssignedTechnician,
		Photos:             orEmpty(j.Photos),
		Messages:           orEmpty(j.Messages),
		Quotes:             orEmpty(j.Quotes),
		Timeline:           j.Timeline(),
		Version:            j.Version,
	}
}

// JobSummaryResponse is the list row for a job.
type JobSummaryResponse struct {
	ID                 string    `json:"id"`
	CustomerIdentity   string    `json:"customer_identity"`
	CreatedAt          time.Time `json:"created_at"`
	Status             string    `json:"status"`
	Category           string    `json:"category,omitempty"`
	Priority           string    `json:"priority"`
	AssignedTechnician string    `json:"assigned_technician,omitempty"`
	PhotoCount         int       `json:"photo_count"`
	MessageCount       int       `json:"message_count"`
	QuoteCount         int       `json:"quote_count"`
	HighestQuote       float64   `json:"highest_quote"`
}

func FromJobSummary(j entities.JobRecord) JobSummaryResponse {
	return JobSummaryResponse{
		ID:                 j.ID,
		CustomerIdentity:   j.CustomerIdentity,
		CreatedAt:          j.CreatedAt,
		Status:             string(j.Status),
		Category:           string(j.Category),
		Priority:           string(j.Priority),
		AssignedTechnician: j.AssignedTechnician,
		PhotoCount:         len(j.Photos),
		MessageCount:       len(j.Messages),
		QuoteCount:         len(j.Quotes),
		HighestQuote:       j.HighestQuote(),
	}
}

func FromJobList(jobs []entities.JobRecord) []JobSummaryResponse {
	out := make([]JobSummaryResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJobSummary(j))
	}
	return out
}

type LogResponse struct {
	JobID    string                `json:"job_id"`
	Messages []entities.Message    `json:"messages"`
	Photos   []entities.Attachment `json:"photos"`
}

func FromLog(jobID string, v entities.LogView) LogResponse {
	return LogResponse{JobID: jobID, Messages: orEmpty(v.Messages), Photos: orEmpty(v.Photos)}
}

type DashboardResponse struct {
	TotalJobs    int            `json:"total_jobs"`
	OpenJobs     int            `json:"open_jobs"`
	StatusCounts map[string]int `json:"status_counts"`
	Revenue      float64        `json:"revenue"`
}

func FromDashboard(d entities.Dashboard) DashboardResponse {
	counts := make(map[string]int, len(d.StatusCounts))
	for s, n := range d.StatusCounts {
		counts[string(s)] = n
	}
	return DashboardResponse{
		TotalJobs:    d.TotalJobs,
		OpenJobs:     d.OpenJobs,
		StatusCounts: counts,
		Revenue:      d.Revenue,
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
