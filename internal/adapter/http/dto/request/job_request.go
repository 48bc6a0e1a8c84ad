package request

import (
	"fixsync/internal/domain/entities"
	"strings"
)

// JobDetailsRequest is used both to create a job and to patch its details.
// Absent fields are left unchanged.
type JobDetailsRequest struct {
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

func (r JobDetailsRequest) ToDetails() entities.JobDetails {
	var d entities.JobDetails
	if r.Category != nil {
		c := entities.Category(strings.TrimSpace(*r.Category))
		d.Category = &c
	}
	if r.Priority != nil {
		p := entities.Priority(strings.ToLower(strings.TrimSpace(*r.Priority)))
		d.Priority = &p
	}
	d.Location = r.Location
	d.Description = r.Description
	return d
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

type AddAttachmentRequest struct {
	MediaRef string `json:"media_ref"`
}

type SubmitQuoteRequest struct {
	Amount    *float64 `json:"amount" binding:"required"`
	Breakdown string   `json:"breakdown"`
	Timeline  string   `json:"timeline"`
	Warranty  string   `json:"warranty"`
}

func (r SubmitQuoteRequest) ToInput() entities.QuoteInput {
	in := entities.QuoteInput{
		Breakdown: r.Breakdown,
		Timeline:  entities.Timeline(strings.TrimSpace(r.Timeline)),
		Warranty:  entities.Warranty(strings.TrimSpace(r.Warranty)),
	}
	if r.Amount != nil {
		in.Amount = *r.Amount
	}
	return in
}

type AssignJobRequest struct {
	Technician string `json:"technician" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListJobsQuery binds the GET /jobs query string. technician=me resolves to
// the caller's own identity.
type ListJobsQuery struct {
	Status     string `form:"status"`
	Technician string `form:"technician"`
	Customer   string `form:"customer"`
	Category   string `form:"category"`
}

func (q ListJobsQuery) ToFilter(s entities.Session) entities.JobFilter {
	technician := strings.TrimSpace(q.Technician)
	if strings.EqualFold(technician, "me") {
		technician = s.Identity
	}
	return entities.JobFilter{
		Status:             entities.JobStatus(strings.ToLower(strings.TrimSpace(q.Status))),
		AssignedTechnician: technician,
		CustomerIdentity:   strings.TrimSpace(q.Customer),
		Category:           entities.Category(strings.TrimSpace(q.Category)),
	}
}
