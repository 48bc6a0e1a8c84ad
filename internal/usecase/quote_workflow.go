package usecase

import (
	"fixsync/internal/domain/entities"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// QuoteWorkflow manages the quote lifecycle and its effect on job status.
//
// Approving a quote never declines its pending siblings; they stay pending
// until the customer decides on them explicitly.
type QuoteWorkflow struct {
	status *StatusEngine
	log    *CollaborationLog
	now    func() time.Time
	newID  func() string
}

func NewQuoteWorkflow(status *StatusEngine, log *CollaborationLog, now func() time.Time) *QuoteWorkflow {
	if now == nil {
		now = time.Now
	}
	return &QuoteWorkflow{status: status, log: log, now: now, newID: uuid.NewString}
}

// Submit appends a pending quote, announces it and moves in_progress jobs to quoted.
func (w *QuoteWorkflow) Submit(job *entities.JobRecord, s entities.Session, in entities.QuoteInput) (entities.Quote, error) {
	if s.Role != entities.RoleTechnician || s.Identity == "" {
		return entities.Quote{}, ErrUnauthorized
	}
	if in.Amount < 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return entities.Quote{}, ErrInvalidAmount
	}
	if in.Timeline == "" {
		in.Timeline = entities.TimelineASAP
	}
	if in.Warranty == "" {
		in.Warranty = entities.Warranty30Days
	}
	if !in.Timeline.Valid() {
		return entities.Quote{}, fmt.Errorf("%w: unknown timeline %q", ErrInvalidInput, in.Timeline)
	}
	if !in.Warranty.Valid() {
		return entities.Quote{}, fmt.Errorf("%w: unknown warranty %q", ErrInvalidInput, in.Warranty)
	}

	q := entities.Quote{
		ID:          w.newID(),
		Amount:      in.Amount,
		Breakdown:   in.Breakdown,
		Timeline:    in.Timeline,
		Warranty:    in.Warranty,
		SubmittedBy: s.Identity,
		CreatedAt:   w.now().UTC(),
		Status:      entities.QuoteStatusPending,
	}
	job.Quotes = append(job.Quotes, q)
	w.log.postSystemMessage(job, fmt.Sprintf("New quote submitted for $%.2f", q.Amount))

	if job.Status == entities.JobStatusInProgress {
		if err := w.status.Transition(job, entities.JobStatusQuoted); err != nil {
			return entities.Quote{}, err
		}
	}
	return q, nil
}

// Approve marks a pending quote approved and moves the job to approved.
func (w *QuoteWorkflow) Approve(job *entities.JobRecord, s entities.Session, quoteID string) (entities.Quote, error) {
	idx, err := w.pendingQuote(job, s, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if approved, ok := job.ApprovedQuote(); ok {
		return entities.Quote{}, fmt.Errorf("%w: quote %s is already approved", ErrInvalidTransition, approved.ID)
	}
	if err := w.status.Transition(job, entities.JobStatusApproved); err != nil {
		return entities.Quote{}, err
	}
	job.Quotes[idx].Status = entities.QuoteStatusApproved
	w.log.postSystemMessage(job, fmt.Sprintf("Quote %s approved for $%.2f", quoteID, job.Quotes[idx].Amount))
	return job.Quotes[idx], nil
}

// Decline marks a pending quote declined. The job status is unchanged.
func (w *QuoteWorkflow) Decline(job *entities.JobRecord, s entities.Session, quoteID string) (entities.Quote, error) {
	idx, err := w.pendingQuote(job, s, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	job.Quotes[idx].Status = entities.QuoteStatusDeclined
	w.log.postSystemMessage(job, fmt.Sprintf("Quote %s declined", quoteID))
	return job.Quotes[idx], nil
}

func (w *QuoteWorkflow) pendingQuote(job *entities.JobRecord, s entities.Session, quoteID string) (int, error) {
	if s.Role != entities.RoleCustomer || !job.OwnedBy(s.Identity) {
		return -1, ErrUnauthorized
	}
	idx := job.FindQuote(quoteID)
	if idx < 0 {
		return -1, ErrQuoteNotFound
	}
	if job.Quotes[idx].Status != entities.QuoteStatusPending {
		return -1, ErrQuoteNotPending
	}
	return idx, nil
}
