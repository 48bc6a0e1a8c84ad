package usecase

import (
	"fixsync/internal/domain/entities"
	"fmt"
)

// workflowTransitions lists the moves the workflow may make on its own.
// Terminal states have no outgoing entries.
var workflowTransitions = map[entities.JobStatus][]entities.JobStatus{
	entities.JobStatusOpen:       {entities.JobStatusInProgress, entities.JobStatusCancelled},
	entities.JobStatusInProgress: {entities.JobStatusQuoted, entities.JobStatusCancelled},
	entities.JobStatusQuoted:     {entities.JobStatusApproved, entities.JobStatusCancelled},
	entities.JobStatusApproved:   {entities.JobStatusCancelled},
}

// StatusEngine validates and applies job status transitions.
type StatusEngine struct {
	log *CollaborationLog
}

func NewStatusEngine(log *CollaborationLog) *StatusEngine {
	return &StatusEngine{log: log}
}

func (e *StatusEngine) CanTransition(from, to entities.JobStatus) bool {
	for _, next := range workflowTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition applies a workflow-driven move. The job is left untouched on error.
func (e *StatusEngine) Transition(job *entities.JobRecord, to entities.JobStatus) error {
	if !e.CanTransition(job.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, job.Status, to)
	}
	job.Status = to
	return nil
}

// Override sets any status without workflow validation and records a system message.
func (e *StatusEngine) Override(job *entities.JobRecord, to entities.JobStatus, s entities.Session) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, to)
	}
	from := job.Status
	job.Status = to
	e.log.postSystemMessage(job, fmt.Sprintf("Status overridden by %s: %s -> %s", actorName(s), from, to))
	return nil
}

func actorName(s entities.Session) string {
	if s.Identity != "" {
		return s.Identity
	}
	return string(s.Role)
}
