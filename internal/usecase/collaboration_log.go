package usecase

import (
	"strings"
	"time"

	"fixsync/internal/domain/entities"
)

// CollaborationLog appends messages and attachments to a job.
//
// Timestamps are assigned here, never by the client, and are kept strictly
// increasing per sequence so append order equals chronological order.
type CollaborationLog struct {
	now func() time.Time
}

func NewCollaborationLog(now func() time.Time) *CollaborationLog {
	if now == nil {
		now = time.Now
	}
	return &CollaborationLog{now: now}
}

// PostMessage appends a user message and returns the new message count.
func (l *CollaborationLog) PostMessage(job *entities.JobRecord, s entities.Session, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return len(job.Messages), ErrEmptyMessage
	}
	job.Messages = append(job.Messages, entities.NewUserMessage(s, text, l.nextMessageTime(job)))
	return len(job.Messages), nil
}

func (l *CollaborationLog) postSystemMessage(job *entities.JobRecord, text string) {
	job.Messages = append(job.Messages, entities.NewSystemMessage(text, l.nextMessageTime(job)))
}

func (l *CollaborationLog) AddAttachment(job *entities.JobRecord, s entities.Session, mediaRef string) error {
	if !s.Role.Valid() {
		return ErrUnauthorized
	}
	mediaRef = strings.TrimSpace(mediaRef)
	if mediaRef == "" {
		return ErrInvalidMediaRef
	}
	at := l.stamp(lastPhotoTime(job))
	job.Photos = append(job.Photos, entities.Attachment{
		MediaRef:       mediaRef,
		UploadedAt:     at,
		UploadedByRole: s.Role,
	})
	return nil
}

// ReadLog returns copies of the messages and photos, each limited to the most
// recent window entries when window > 0.
func (l *CollaborationLog) ReadLog(job entities.JobRecord, window int) entities.LogView {
	messages := job.Messages
	photos := job.Photos
	if window > 0 {
		if len(messages) > window {
			messages = messages[len(messages)-window:]
		}
		if len(photos) > window {
			photos = photos[len(photos)-window:]
		}
	}
	return entities.LogView{
		Messages: append([]entities.Message{}, messages...),
		Photos:   append([]entities.Attachment{}, photos...),
	}
}

func (l *CollaborationLog) nextMessageTime(job *entities.JobRecord) time.Time {
	var last time.Time
	if n := len(job.Messages); n > 0 {
		last = job.Messages[n-1].Timestamp
	}
	return l.stamp(last)
}

func lastPhotoTime(job *entities.JobRecord) time.Time {
	if n := len(job.Photos); n > 0 {
		return job.Photos[n-1].UploadedAt
	}
	return time.Time{}
}

func (l *CollaborationLog) stamp(last time.Time) time.Time {
	t := l.now().UTC()
	if !t.After(last) {
		t = last.Add(time.Microsecond)
	}
	return t
}
