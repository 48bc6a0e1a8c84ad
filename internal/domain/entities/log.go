package entities

import "time"

// Role is the actor role attached to every session.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleTechnician, RoleAdmin:
		return true
	}
	return false
}

// Session is supplied by the authentication tier; the core never inspects credentials.
type Session struct {
	Role     Role   `json:"role"`
	Identity string `json:"identity"`
}

// Attachment is a photo/video reference. Immutable once appended.
type Attachment struct {
	MediaRef       string    `json:"media_ref"`
	UploadedAt     time.Time `json:"uploaded_at"`
	UploadedByRole Role      `json:"uploaded_by_role"`
}

type MessageKind string

const (
	MessageKindSystem MessageKind = "system"
	MessageKindUser   MessageKind = "user"
)

// Message is either a system audit entry or a message written by an actor.
// System messages carry no author.
type Message struct {
	Kind           MessageKind `json:"kind"`
	AuthorRole     Role        `json:"author_role,omitempty"`
	AuthorIdentity string      `json:"author_identity,omitempty"`
	Text           string      `json:"text"`
	Timestamp      time.Time   `json:"timestamp"`
}

func NewSystemMessage(text string, at time.Time) Message {
	return Message{Kind: MessageKindSystem, Text: text, Timestamp: at}
}

func NewUserMessage(s Session, text string, at time.Time) Message {
	return Message{
		Kind:           MessageKindUser,
		AuthorRole:     s.Role,
		AuthorIdentity: s.Identity,
		Text:           text,
		Timestamp:      at,
	}
}

func (m Message) IsSystem() bool {
	return m.Kind == MessageKindSystem
}

// LogView is a read-only window over a job's messages and photos.
type LogView struct {
	Messages []Message    `json:"messages"`
	Photos   []Attachment `json:"photos"`
}
