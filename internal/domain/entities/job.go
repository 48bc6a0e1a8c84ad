package entities

import "time"

// JobStatus represents the lifecycle of a service job.
//
// Domain notes:
//   - open is set at creation.
//   - completed and cancelled are terminal for workflow transitions; only an
//     administrative override moves a job out of them.

type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusQuoted     JobStatus = "quoted"
	JobStatusApproved   JobStatus = "approved"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// JobStatuses lists every status in lifecycle order.
var JobStatuses = []JobStatus{
	JobStatusOpen,
	JobStatusInProgress,
	JobStatusQuoted,
	JobStatusApproved,
	JobStatusCompleted,
	JobStatusCancelled,
}

func (s JobStatus) Valid() bool {
	for _, v := range JobStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

type Priority string

const (
	PriorityLow       Priority = "low"
	PriorityMedium    Priority = "medium"
	PriorityHigh      Priority = "high"
	PriorityEmergency Priority = "emergency"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

// Category is the trade a job belongs to. The zero value means "not set yet".
type Category string

const (
	CategoryNone       Category = ""
	CategoryPlumbing   Category = "Plumbing"
	CategoryElectrical Category = "Electrical"
	CategoryHVAC       Category = "HVAC"
	CategoryAppliance  Category = "Appliance"
	CategoryStructural Category = "Structural"
	CategoryOther      Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPlumbing, CategoryElectrical, CategoryHVAC, CategoryAppliance, CategoryStructural, CategoryOther:
		return true
	}
	return false
}

// JobRecord is the single evolving record shared by customer, technician and admin.
//
// Storage model:
//   - PK: id (8 uppercase alphanumeric characters, immutable)
//   - version is bumped on every successful write and used for compare-and-swap.
//
// Photos and Messages are append-only. Quotes are append-only too; only the
// status of an individual quote changes, once.
type JobRecord struct {
	ID                 string       `json:"id"`
	CustomerIdentity   string       `json:"customer_identity"`
	CreatedAt          time.Time    `json:"created_at"`
	Status             JobStatus    `json:"status"`
	Category           Category     `json:"category,omitempty"`
	Priority           Priority     `json:"priority"`
	Location           string       `json:"location"`
	Description        string       `json:"description"`
	AssignedTechnician string       `json:"assigned_technician,omitempty"`
	Photos             []Attachment `json:"photos"`
	Messages           []Message    `json:"messages"`
	Quotes             []Quote      `json:"quotes"`
	Version            int64        `json:"version"`
}

// NewJobRecord builds a job with every default fixed at construction time.
func NewJobRecord(id, customerIdentity string, createdAt time.Time) JobRecord {
	return JobRecord{
		ID:               id,
		CustomerIdentity: customerIdentity,
		CreatedAt:        createdAt,
		Status:           JobStatusOpen,
		Priority:         PriorityMedium,
		Photos:           []Attachment{},
		Messages:         []Message{},
		Quotes:           []Quote{},
	}
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (j JobRecord) Clone() JobRecord {
	out := j
	out.Photos = append(make([]Attachment, 0, len(j.Photos)), j.Photos...)
	out.Messages = append(make([]Message, 0, len(j.Messages)), j.Messages...)
	out.Quotes = append(make([]Quote, 0, len(j.Quotes)), j.Quotes...)
	return out
}

func (j JobRecord) OwnedBy(identity string) bool {
	return identity != "" && j.CustomerIdentity == identity
}

// FindQuote returns the index of the quote with the given id, or -1.
func (j JobRecord) FindQuote(quoteID string) int {
	for i, q := range j.Quotes {
		if q.ID == quoteID {
			return i
		}
	}
	return -1
}

func (j JobRecord) ApprovedQuote() (Quote, bool) {
	for _, q := range j.Quotes {
		if q.Status == QuoteStatusApproved {
			return q, true
		}
	}
	return Quote{}, false
}

func (j JobRecord) HighestQuote() float64 {
	highest := 0.0
	for _, q := range j.Quotes {
		if q.Amount > highest {
			highest = q.Amount
		}
	}
	return highest
}

// Milestone is one entry of a job's timeline.
type Milestone struct {
	Event string    `json:"event"`
	At    time.Time `json:"at"`
}

// Timeline lists the milestones reached so far, in a fixed order.
func (j JobRecord) Timeline() []Milestone {
	out := []Milestone{{Event: "created", At: j.CreatedAt}}
	if len(j.Messages) > 0 {
		out = append(out, Milestone{Event: "first_message", At: j.Messages[0].Timestamp})
	}
	if len(j.Photos) > 0 {
		out = append(out, Milestone{Event: "first_photo", At: j.Photos[0].UploadedAt})
	}
	if len(j.Quotes) > 0 {
		out = append(out, Milestone{Event: "first_quote", At: j.Quotes[0].CreatedAt})
	}
	return out
}

// JobDetails carries the editable descriptive fields. Nil means "leave unchanged".
type JobDetails struct {
	Category    *Category
	Priority    *Priority
	Location    *string
	Description *string
}

func (d JobDetails) Empty() bool {
	return d.Category == nil && d.Priority == nil && d.Location == nil && d.Description == nil
}

// JobFilter narrows listJobs. Empty fields match everything.
type JobFilter struct {
	Status             JobStatus
	AssignedTechnician string
	CustomerIdentity   string
	Category           Category
}

func (f JobFilter) Matches(j JobRecord) bool {
	if f.Status != "" && j.Status != f.Status {
		return false
	}
	if f.AssignedTechnician != "" && j.AssignedTechnician != f.AssignedTechnician {
		return false
	}
	if f.CustomerIdentity != "" && j.CustomerIdentity != f.CustomerIdentity {
		return false
	}
	if f.Category != "" && j.Category != f.Category {
		return false
	}
	return true
}
