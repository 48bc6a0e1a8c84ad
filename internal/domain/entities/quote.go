package entities

import "time"

// QuoteStatus moves from pending to approved or declined exactly once.

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusDeclined QuoteStatus = "declined"
)

type Timeline string

const (
	TimelineASAP        Timeline = "ASAP"
	TimelineOneToTwo    Timeline = "1-2 days"
	TimelineThreeToFive Timeline = "3-5 days"
	TimelineWeekPlus    Timeline = "1 week+"
	TimelineCustom      Timeline = "Custom"
)

func (t Timeline) Valid() bool {
	switch t {
	case TimelineASAP, TimelineOneToTwo, TimelineThreeToFive, TimelineWeekPlus, TimelineCustom:
		return true
	}
	return false
}

type Warranty string

const (
	Warranty30Days   Warranty = "30 days"
	Warranty90Days   Warranty = "90 days"
	WarrantyOneYear  Warranty = "1 year"
	WarrantyLifetime Warranty = "Lifetime"
)

func (w Warranty) Valid() bool {
	switch w {
	case Warranty30Days, Warranty90Days, WarrantyOneYear, WarrantyLifetime:
		return true
	}
	return false
}

// Quote is a priced proposal submitted by a technician.
//
// Monetary representation:
//   - Amount is the quoted total in the shop currency, never negative.
type Quote struct {
	ID          string      `json:"id"`
	Amount      float64     `json:"amount"`
	Breakdown   string      `json:"breakdown"`
	Timeline    Timeline    `json:"timeline"`
	Warranty    Warranty    `json:"warranty"`
	SubmittedBy string      `json:"submitted_by"`
	CreatedAt   time.Time   `json:"created_at"`
	Status      QuoteStatus `json:"status"`
}

// QuoteInput is what a technician provides when submitting a quote.
type QuoteInput struct {
	Amount    float64
	Breakdown string
	Timeline  Timeline
	Warranty  Warranty
}
