package data

import (
	"fmt"
	"time"
)

// Urgency bounds. 1 is the most urgent.
const (
	MinUrgency     = 1
	MaxUrgency     = 10
	DefaultUrgency = 5
)

// Prefixes of the lines produced when requests are processed.
const (
	MatchedPrefix   = "Matched: "
	UnmatchedPrefix = "No available book for: "
)

// Request defines a solicitation for a book a user wants to acquire.
type Request struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Requester string    `json:"requester"`
	Urgency   int       `json:"urgency"`
	CreatedAt time.Time `json:"createdAt"`
}

// String renders a request the way match logs print it,
// e.g. "Calculus I (Urgency: 2) - Requested by: Dan".
func (r Request) String() string {
	return fmt.Sprintf("%s (Urgency: %d) - Requested by: %s", r.Title, r.Urgency, r.Requester)
}

// Priority returns the presentation bucket for the request's urgency.
func (r Request) Priority() Priority {
	return PriorityFor(r.Urgency)
}

// Bucket groups urgencies for display.
type Bucket string

const (
	BucketHigh   Bucket = "high"
	BucketMedium Bucket = "medium"
	BucketLow    Bucket = "low"
)

// Priority is the human label and visual bucket derived from an urgency.
type Priority struct {
	Label  string `json:"label"`
	Bucket Bucket `json:"bucket"`
}

// PriorityFor maps an urgency to its bucket: <=3 high, 4-7 medium, >=8 low.
func PriorityFor(urgency int) Priority {
	switch {
	case urgency <= 3:
		return Priority{Label: "High Priority", Bucket: BucketHigh}
	case urgency <= 7:
		return Priority{Label: "Medium Priority", Bucket: BucketMedium}
	default:
		return Priority{Label: "Low Priority", Bucket: BucketLow}
	}
}
