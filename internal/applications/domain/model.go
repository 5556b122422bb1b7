package domain

import "time"

// Status distinguishes a bookmark-only record from an actual submission.
// The set is closed; stats computations ignore anything else found in storage.
type Status string

const (
	StatusSaved     Status = "Saved"
	StatusApplied   Status = "Applied"
	StatusInReview  Status = "In Review"
	StatusInterview Status = "Interview"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInReview, StatusInterview:
		return true
	}
	return false
}

// ApplicationRecord is a user's interest in or application to one internship.
// Title/Company/Location/Stipend are a descriptive snapshot taken when the
// record is created; the internship's own entry may change later without
// affecting it.
type ApplicationRecord struct {
	ID           string    `json:"id" firestore:"-"`
	UserID       string    `json:"userId" firestore:"userId"`
	InternshipID string    `json:"internshipId" firestore:"internshipId"`
	Title        string    `json:"title" firestore:"title"`
	Company      string    `json:"company" firestore:"company"`
	Location     string    `json:"location" firestore:"location"`
	Stipend      string    `json:"stipend" firestore:"stipend"`
	Status       Status    `json:"status" firestore:"status"`
	AppliedOn    time.Time `json:"appliedOn" firestore:"appliedOn"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Stats are the per-user aggregate counters shown on the dashboard.
type Stats struct {
	Active     int `json:"active"`
	Saved      int `json:"saved"`
	Interviews int `json:"interviews"`
}
