package application

import "time"

// Status represents the status of a signup application
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Application represents a self-service signup request. Approving one creates
// a real account; until then the applicant cannot sign in.
type Application struct {
	ID            string
	Email         string
	Name          string
	RequestedRole string // "student" or "teacher"
	RollNumber    *string
	Class         *string
	Department    *string
	Status        Status
	RejectReason  *string
	ReviewedBy    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsPending checks if the application is still awaiting review
func (a *Application) IsPending() bool {
	return a.Status == StatusPending
}
