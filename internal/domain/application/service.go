package application

import "context"

// ApplicationService defines the signup application workflow
type ApplicationService interface {
	// Apply submits a public signup application (no authentication)
	Apply(ctx context.Context, req ApplyRequest) (ApplicationResponse, error)

	// List retrieves applications for admin review, optionally by status
	List(ctx context.Context, filter ListFilter) ([]ApplicationResponse, error)

	// Approve creates an account from a pending application, generates a
	// temporary password and emails the applicant
	Approve(ctx context.Context, id string) (ApproveResponse, error)

	// Reject declines a pending application and emails the applicant
	Reject(ctx context.Context, req RejectRequest) error
}
