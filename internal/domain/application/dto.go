package application

import (
	"github.com/edutrack/edutrack-backend-go/internal/pkg/validator"
)

// ApplyRequest is the public signup form
type ApplyRequest struct {
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	RequestedRole string  `json:"requested_role"`
	RollNumber    *string `json:"roll_number,omitempty"`
	Class         *string `json:"class,omitempty"`
	Department    *string `json:"department,omitempty"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.RequestedRole) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_role",
			Message: "requested_role is required",
		})
	} else if !validator.IsInSlice(r.RequestedRole, []string{"student", "teacher"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_role",
			Message: "requested_role must be student or teacher",
		})
	}

	if r.RequestedRole == "student" {
		if r.RollNumber == nil || validator.IsEmpty(*r.RollNumber) {
			errs = append(errs, validator.ValidationError{
				Field:   "roll_number",
				Message: "roll_number is required for student applications",
			})
		}
		if r.Class == nil || validator.IsEmpty(*r.Class) {
			errs = append(errs, validator.ValidationError{
				Field:   "class",
				Message: "class is required for student applications",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RejectRequest rejects a pending application with an optional reason
type RejectRequest struct {
	ID     string `json:"id"`
	Reason string `json:"reason,omitempty"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows the admin application listing
type ListFilter struct {
	Status *string `json:"status,omitempty"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil {
		valid := []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "invalid status",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApplicationResponse represents an application in API responses
type ApplicationResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	RequestedRole string  `json:"requested_role"`
	RollNumber    *string `json:"roll_number,omitempty"`
	Class         *string `json:"class,omitempty"`
	Department    *string `json:"department,omitempty"`
	Status        string  `json:"status"`
	RejectReason  *string `json:"reject_reason,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// ApproveResponse reports the account created from an approved application
type ApproveResponse struct {
	ApplicationID string `json:"application_id"`
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
}
