package roster

import (
	"github.com/edutrack/edutrack-backend-go/internal/pkg/validator"
)

// EntryResponse represents a roster entry in API responses
type EntryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
	Class      string `json:"class"`
	Source     string `json:"source"`
}

// CreateEntryRequest adds one student to the authoritative roster
type CreateEntryRequest struct {
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
	Class      string `json:"class"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.RollNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "roll_number",
			Message: "roll_number is required",
		})
	}

	if validator.IsEmpty(r.Class) {
		errs = append(errs, validator.ValidationError{
			Field:   "class",
			Message: "class is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEntryRequest edits roster fields; nil fields are left untouched
type UpdateEntryRequest struct {
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	RollNumber *string `json:"roll_number,omitempty"`
	Class      *string `json:"class,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.RollNumber != nil && validator.IsEmpty(*r.RollNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "roll_number",
			Message: "roll_number must not be empty",
		})
	}

	if r.Class != nil && validator.IsEmpty(*r.Class) {
		errs = append(errs, validator.ValidationError{
			Field:   "class",
			Message: "class must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DeleteClassResponse reports how many roster entries a class purge removed
type DeleteClassResponse struct {
	Class   string `json:"class"`
	Deleted int64  `json:"deleted"`
}
