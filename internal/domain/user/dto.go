package user

import (
	"github.com/edutrack/edutrack-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Name       string  `json:"name"`
	RollNumber *string `json:"roll_number,omitempty"`
	Class      *string `json:"class,omitempty"`
	Department *string `json:"department,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Name       string  `json:"name"`
	RollNumber *string `json:"roll_number,omitempty"`
	Class      *string `json:"class,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
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

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else {
		validRoles := []string{string(RoleAdmin), string(RoleTeacher), string(RoleStudent)}
		if !validator.IsInSlice(r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "invalid role",
			})
		}
	}

	// Students need a roster identity so their records can be matched.
	if r.Role == string(RoleStudent) {
		if r.RollNumber == nil || validator.IsEmpty(*r.RollNumber) {
			errs = append(errs, validator.ValidationError{
				Field:   "roll_number",
				Message: "roll_number is required for students",
			})
		}
		if r.Class == nil || validator.IsEmpty(*r.Class) {
			errs = append(errs, validator.ValidationError{
				Field:   "class",
				Message: "class is required for students",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest represents request to update user
type UpdateUserRequest struct {
	ID         string  `json:"id"`
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	Role       *string `json:"role,omitempty"`
	Name       *string `json:"name,omitempty"`
	RollNumber *string `json:"roll_number,omitempty"`
	Class      *string `json:"class,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Email != nil {
		if validator.IsEmpty(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must not be empty",
			})
		} else if !validator.IsValidEmail(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "invalid email format",
			})
		}
	}

	if r.Password != nil {
		if validator.IsEmpty(*r.Password) {
			errs = append(errs, validator.ValidationError{
				Field:   "password",
				Message: "password must not be empty",
			})
		} else if len(*r.Password) < 8 {
			errs = append(errs, validator.ValidationError{
				Field:   "password",
				Message: "password must be at least 8 characters",
			})
		}
	}

	if r.Role != nil {
		validRoles := []string{string(RoleAdmin), string(RoleTeacher), string(RoleStudent)}
		if !validator.IsInSlice(*r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "invalid role",
			})
		}
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListUsersFilter narrows the admin user listing
type ListUsersFilter struct {
	Role  *string `json:"role,omitempty"`
	Class *string `json:"class,omitempty"`
}

func (f *ListUsersFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Role != nil {
		validRoles := []string{string(RoleAdmin), string(RoleTeacher), string(RoleStudent)}
		if !validator.IsInSlice(*f.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "invalid role",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
