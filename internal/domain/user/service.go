package user

import (
	"context"
)

// UserService defines admin-facing account management
type UserService interface {
	// CreateUser creates an account with the given role and profile fields
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// GetUser retrieves a single account by ID
	GetUser(ctx context.Context, id string) (UserResponse, error)

	// ListUsers retrieves accounts, optionally filtered by role or class
	ListUsers(ctx context.Context, filter ListUsersFilter) ([]UserResponse, error)

	// UpdateUser updates profile fields, role or password
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// DeleteUser removes an account
	DeleteUser(ctx context.Context, id string) error
}
