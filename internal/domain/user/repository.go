package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByRollNumber(ctx context.Context, rollNumber string) (bool, error)
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
