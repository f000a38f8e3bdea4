package auth

import (
	"context"

	"github.com/edutrack/edutrack-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle signs in an existing account by its Google identity.
	// Accounts are created through signup applications, never implicitly
	// here; an unknown email is rejected.
	LoginWithGoogle(ctx context.Context, email string, googleID string, session SessionTrackingRequest) (TokenResponse, error)

	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	Me(ctx context.Context) (user.UserResponse, error)
}
