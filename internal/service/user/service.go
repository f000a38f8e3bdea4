package user

import (
	"context"
	"fmt"
	"time"

	"github.com/edutrack/edutrack-backend-go/internal/domain/user"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/database"
	"github.com/edutrack/edutrack-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
	}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	if req.Role == string(user.RoleStudent) && req.RollNumber != nil {
		taken, err := s.UserRepository.ExistsByRollNumber(ctx, *req.RollNumber)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check roll number existence: %w", err)
		}
		if taken {
			return user.UserResponse{}, user.ErrRollNumberExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	created, err := s.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &passwordHash,
		Role:         user.Role(req.Role),
		Name:         req.Name,
		RollNumber:   req.RollNumber,
		Class:        req.Class,
		Department:   req.Department,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return mapUserToResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return mapUserToResponse(userData), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.ListUsersFilter) ([]user.UserResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	users, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, mapUserToResponse(u))
	}
	return responses, nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.UserRepository.GetByID(ctx, req.ID); err != nil {
		if err == pgx.ErrNoRows {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.UserRepository.Update(txCtx, req); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			if err := s.UserRepository.UpdatePassword(txCtx, req.ID, string(hash)); err != nil {
				return fmt.Errorf("failed to update password: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to reload user: %w", err)
	}
	return mapUserToResponse(updated), nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if callerID, ok := claims["user_id"].(string); ok && callerID == id {
		return user.ErrCannotDeleteSelf
	}

	if err := s.UserRepository.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func mapUserToResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		Name:       u.Name,
		RollNumber: u.RollNumber,
		Class:      u.Class,
		Department: u.Department,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.Format(time.RFC3339),
	}
}
