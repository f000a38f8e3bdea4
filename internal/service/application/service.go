package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/edutrack/edutrack-backend-go/internal/domain/application"
	"github.com/edutrack/edutrack-backend-go/internal/domain/user"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/database"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/email"
	"github.com/edutrack/edutrack-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type ApplicationServiceImpl struct {
	db *database.DB
	application.ApplicationRepository
	user.UserRepository
	emailService email.EmailService
	frontendURL  string
}

func NewApplicationService(
	db *database.DB,
	applicationRepo application.ApplicationRepository,
	userRepo user.UserRepository,
	emailService email.EmailService,
	frontendURL string,
) application.ApplicationService {
	return &ApplicationServiceImpl{
		db:                    db,
		ApplicationRepository: applicationRepo,
		UserRepository:        userRepo,
		emailService:          emailService,
		frontendURL:           frontendURL,
	}
}

// Apply implements application.ApplicationService.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, req application.ApplyRequest) (application.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return application.ApplicationResponse{}, err
	}

	registered, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return application.ApplicationResponse{}, fmt.Errorf("failed to check email registration: %w", err)
	}
	if registered {
		return application.ApplicationResponse{}, application.ErrEmailRegistered
	}

	pending, err := s.ApplicationRepository.ExistsPendingByEmail(ctx, req.Email)
	if err != nil {
		return application.ApplicationResponse{}, fmt.Errorf("failed to check pending applications: %w", err)
	}
	if pending {
		return application.ApplicationResponse{}, application.ErrPendingExists
	}

	created, err := s.ApplicationRepository.Create(ctx, application.Application{
		Email:         req.Email,
		Name:          req.Name,
		RequestedRole: req.RequestedRole,
		RollNumber:    req.RollNumber,
		Class:         req.Class,
		Department:    req.Department,
		Status:        application.StatusPending,
	})
	if err != nil {
		return application.ApplicationResponse{}, fmt.Errorf("failed to create application: %w", err)
	}

	return mapApplicationToResponse(created), nil
}

// List implements application.ApplicationService.
func (s *ApplicationServiceImpl) List(ctx context.Context, filter application.ListFilter) ([]application.ApplicationResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	apps, err := s.ApplicationRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	responses := make([]application.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, mapApplicationToResponse(app))
	}
	return responses, nil
}

// Approve implements application.ApplicationService. Account creation and
// the status flip commit together; the notification email is sent after the
// commit and its failure does not undo the approval.
func (s *ApplicationServiceImpl) Approve(ctx context.Context, id string) (application.ApproveResponse, error) {
	reviewerID, err := s.reviewerID(ctx)
	if err != nil {
		return application.ApproveResponse{}, err
	}

	app, err := s.ApplicationRepository.GetByID(ctx, id)
	if err != nil {
		return application.ApproveResponse{}, err
	}
	if !app.IsPending() {
		return application.ApproveResponse{}, application.ErrAlreadyReviewed
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return application.ApproveResponse{}, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	hash, err := hashPassword(tempPassword)
	if err != nil {
		return application.ApproveResponse{}, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.UserRepository.Create(txCtx, user.User{
			Email:        app.Email,
			PasswordHash: &hash,
			Role:         user.Role(app.RequestedRole),
			Name:         app.Name,
			RollNumber:   app.RollNumber,
			Class:        app.Class,
			Department:   app.Department,
		})
		if err != nil {
			return fmt.Errorf("failed to create user from application: %w", err)
		}

		if err := s.ApplicationRepository.MarkApproved(txCtx, app.ID, reviewerID); err != nil {
			return fmt.Errorf("failed to mark application approved: %w", err)
		}
		return nil
	})
	if err != nil {
		return application.ApproveResponse{}, err
	}

	if err := s.emailService.SendApplicationApproved(app.Email, app.Name, tempPassword, s.frontendURL+"/login"); err != nil {
		slog.Error("approval email failed", "application_id", app.ID, "error", err)
	}

	return application.ApproveResponse{
		ApplicationID: app.ID,
		UserID:        created.ID,
		Email:         created.Email,
		Role:          string(created.Role),
	}, nil
}

// Reject implements application.ApplicationService.
func (s *ApplicationServiceImpl) Reject(ctx context.Context, req application.RejectRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	reviewerID, err := s.reviewerID(ctx)
	if err != nil {
		return err
	}

	app, err := s.ApplicationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if !app.IsPending() {
		return application.ErrAlreadyReviewed
	}

	if err := s.ApplicationRepository.MarkRejected(ctx, app.ID, reviewerID, req.Reason); err != nil {
		return fmt.Errorf("failed to mark application rejected: %w", err)
	}

	if err := s.emailService.SendApplicationRejected(app.Email, app.Name, req.Reason); err != nil {
		slog.Error("rejection email failed", "application_id", app.ID, "error", err)
	}
	return nil
}

func (s *ApplicationServiceImpl) reviewerID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	reviewerID, ok := claims["user_id"].(string)
	if !ok || reviewerID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return reviewerID, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// generateTempPassword returns 12 url-safe random characters.
func generateTempPassword() (string, error) {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func mapApplicationToResponse(app application.Application) application.ApplicationResponse {
	return application.ApplicationResponse{
		ID:            app.ID,
		Email:         app.Email,
		Name:          app.Name,
		RequestedRole: app.RequestedRole,
		RollNumber:    app.RollNumber,
		Class:         app.Class,
		Department:    app.Department,
		Status:        string(app.Status),
		RejectReason:  app.RejectReason,
		CreatedAt:     app.CreatedAt.Format(time.RFC3339),
	}
}
