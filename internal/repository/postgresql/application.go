package postgresql

import (
	"context"

	"github.com/edutrack/edutrack-backend-go/internal/domain/application"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, email, name, requested_role, roll_number, class, department,
		status, reject_reason, reviewed_by, reviewed_at, created_at, updated_at`

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var app application.Application
	err := row.Scan(
		&app.ID,
		&app.Email,
		&app.Name,
		&app.RequestedRole,
		&app.RollNumber,
		&app.Class,
		&app.Department,
		&app.Status,
		&app.RejectReason,
		&app.ReviewedBy,
		&app.ReviewedAt,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return application.Application{}, err
	}
	return app, nil
}

// Create implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) Create(ctx context.Context, app application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	if app.ID == "" {
		app.ID = uuid.New().String()
	}

	query := `
		INSERT INTO signup_applications (id, email, name, requested_role, roll_number, class, department, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + applicationColumns

	return scanApplication(q.QueryRow(ctx, query,
		app.ID,
		app.Email,
		app.Name,
		app.RequestedRole,
		app.RollNumber,
		app.Class,
		app.Department,
		application.StatusPending,
	))
}

// GetByID implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	app, err := scanApplication(q.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM signup_applications WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return app, err
}

// List implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) List(ctx context.Context, filter application.ListFilter) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + ` FROM signup_applications`
	args := make([]any, 0, 1)
	if filter.Status != nil {
		query += ` WHERE status = $1`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]application.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// ExistsPendingByEmail implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) ExistsPendingByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM signup_applications WHERE email = $1 AND status = $2)`,
		email, application.StatusPending).Scan(&exists)
	return exists, err
}

// MarkApproved implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) MarkApproved(ctx context.Context, id, reviewerID string) error {
	return r.review(ctx, id, reviewerID, application.StatusApproved, nil)
}

// MarkRejected implements application.ApplicationRepository.
func (r *applicationRepositoryImpl) MarkRejected(ctx context.Context, id, reviewerID, reason string) error {
	return r.review(ctx, id, reviewerID, application.StatusRejected, &reason)
}

func (r *applicationRepositoryImpl) review(ctx context.Context, id, reviewerID string, status application.Status, reason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE signup_applications
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(), reject_reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
	`

	tag, err := q.Exec(ctx, query, id, status, reviewerID, reason, application.StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return application.ErrAlreadyReviewed
	}
	return nil
}
