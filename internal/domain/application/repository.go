package application

import (
	"context"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context, filter ListFilter) ([]Application, error)
	ExistsPendingByEmail(ctx context.Context, email string) (bool, error)
	MarkApproved(ctx context.Context, id, reviewerID string) error
	MarkRejected(ctx context.Context, id, reviewerID, reason string) error
}
