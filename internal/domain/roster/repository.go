package roster

import (
	"context"
)

// RosterRepository is the authoritative roster store. Only store-sourced
// entries live here; ledger-derived entries are synthesized at read time by
// the service layer.
type RosterRepository interface {
	List(ctx context.Context) ([]Entry, error)
	ListByClass(ctx context.Context, class string) ([]Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	Create(ctx context.Context, entry Entry) (Entry, error)
	Update(ctx context.Context, req UpdateEntryRequest) error
	Delete(ctx context.Context, id string) error
	DeleteByClass(ctx context.Context, class string) (int64, error)
}
