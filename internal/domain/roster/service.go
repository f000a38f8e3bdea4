package roster

import (
	"context"
)

// RosterService defines business logic for roster management
type RosterService interface {
	// GetRoster returns the merged roster: authoritative store entries plus
	// entries synthesized from historical ledger rows, deduplicated by roll
	// number with store entries winning
	GetRoster(ctx context.Context) ([]EntryResponse, error)

	// GetClassRoster returns the merged roster restricted to one class
	GetClassRoster(ctx context.Context, class string) ([]EntryResponse, error)

	// AddStudent creates an authoritative roster entry
	AddStudent(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)

	// UpdateStudent edits an authoritative roster entry
	UpdateStudent(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)

	// RemoveStudent deletes an authoritative roster entry
	RemoveStudent(ctx context.Context, id string) error

	// RemoveClass deletes every authoritative entry for a class
	RemoveClass(ctx context.Context, class string) (DeleteClassResponse, error)
}
