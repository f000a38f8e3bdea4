package attendance

import (
	"context"
)

// LedgerRepository is the external spreadsheet-backed ledger. Reads return
// the whole sheet; writes are fire-and-forget appends or deletes. The ledger
// enforces no uniqueness, so duplicate rows are possible and expected.
type LedgerRepository interface {
	List(ctx context.Context) ([]RawRecord, error)
	Append(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
}
