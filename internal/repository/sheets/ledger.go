package sheets

import (
	"context"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/sheets"
)

type ledgerRepositoryImpl struct {
	client *sheets.Client
}

// NewLedgerRepository adapts the Apps Script client to the domain ledger
// interface.
func NewLedgerRepository(client *sheets.Client) attendance.LedgerRepository {
	return &ledgerRepositoryImpl{client: client}
}

// List implements attendance.LedgerRepository.
func (r *ledgerRepositoryImpl) List(ctx context.Context) ([]attendance.RawRecord, error) {
	rows, err := r.client.Read(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]attendance.RawRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, attendance.RawRecord(row))
	}
	return records, nil
}

// Append implements attendance.LedgerRepository. The wire format is fixed:
// day-first date text and 12-hour time text.
func (r *ledgerRepositoryImpl) Append(ctx context.Context, rec attendance.Record) error {
	return r.client.Append(ctx, map[string]any{
		"date":       rec.Date,
		"time":       rec.Time,
		"rollNumber": rec.RollNumber,
		"name":       rec.Name,
		"class":      rec.Class,
	})
}

// Delete implements attendance.LedgerRepository.
func (r *ledgerRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, id)
}
