package postgresql

import (
	"context"

	"github.com/edutrack/edutrack-backend-go/internal/domain/roster"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const rosterColumns = `id, name, roll_number, class, created_at, updated_at`

type rosterRepositoryImpl struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.RosterRepository {
	return &rosterRepositoryImpl{db: db}
}

func scanRosterEntry(row pgx.Row) (roster.Entry, error) {
	var entry roster.Entry
	err := row.Scan(
		&entry.ID,
		&entry.Name,
		&entry.RollNumber,
		&entry.Class,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return roster.Entry{}, err
	}
	// Everything persisted here is authoritative by definition.
	entry.Source = roster.SourceStore
	return entry, nil
}

func (r *rosterRepositoryImpl) collect(rows pgx.Rows) ([]roster.Entry, error) {
	defer rows.Close()

	entries := make([]roster.Entry, 0)
	for rows.Next() {
		entry, err := scanRosterEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// List implements roster.RosterRepository.
func (r *rosterRepositoryImpl) List(ctx context.Context) ([]roster.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+rosterColumns+` FROM roster_students ORDER BY class, roll_number`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// ListByClass implements roster.RosterRepository.
func (r *rosterRepositoryImpl) ListByClass(ctx context.Context, class string) ([]roster.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+rosterColumns+` FROM roster_students WHERE class = $1 ORDER BY roll_number`,
		class)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// GetByID implements roster.RosterRepository.
func (r *rosterRepositoryImpl) GetByID(ctx context.Context, id string) (roster.Entry, error) {
	q := GetQuerier(ctx, r.db)

	entry, err := scanRosterEntry(q.QueryRow(ctx,
		`SELECT `+rosterColumns+` FROM roster_students WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return roster.Entry{}, roster.ErrEntryNotFound
	}
	return entry, err
}

// Create implements roster.RosterRepository.
func (r *rosterRepositoryImpl) Create(ctx context.Context, entry roster.Entry) (roster.Entry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO roster_students (id, name, roll_number, class)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + rosterColumns

	return scanRosterEntry(q.QueryRow(ctx, query, entry.ID, entry.Name, entry.RollNumber, entry.Class))
}

// Update implements roster.RosterRepository.
func (r *rosterRepositoryImpl) Update(ctx context.Context, req roster.UpdateEntryRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roster_students
		SET name = COALESCE($2, name),
			roll_number = COALESCE($3, roll_number),
			class = COALESCE($4, class),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Name, req.RollNumber, req.Class)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return roster.ErrEntryNotFound
	}
	return nil
}

// Delete implements roster.RosterRepository.
func (r *rosterRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM roster_students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return roster.ErrEntryNotFound
	}
	return nil
}

// DeleteByClass implements roster.RosterRepository.
func (r *rosterRepositoryImpl) DeleteByClass(ctx context.Context, class string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM roster_students WHERE class = $1`, class)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
