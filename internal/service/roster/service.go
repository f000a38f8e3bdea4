package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/domain/roster"
)

type RosterServiceImpl struct {
	roster.RosterRepository
	attendance.LedgerRepository
}

// loadMerged builds the merged roster view. The roster store is
// authoritative and its errors propagate; the ledger only enriches the view
// with historical students, so a failed ledger fetch degrades to store-only.
func (s *RosterServiceImpl) loadMerged(ctx context.Context) ([]roster.Entry, error) {
	storeEntries, err := s.RosterRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster store: %w", err)
	}

	var ledgerRecords []attendance.Record
	raws, err := s.LedgerRepository.List(ctx)
	if err != nil {
		slog.Error("ledger fetch failed, merging store entries only", "error", err)
	} else {
		ledgerRecords = attendance.NormalizeRecords(raws)
	}

	return MergeRosters(ledgerRecords, storeEntries), nil
}

// GetRoster implements roster.RosterService.
func (s *RosterServiceImpl) GetRoster(ctx context.Context) ([]roster.EntryResponse, error) {
	merged, err := s.loadMerged(ctx)
	if err != nil {
		return nil, err
	}
	return mapEntriesToResponse(merged), nil
}

// GetClassRoster implements roster.RosterService.
func (s *RosterServiceImpl) GetClassRoster(ctx context.Context, class string) ([]roster.EntryResponse, error) {
	merged, err := s.loadMerged(ctx)
	if err != nil {
		return nil, err
	}

	target := attendance.NormalizeValue(class)
	filtered := make([]roster.Entry, 0, len(merged))
	for _, entry := range merged {
		if attendance.NormalizeValue(entry.Class) == target {
			filtered = append(filtered, entry)
		}
	}
	return mapEntriesToResponse(filtered), nil
}

// AddStudent implements roster.RosterService.
func (s *RosterServiceImpl) AddStudent(ctx context.Context, req roster.CreateEntryRequest) (roster.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.EntryResponse{}, err
	}

	existing, err := s.RosterRepository.List(ctx)
	if err != nil {
		return roster.EntryResponse{}, fmt.Errorf("failed to list roster store: %w", err)
	}
	newRoll := attendance.NormalizeValue(req.RollNumber)
	for _, entry := range existing {
		if attendance.NormalizeValue(entry.RollNumber) == newRoll {
			return roster.EntryResponse{}, roster.ErrDuplicateRollNumber
		}
	}

	created, err := s.RosterRepository.Create(ctx, roster.Entry{
		Name:       req.Name,
		RollNumber: req.RollNumber,
		Class:      req.Class,
		Source:     roster.SourceStore,
	})
	if err != nil {
		return roster.EntryResponse{}, fmt.Errorf("failed to create roster entry: %w", err)
	}

	return mapEntryToResponse(created), nil
}

// UpdateStudent implements roster.RosterService.
func (s *RosterServiceImpl) UpdateStudent(ctx context.Context, req roster.UpdateEntryRequest) (roster.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.EntryResponse{}, err
	}

	if _, err := s.RosterRepository.GetByID(ctx, req.ID); err != nil {
		return roster.EntryResponse{}, err
	}

	if err := s.RosterRepository.Update(ctx, req); err != nil {
		return roster.EntryResponse{}, fmt.Errorf("failed to update roster entry: %w", err)
	}

	updated, err := s.RosterRepository.GetByID(ctx, req.ID)
	if err != nil {
		return roster.EntryResponse{}, err
	}
	return mapEntryToResponse(updated), nil
}

// RemoveStudent implements roster.RosterService.
func (s *RosterServiceImpl) RemoveStudent(ctx context.Context, id string) error {
	if _, err := s.RosterRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.RosterRepository.Delete(ctx, id)
}

// RemoveClass implements roster.RosterService.
func (s *RosterServiceImpl) RemoveClass(ctx context.Context, class string) (roster.DeleteClassResponse, error) {
	deleted, err := s.RosterRepository.DeleteByClass(ctx, class)
	if err != nil {
		return roster.DeleteClassResponse{}, fmt.Errorf("failed to delete class roster: %w", err)
	}
	return roster.DeleteClassResponse{Class: class, Deleted: deleted}, nil
}

func mapEntryToResponse(entry roster.Entry) roster.EntryResponse {
	return roster.EntryResponse{
		ID:         entry.ID,
		Name:       entry.Name,
		RollNumber: entry.RollNumber,
		Class:      entry.Class,
		Source:     string(entry.Source),
	}
}

func mapEntriesToResponse(entries []roster.Entry) []roster.EntryResponse {
	responses := make([]roster.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}
	return responses
}

func NewRosterService(
	rosterRepo roster.RosterRepository,
	ledgerRepo attendance.LedgerRepository,
) roster.RosterService {
	return &RosterServiceImpl{
		RosterRepository: rosterRepo,
		LedgerRepository: ledgerRepo,
	}
}
