package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/domain/roster"
	"github.com/edutrack/edutrack-backend-go/internal/domain/user"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/timefmt"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendance.LedgerRepository
	user.UserRepository
	roster.RosterRepository
}

// fetchLedger reads and normalizes the whole ledger. An unreachable ledger
// degrades to an empty one so student reads never fail outright.
func (s *AttendanceServiceImpl) fetchLedger(ctx context.Context) []attendance.Record {
	raws, err := s.LedgerRepository.List(ctx)
	if err != nil {
		slog.Error("ledger fetch failed, serving empty ledger", "error", err)
		return nil
	}
	return attendance.NormalizeRecords(raws)
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Record, error) {
	records := s.fetchLedger(ctx)

	// Date filters arrive either as ledger text or as the YYYY-MM-DD shape
	// HTML date inputs produce.
	var wantDate string
	if filter.Date != nil {
		wantDate = timefmt.NormalizeDateText(*filter.Date)
		if t, ok := validator.IsValidDate(wantDate); ok {
			wantDate = timefmt.FormatDateDDMMYYYY(t)
		}
	}

	filtered := make([]attendance.Record, 0, len(records))
	for _, rec := range records {
		if filter.Class != nil && attendance.NormalizeValue(rec.Class) != attendance.NormalizeValue(*filter.Class) {
			continue
		}
		if filter.RollNumber != nil && attendance.NormalizeValue(rec.RollNumber) != attendance.NormalizeValue(*filter.RollNumber) {
			continue
		}
		if filter.Date != nil && rec.Date != wantDate {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered, nil
}

// MarkAttendance implements attendance.AttendanceService. Each student is an
// independent ledger append; partial failure is tolerated and reported via
// the marked count.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}
	if len(req.Students) == 0 {
		return attendance.MarkAttendanceResponse{}, attendance.ErrNoStudentsToMark
	}

	now := time.Now()
	date := req.Date
	if date == "" {
		date = timefmt.FormatDateDDMMYYYY(now)
	}
	timeText := now.Format("3:04 PM")

	marked := 0
	for _, student := range req.Students {
		rec := attendance.Record{
			RollNumber: student.RollNumber,
			Name:       student.Name,
			Class:      req.Class,
			Date:       date,
			Time:       timeText,
		}
		if err := s.LedgerRepository.Append(ctx, rec); err != nil {
			slog.Error("ledger append failed",
				"roll_number", student.RollNumber,
				"class", req.Class,
				"error", err,
			)
			continue
		}
		marked++
	}

	if marked == 0 {
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("%w: no appends succeeded", attendance.ErrLedgerUnavailable)
	}

	return attendance.MarkAttendanceResponse{
		Marked: marked,
		Class:  req.Class,
		Date:   date,
		Time:   timeText,
	}, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if err := s.LedgerRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %s", attendance.ErrLedgerUnavailable, err)
	}
	return nil
}

// GetMyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyStats(ctx context.Context) (attendance.StatsResponse, error) {
	u, err := s.currentUser(ctx)
	if err != nil {
		return attendance.StatsResponse{}, err
	}
	if u.RollNumber == nil || *u.RollNumber == "" || u.Class == nil || *u.Class == "" {
		return attendance.StatsResponse{}, attendance.ErrStudentIdentityMissing
	}

	result := ComputeStats(s.fetchLedger(ctx), *u.RollNumber, *u.Class)

	// The dashboard shows clock times in 12-hour text.
	records := make([]attendance.Record, len(result.MyRecords))
	for i, rec := range result.MyRecords {
		rec.Time = timefmt.FormatTimeReadable(rec.Time)
		records[i] = rec
	}

	return attendance.StatsResponse{
		Stats:        result.Stats,
		Records:      records,
		ClassDates:   sortedDates(result.ClassDates),
		PresentDates: sortedDates(result.PresentDates),
	}, nil
}

// GetMyCalendar implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyCalendar(ctx context.Context, req attendance.CalendarRequest) (attendance.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CalendarResponse{}, err
	}

	u, err := s.currentUser(ctx)
	if err != nil {
		return attendance.CalendarResponse{}, err
	}
	if u.RollNumber == nil || *u.RollNumber == "" || u.Class == nil || *u.Class == "" {
		return attendance.CalendarResponse{}, attendance.ErrStudentIdentityMissing
	}

	result := ComputeStats(s.fetchLedger(ctx), *u.RollNumber, *u.Class)

	return attendance.CalendarResponse{
		Month: req.Month,
		Year:  req.Year,
		Days:  BuildMonth(req.Month, req.Year, result.ClassDates, result.PresentDates),
	}, nil
}

// ListClasses implements attendance.AttendanceService. Classes are the union
// of roster classes and classes seen in ledger history, so a class with
// history but no roster yet is still offered.
func (s *AttendanceServiceImpl) ListClasses(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	classes := make([]string, 0)

	entries, err := s.RosterRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	for _, entry := range entries {
		if entry.Class == "" {
			continue
		}
		if _, ok := seen[entry.Class]; !ok {
			seen[entry.Class] = struct{}{}
			classes = append(classes, entry.Class)
		}
	}

	for _, rec := range s.fetchLedger(ctx) {
		if rec.Class == "" {
			continue
		}
		if _, ok := seen[rec.Class]; !ok {
			seen[rec.Class] = struct{}{}
			classes = append(classes, rec.Class)
		}
	}

	sort.Strings(classes)
	return classes, nil
}

func (s *AttendanceServiceImpl) currentUser(ctx context.Context) (user.User, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.User{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	return u, nil
}

func NewAttendanceService(
	ledgerRepo attendance.LedgerRepository,
	userRepo user.UserRepository,
	rosterRepo roster.RosterRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		LedgerRepository: ledgerRepo,
		UserRepository:   userRepo,
		RosterRepository: rosterRepo,
	}
}
