package attendance

import (
	"context"
)

// AttendanceService defines business logic around the external ledger
type AttendanceService interface {
	// ListAttendance retrieves normalized ledger rows, optionally filtered
	// by class, roll number or date (teacher/admin history view)
	ListAttendance(ctx context.Context, filter ListAttendanceFilter) ([]Record, error)

	// MarkAttendance appends one ledger row per marked student, stamped with
	// the submission date and time
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)

	// DeleteAttendance removes a ledger row by id
	DeleteAttendance(ctx context.Context, id string) error

	// GetMyStats computes the authenticated student's attendance statistics
	// against the days their class was held
	GetMyStats(ctx context.Context) (StatsResponse, error)

	// GetMyCalendar classifies every day of the requested month for the
	// authenticated student
	GetMyCalendar(ctx context.Context, req CalendarRequest) (CalendarResponse, error)

	// ListClasses returns the distinct classes known to the ledger and the
	// roster, sorted
	ListClasses(ctx context.Context) ([]string, error)
}
