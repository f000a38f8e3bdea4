package attendance

import "errors"

var (
	ErrLedgerUnavailable      = errors.New("attendance ledger unavailable")
	ErrStudentIdentityMissing = errors.New("student profile has no roll number or class")
	ErrInvalidCalendarMonth   = errors.New("invalid calendar month or year")
	ErrNoStudentsToMark       = errors.New("no students to mark")
)
