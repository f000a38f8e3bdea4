package roster

import "errors"

var (
	ErrEntryNotFound       = errors.New("roster entry not found")
	ErrDuplicateRollNumber = errors.New("roll number already on the roster")
)
