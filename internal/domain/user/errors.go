package user

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrUserEmailExists          = errors.New("email already registered")
	ErrInvalidRole              = errors.New("invalid role")
	ErrRollNumberExists         = errors.New("roll number already registered")
	ErrAdminPrivilegeRequired   = errors.New("admin privilege required")
	ErrTeacherAccessRequired    = errors.New("teacher access required")
	ErrStudentProfileIncomplete = errors.New("student profile is missing roll number or class")
	ErrInsufficientPermissions  = errors.New("insufficient permissions")
	ErrCannotDeleteSelf         = errors.New("cannot delete own account")
)
