package response

import (
	"errors"
	"net/http"

	"github.com/edutrack/edutrack-backend-go/internal/domain/application"
	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/domain/auth"
	"github.com/edutrack/edutrack-backend-go/internal/domain/roster"
	"github.com/edutrack/edutrack-backend-go/internal/domain/user"
	"github.com/edutrack/edutrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrPasswordLoginOnly):
		BadRequest(w, "Account has no password, use OAuth login", nil)
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrRollNumberExists):
		Conflict(w, "Roll number already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrStudentProfileIncomplete):
		Conflict(w, "Student profile is missing roll number or class")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		Conflict(w, "Cannot delete own account")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrTeacherAccessRequired):
		Forbidden(w, "Teacher access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Roster domain errors
	case errors.Is(err, roster.ErrEntryNotFound):
		NotFound(w, "Roster entry not found")
	case errors.Is(err, roster.ErrDuplicateRollNumber):
		Conflict(w, "Roll number already on the roster")

	// Application domain errors
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, application.ErrAlreadyReviewed):
		Conflict(w, "Application already reviewed")
	case errors.Is(err, application.ErrPendingExists):
		Conflict(w, "A pending application already exists for this email")
	case errors.Is(err, application.ErrEmailRegistered):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrLedgerUnavailable):
		BadGateway(w, "Attendance ledger is unavailable")
	case errors.Is(err, attendance.ErrStudentIdentityMissing):
		Conflict(w, "Student account is missing roll number or class")
	case errors.Is(err, attendance.ErrInvalidCalendarMonth):
		BadRequest(w, "Invalid calendar month", nil)
	case errors.Is(err, attendance.ErrNoStudentsToMark):
		BadRequest(w, "No students to mark", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
