package middleware

import (
	"net/http"

	"github.com/edutrack/edutrack-backend-go/internal/domain/user"
	"github.com/edutrack/edutrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func claimsRole(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := claimsRole(r)
		if !ok || !role.CanManageUsers() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// TeacherOrAdmin requires the teacher or admin role
func TeacherOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := claimsRole(r)
		if !ok || !role.CanRecordAttendance() {
			response.HandleError(w, user.ErrTeacherAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// StudentOnly requires the student role
func StudentOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := claimsRole(r)
		if !ok || !role.IsStudent() {
			response.HandleError(w, user.ErrInsufficientPermissions)
			return
		}

		next.ServeHTTP(w, r)
	})
}
