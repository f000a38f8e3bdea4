package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Manages accounts and signup applications
	RoleTeacher Role = "teacher" // Records attendance, manages the roster
	RoleStudent Role = "student" // Views own attendance only
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	Name            string
	RollNumber      *string
	Class           *string
	Department      *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanManageUsers reports whether the role may create, update or delete
// accounts and review signup applications.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// CanRecordAttendance reports whether the role may append or delete ledger
// rows and manage the roster. Admins hold every teacher capability.
func (r Role) CanRecordAttendance() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// IsStudent reports whether the role is limited to its own attendance view.
func (r Role) IsStudent() bool {
	return r == RoleStudent
}
