package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Full access, including employee management
	RoleHRD   Role = "hrd"   // Human resources staff
	RoleStaff Role = "staff" // Read-only dashboards
)

// AllRoles returns every role known to the application.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleHRD, RoleStaff}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHRD, RoleStaff:
		return true
	}
	return false
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	EmployeeID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// CanManageEmployees checks if user can create or delete employee records
func (u *User) CanManageEmployees() bool {
	return u.Role == RoleAdmin || u.Role == RoleHRD
}
