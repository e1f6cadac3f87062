package domain

import "time"

// UserRole defines the back-office roles.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleSalesAgent UserRole = "sales_agent"
	RoleManager    UserRole = "manager"
	RoleAccountant UserRole = "accountant"
	RoleAuditor    UserRole = "auditor"
)

// User represents a back-office actor with a single role.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (e.g., UUID)
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// IsAdmin reports whether the user has the admin role. Admin implicitly
// satisfies every other capability predicate.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanCreateBooking reports whether the user may create bookings.
func (u *User) CanCreateBooking() bool {
	return u.IsAdmin() || u.Role == RoleSalesAgent
}

// CanValidateBooking reports whether the user may approve, reject or cancel bookings.
func (u *User) CanValidateBooking() bool {
	return u.IsAdmin() || u.Role == RoleManager
}

// CanViewAnalytics reports whether the user may view the analytics dashboard.
func (u *User) CanViewAnalytics() bool {
	return u.IsAdmin() || u.Role == RoleManager || u.Role == RoleAccountant
}

// CanViewFinancialReports reports whether the user may view financial reports.
func (u *User) CanViewFinancialReports() bool {
	return u.IsAdmin() || u.Role == RoleAccountant
}

// CanViewAuditLogs reports whether the user may read the audit trail.
func (u *User) CanViewAuditLogs() bool {
	return u.IsAdmin() || u.Role == RoleAuditor
}
