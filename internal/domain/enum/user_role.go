package enum

// UserRole represents a user's role in the system
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleCashier UserRole = "cashier"
)

func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the role is one of the recognized values
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleCashier:
		return true
	}
	return false
}

// UserStatus represents a user account's status
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusDeactivated UserStatus = "deactivated"
	UserStatusPending     UserStatus = "pending"
)

func (s UserStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the recognized values
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusDeactivated, UserStatusPending:
		return true
	}
	return false
}
