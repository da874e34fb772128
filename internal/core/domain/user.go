package domain

import "time"

// UserRole is the closed set of roles a user can hold. Roles are tags on the user,
// not stored entities; the permission matrix is keyed by them.
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin" // tenant-less operator, sees all churches
	RoleAdmin      UserRole = "admin"
	RolePastor     UserRole = "pastor"
	RoleSecretary  UserRole = "secretary"
	RoleTreasurer  UserRole = "treasurer"
)

// TenantRoles are the roles assignable within a church, in display order.
// RoleSuperAdmin is deliberately absent: it is never owned by a tenant.
var TenantRoles = []UserRole{RoleAdmin, RolePastor, RoleSecretary, RoleTreasurer}

// Valid reports whether r is one of the known role tags.
func (r UserRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RolePastor, RoleSecretary, RoleTreasurer:
		return true
	}
	return false
}

// Label returns the pt-BR display label for the role.
func (r UserRole) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleAdmin:
		return "Administrador"
	case RolePastor:
		return "Pastor"
	case RoleSecretary:
		return "Secretário(a)"
	case RoleTreasurer:
		return "Tesoureiro(a)"
	}
	return string(r)
}

// User represents a principal. Every user is owned by exactly one church, except
// super admins whose ChurchID is empty.
type User struct {
	UserID       string   `json:"userID" db:"user_id"`
	ChurchID     string   `json:"churchID" db:"church_id"`
	Name         string   `json:"name" db:"name"`
	Email        string   `json:"email" db:"email"`
	PasswordHash string   `json:"-" db:"password_hash"`
	Role         UserRole `json:"role" db:"role"`
	IsActive     bool     `json:"isActive" db:"is_active"`
	AuditFields
	RefreshTokenHash       string     `json:"-" db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `json:"-" db:"refresh_token_expiry_time"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

// IsSuperAdmin reports whether the user is the tenant-less operator.
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
