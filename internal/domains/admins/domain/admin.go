package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// Role is the staff privilege level of an admin account.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
)

// MinPasswordLength is the shortest admin password accepted.
const MinPasswordLength = 6

var (
	ErrInvalidEmail     = errors.New("admin email is invalid")
	ErrEmptyFullName    = errors.New("admin full name is required")
	ErrInvalidRole      = errors.New("admin role must be super_admin, admin, or staff")
	ErrWeakPassword     = errors.New("admin password must be at least 6 characters")
	ErrSelfDeactivation = errors.New("admins cannot deactivate their own account")
)

// Admin is a staff account with access to the management surface.
type Admin struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

// ParseRole matches raw against the known roles; blank means admin.
func ParseRole(raw string) (Role, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return RoleAdmin, nil
	}
	switch Role(raw) {
	case RoleSuperAdmin, RoleAdmin, RoleStaff:
		return Role(raw), nil
	}
	return "", ErrInvalidRole
}

// NormalizeEmail lowercases and trims an email for lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewAdmin builds an active account.
func NewAdmin(email, fullName string, role Role) (*Admin, error) {
	a := &Admin{Role: role, IsActive: true}
	email = NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return nil, ErrInvalidEmail
	}
	a.Email = email
	a.FullName = strings.TrimSpace(fullName)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// ValidatePassword enforces the minimum admin password length.
func ValidatePassword(plain string) error {
	if len(plain) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// IsSuperAdmin reports whether the account may manage other admins.
func (a *Admin) IsSuperAdmin() bool {
	return a != nil && a.Role == RoleSuperAdmin
}

// ToggleActive flips IsActive on target on behalf of actor.
func (a *Admin) ToggleActive(actorID int64) error {
	if a.ID == actorID && a.IsActive {
		return ErrSelfDeactivation
	}
	a.IsActive = !a.IsActive
	return nil
}

func (a *Admin) Validate() error {
	if a.Email == "" {
		return ErrInvalidEmail
	}
	if a.FullName == "" {
		return ErrEmptyFullName
	}
	switch a.Role {
	case RoleSuperAdmin, RoleAdmin, RoleStaff:
	default:
		return ErrInvalidRole
	}
	return nil
}

func (a *Admin) Clone() *Admin {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
