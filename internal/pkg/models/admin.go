package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin roles
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// AdminUser represents an administrator account
type AdminUser struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	Mobile       string     `json:"mobile,omitempty" db:"mobile"`
	PasswordHash string     `json:"-" db:"password_hash"`
	PinHash      string     `json:"-" db:"pin_hash"`
	Role         string     `json:"role" db:"role"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	MFASecret    string     `json:"-" db:"mfa_secret"`
	MFAEnabled   bool       `json:"mfa_enabled" db:"mfa_enabled"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty" db:"deactivated_at"`
}

// Info returns the client-safe view of the admin, with all secret material stripped
func (a *AdminUser) Info() *AdminInfo {
	return &AdminInfo{
		ID:         a.ID,
		Email:      a.Email,
		Mobile:     a.Mobile,
		Role:       a.Role,
		MFAEnabled: a.MFAEnabled,
	}
}

// AdminInfo is the admin representation returned to clients
type AdminInfo struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile,omitempty"`
	Role       string    `json:"role"`
	MFAEnabled bool      `json:"mfa_enabled"`
}
