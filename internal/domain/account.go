package domain

import "time"

// AccountRole enumerates dashboard operator roles.
type AccountRole string

const (
	RoleAdmin AccountRole = "admin"
	RoleAgent AccountRole = "agent"
)

// Account models an admin or agent operating the triage dashboard.
// Accounts are seeded out of band; there is no self-registration.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         AccountRole
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
