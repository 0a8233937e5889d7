package dto

import (
	"time"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse is the account profile without credential material.
type AccountResponse struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	Name        string             `json:"name"`
	Role        domain.AccountRole `json:"role"`
	LastLoginAt *time.Time         `json:"lastLoginAt"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// LoginResponse bundles the bearer token with the account profile.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      AccountResponse `json:"user"`
}
