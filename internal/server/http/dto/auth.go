package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterRequest describes the sign-up payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Kind     string `json:"kind"`
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Kind         string          `json:"kind"`
	Rating       decimal.Decimal `json:"rating"`
	TotalReviews int             `json:"totalReviews"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// AuthResponse carries the issued token.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
