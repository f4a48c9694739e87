package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProviderService is a service a provider offers, with optional fixed pricing.
type ProviderService struct {
	ID                  uuid.UUID
	ProviderID          uuid.UUID
	Name                string
	BasePrice           decimal.NullDecimal
	AllowInstantBooking bool
	CreatedAt           time.Time
}

// InstantBookable reports whether the service can be booked without approval.
func (s ProviderService) InstantBookable() bool {
	return s.AllowInstantBooking && s.BasePrice.Valid
}
