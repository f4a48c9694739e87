package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind distinguishes client accounts from provider accounts.
type AccountKind string

const (
	AccountClient   AccountKind = "client"
	AccountProvider AccountKind = "provider"
)

// Valid reports whether the kind is a known account kind.
func (k AccountKind) Valid() bool {
	return k == AccountClient || k == AccountProvider
}

// User represents a marketplace account. Provider accounts carry a balance and a rating aggregate.
type User struct {
	ID               uuid.UUID
	Name             string
	Email            string
	PasswordHash     string
	Kind             AccountKind
	AvailableBalance decimal.Decimal
	Rating           RatingAggregate
	CreatedAt        time.Time
}

// Identity is the authenticated caller resolved for a request.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Kind   AccountKind
}

// IsProvider reports whether the caller holds a provider account.
func (i Identity) IsProvider() bool {
	return i.Kind == AccountProvider
}
