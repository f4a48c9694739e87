package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPendingQuote        OrderStatus = "PENDING_QUOTE"
	OrderStatusPendingApproval     OrderStatus = "PENDING_APPROVAL"
	OrderStatusQuoteSent           OrderStatus = "QUOTE_SENT"
	OrderStatusAwaitingPayment     OrderStatus = "AWAITING_PAYMENT"
	OrderStatusScheduled           OrderStatus = "SCHEDULED"
	OrderStatusCompletionRequested OrderStatus = "COMPLETION_REQUESTED"
	OrderStatusCompleted           OrderStatus = "COMPLETED"
	OrderStatusRejected            OrderStatus = "REJECTED"
	OrderStatusCancelled           OrderStatus = "CANCELLED"
	OrderStatusProviderNoShow      OrderStatus = "PROVIDER_NO_SHOW"
)

// Terminal reports whether no further transition leaves this status.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusRejected, OrderStatusCancelled, OrderStatusProviderNoShow:
		return true
	}
	return false
}

// Valid reports whether the status is part of the lifecycle.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingQuote, OrderStatusPendingApproval, OrderStatusQuoteSent, OrderStatusAwaitingPayment,
		OrderStatusScheduled, OrderStatusCompletionRequested:
		return true
	}
	return s.Terminal()
}

// OrderType selects the non-instant creation path.
type OrderType string

const (
	OrderTypeDirectBooking OrderType = "DIRECT_BOOKING"
	OrderTypeQuoteRequest  OrderType = "QUOTE_REQUEST"
)

// Order is the central aggregate of the marketplace.
type Order struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	ProviderID   uuid.UUID
	Status       OrderStatus
	Price        decimal.NullDecimal
	ProposedDate *time.Time
	Note         string
	Items        []OrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem fixes what was ordered and, when known, at which unit price.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ServiceID uuid.UUID
	// Position is the zero-based place of the item in the order as requested.
	Position  int
	Quantity  int
	UnitPrice decimal.NullDecimal
}

// RoleOf resolves the caller's relationship to the order.
func (o *Order) RoleOf(userID uuid.UUID) Role {
	switch userID {
	case o.ClientID:
		return RoleClient
	case o.ProviderID:
		return RoleProvider
	}
	return RoleNeither
}

// Counterparty returns the other party of the order for the given role.
func (o *Order) Counterparty(role Role) uuid.UUID {
	if role == RoleClient {
		return o.ProviderID
	}
	return o.ClientID
}
