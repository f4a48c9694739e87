package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ChangeRequestType string

const (
	ChangeRequestPriceAdjustment ChangeRequestType = "PRICE_ADJUSTMENT"
	ChangeRequestScheduleChange  ChangeRequestType = "SCHEDULE_CHANGE"
	ChangeRequestScopeChange     ChangeRequestType = "SCOPE_CHANGE"
)

func (t ChangeRequestType) Valid() bool {
	switch t {
	case ChangeRequestPriceAdjustment, ChangeRequestScheduleChange, ChangeRequestScopeChange:
		return true
	}
	return false
}

type ChangeRequestStatus string

const (
	ChangeRequestPending  ChangeRequestStatus = "PENDING"
	ChangeRequestAccepted ChangeRequestStatus = "ACCEPTED"
	ChangeRequestRejected ChangeRequestStatus = "REJECTED"
)

// ChangeRequestAction is the counterparty's decision on a pending request.
type ChangeRequestAction string

const (
	ChangeRequestAccept ChangeRequestAction = "ACCEPT"
	ChangeRequestReject ChangeRequestAction = "REJECT"
)

// ChangeRequest is a proposed amendment to an order raised by one of its parties.
type ChangeRequest struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	RequestedByID uuid.UUID
	Type          ChangeRequestType
	Details       string
	ProposedPrice decimal.NullDecimal
	ProposedDate  *time.Time
	Status        ChangeRequestStatus
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

// ApplyTo copies the proposed fields onto the order, leaving absent ones untouched.
func (r *ChangeRequest) ApplyTo(order *Order) {
	if r.ProposedPrice.Valid {
		order.Price = r.ProposedPrice
	}
	if r.ProposedDate != nil {
		d := *r.ProposedDate
		order.ProposedDate = &d
	}
}
