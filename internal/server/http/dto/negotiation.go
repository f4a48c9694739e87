package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProposalRequest is a provider quote.
type ProposalRequest struct {
	Price   decimal.Decimal `json:"price"`
	Details string          `json:"details"`
}

type ProposalResponse struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"orderId"`
	Price     decimal.Decimal `json:"price"`
	Details   string          `json:"details,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ChangeRequestRequest proposes an amendment to an order.
type ChangeRequestRequest struct {
	Type          string              `json:"type"`
	Details       string              `json:"details"`
	ProposedPrice decimal.NullDecimal `json:"proposedPrice"`
	ProposedDate  *time.Time          `json:"proposedDate"`
}

// ResolveRequest accepts or rejects a change request.
type ResolveRequest struct {
	Action string `json:"action"`
}

type ChangeRequestResponse struct {
	ID            uuid.UUID           `json:"id"`
	OrderID       uuid.UUID           `json:"orderId"`
	RequestedByID uuid.UUID           `json:"requestedById"`
	Type          string              `json:"type"`
	Details       string              `json:"details"`
	ProposedPrice decimal.NullDecimal `json:"proposedPrice"`
	ProposedDate  *time.Time          `json:"proposedDate"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	ResolvedAt    *time.Time          `json:"resolvedAt"`
}

// ReviewRequest rates a completed order.
type ReviewRequest struct {
	OrderID uuid.UUID `json:"orderId"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
}

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"orderId"`
	ReviewerName string    `json:"reviewerName,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
