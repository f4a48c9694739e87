package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProposalStatus tracks whether a quote is still open.
type ProposalStatus string

const (
	ProposalStatusSent     ProposalStatus = "SENT"
	ProposalStatusAccepted ProposalStatus = "ACCEPTED"
	ProposalStatusDeclined ProposalStatus = "DECLINED"
)

// Proposal is a provider's quote against an order.
type Proposal struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Price     decimal.Decimal
	Details   string
	Status    ProposalStatus
	CreatedAt time.Time
}
