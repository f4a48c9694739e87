package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const WithdrawalStatusCompleted WithdrawalStatus = "COMPLETED"

// Withdrawal is an immutable record of a balance debit.
type Withdrawal struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	Amount      decimal.Decimal
	Status      WithdrawalStatus
	ProcessedAt time.Time
}

// WalletSummary aggregates released and still pending provider funds.
type WalletSummary struct {
	Available decimal.Decimal
	Pending   decimal.Decimal
}
