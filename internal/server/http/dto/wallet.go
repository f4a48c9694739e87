package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletResponse represents released and pending provider funds.
type WalletResponse struct {
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	PendingBalance   decimal.Decimal `json:"pendingBalance"`
}

// WithdrawRequest describes withdrawal request payload.
type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// WithdrawalResponse describes withdrawal history entry.
type WithdrawalResponse struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	ProcessedAt time.Time       `json:"processedAt"`
}

// PayoutInfoRequest is the payout destination a provider saves.
type PayoutInfoRequest struct {
	PayoutType    string `json:"payoutType"`
	PixKey        string `json:"pixKey"`
	BankName      string `json:"bankName"`
	AgencyNumber  string `json:"agencyNumber"`
	AccountNumber string `json:"accountNumber"`
}

type PayoutInfoResponse struct {
	PayoutType    string    `json:"payoutType"`
	PixKey        *string   `json:"pixKey"`
	BankName      *string   `json:"bankName"`
	AgencyNumber  *string   `json:"agencyNumber"`
	AccountNumber *string   `json:"accountNumber"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	OrderID   *uuid.UUID `json:"orderId,omitempty"`
	IsRead    bool       `json:"isRead"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
