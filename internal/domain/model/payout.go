package model

import (
	"time"

	"github.com/google/uuid"
)

type PayoutType string

const (
	PayoutTypePix         PayoutType = "PIX"
	PayoutTypeBankAccount PayoutType = "BANK_ACCOUNT"
)

func (t PayoutType) Valid() bool {
	return t == PayoutTypePix || t == PayoutTypeBankAccount
}

// PayoutInfo is where a provider receives withdrawn funds.
// Only the fields of the selected type are set.
type PayoutInfo struct {
	ProviderID    uuid.UUID
	Type          PayoutType
	PixKey        string
	BankName      string
	AgencyNumber  string
	AccountNumber string
	UpdatedAt     time.Time
}
