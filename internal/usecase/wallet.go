package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/domain/repository"
)

// WalletUseCase manages provider funds.
type WalletUseCase struct {
	store  repository.Store
	logger *slog.Logger
}

// NewWalletUseCase constructs WalletUseCase.
func NewWalletUseCase(store repository.Store, logger *slog.Logger) *WalletUseCase {
	return &WalletUseCase{store: store, logger: logger}
}

// Dashboard returns released funds and the value of orders still in progress.
func (u *WalletUseCase) Dashboard(ctx context.Context, providerID uuid.UUID) (*model.WalletSummary, error) {
	available, err := u.store.Balances().Available(ctx, providerID)
	if err != nil {
		return nil, err
	}
	pending, err := u.store.Orders().PendingAmount(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return &model.WalletSummary{Available: available, Pending: pending}, nil
}

// Withdraw debits amount from the available balance and records the payout.
func (u *WalletUseCase) Withdraw(ctx context.Context, providerID uuid.UUID, amount decimal.Decimal) (*model.Withdrawal, error) {
	if !model.ValidAmount(amount) {
		return nil, domainErrors.Invalid("amount", "must be a positive amount with at most 2 decimal places")
	}

	withdrawal := &model.Withdrawal{
		ID:         uuid.New(),
		ProviderID: providerID,
		Amount:     amount,
		Status:     model.WithdrawalStatusCompleted,
	}
	err := u.store.Transact(ctx, func(tx repository.Factory) error {
		available, err := tx.Balances().LockAvailable(ctx, providerID)
		if err != nil {
			return err
		}
		if available.LessThan(amount) {
			return domainErrors.ErrInsufficientBalance
		}
		if err := tx.Balances().Debit(ctx, providerID, amount); err != nil {
			return err
		}
		return tx.Withdrawals().Create(ctx, withdrawal)
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "withdrawal completed",
		slog.String("provider_id", providerID.String()),
		slog.String("amount", amount.StringFixed(2)),
	)
	return withdrawal, nil
}

// Withdrawals returns the provider's payout history, newest first.
func (u *WalletUseCase) Withdrawals(ctx context.Context, providerID uuid.UUID) ([]model.Withdrawal, error) {
	return u.store.Withdrawals().ListByProvider(ctx, providerID)
}

// PayoutInfoInput is the payout destination submitted by a provider.
type PayoutInfoInput struct {
	Type          model.PayoutType
	PixKey        string
	BankName      string
	AgencyNumber  string
	AccountNumber string
}

// PayoutInfo returns the provider's saved payout destination.
func (u *WalletUseCase) PayoutInfo(ctx context.Context, providerID uuid.UUID) (*model.PayoutInfo, error) {
	return u.store.PayoutInfo().GetByProvider(ctx, providerID)
}

// SavePayoutInfo creates or replaces the provider's payout destination.
// Fields that do not belong to the selected type are cleared.
func (u *WalletUseCase) SavePayoutInfo(ctx context.Context, providerID uuid.UUID, in PayoutInfoInput) (*model.PayoutInfo, error) {
	info := &model.PayoutInfo{ProviderID: providerID, Type: in.Type}
	switch in.Type {
	case model.PayoutTypePix:
		info.PixKey = strings.TrimSpace(in.PixKey)
		if info.PixKey == "" {
			return nil, domainErrors.Invalid("pixKey", "is required for PIX payouts")
		}
	case model.PayoutTypeBankAccount:
		info.BankName = strings.TrimSpace(in.BankName)
		info.AgencyNumber = strings.TrimSpace(in.AgencyNumber)
		info.AccountNumber = strings.TrimSpace(in.AccountNumber)
		switch {
		case info.BankName == "":
			return nil, domainErrors.Invalid("bankName", "is required for bank payouts")
		case info.AgencyNumber == "":
			return nil, domainErrors.Invalid("agencyNumber", "is required for bank payouts")
		case info.AccountNumber == "":
			return nil, domainErrors.Invalid("accountNumber", "is required for bank payouts")
		}
	default:
		return nil, domainErrors.Invalid("payoutType", "must be PIX or BANK_ACCOUNT")
	}

	if err := u.store.PayoutInfo().Upsert(ctx, info); err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "payout info saved",
		slog.String("provider_id", providerID.String()),
		slog.String("type", string(info.Type)),
	)
	return info, nil
}
