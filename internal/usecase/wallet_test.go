package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	testhelpers "github.com/GuiiMoreira/jobah-api/internal/test"
	"github.com/GuiiMoreira/jobah-api/internal/usecase"
)

func TestWalletWithdrawNeverOverdraws(t *testing.T) {
	store := testhelpers.NewMemoryStore()
	provider := store.SeedUser(model.AccountProvider, decimal.NewFromInt(200))
	uc := usecase.NewWalletUseCase(store, discardLogger())
	ctx := context.Background()

	if _, err := uc.Withdraw(ctx, provider.ID, decimal.NewFromInt(250)); !errors.Is(err, domainErrors.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}
	mustEqualDecimal(t, "balance", store.User(provider.ID).AvailableBalance, "200")
	if store.WithdrawalCount() != 0 {
		t.Fatal("rejected withdrawal must not be recorded")
	}

	withdrawal, err := uc.Withdraw(ctx, provider.ID, decimal.NewFromInt(150))
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}
	if withdrawal.Status != model.WithdrawalStatusCompleted || withdrawal.ProcessedAt.IsZero() {
		t.Fatalf("unexpected withdrawal %+v", withdrawal)
	}
	mustEqualDecimal(t, "balance", store.User(provider.ID).AvailableBalance, "50")

	history, err := uc.Withdrawals(ctx, provider.ID)
	if err != nil || len(history) != 1 || history[0].ID != withdrawal.ID {
		t.Fatalf("unexpected history %+v %v", history, err)
	}
}

func TestWalletWithdrawRejectsInvalidAmounts(t *testing.T) {
	store := testhelpers.NewMemoryStore()
	provider := store.SeedUser(model.AccountProvider, decimal.NewFromInt(200))
	uc := usecase.NewWalletUseCase(store, discardLogger())

	for _, amount := range []string{"0", "-5", "0.005", "10.001", "1000000000000"} {
		_, err := uc.Withdraw(context.Background(), provider.ID, decimal.RequireFromString(amount))
		var verr *domainErrors.ValidationError
		if !errors.As(err, &verr) || verr.Field != "amount" {
			t.Fatalf("amount %s: expected validation error on amount, got %v", amount, err)
		}
	}
	mustEqualDecimal(t, "balance", store.User(provider.ID).AvailableBalance, "200")
	if store.WithdrawalCount() != 0 {
		t.Fatalf("expected no withdrawal records, got %d", store.WithdrawalCount())
	}

	if _, err := uc.Withdraw(context.Background(), provider.ID, decimal.RequireFromString("0.01")); err != nil {
		t.Fatalf("one cent withdrawal failed: %v", err)
	}
	mustEqualDecimal(t, "balance", store.User(provider.ID).AvailableBalance, "199.99")
}

func TestWalletConcurrentWithdrawalsStayNonNegative(t *testing.T) {
	store := testhelpers.NewMemoryStore()
	provider := store.SeedUser(model.AccountProvider, decimal.NewFromInt(100))
	uc := usecase.NewWalletUseCase(store, discardLogger())

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Withdraw(context.Background(), provider.ID, decimal.NewFromInt(30)); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 3 {
		t.Fatalf("expected 3 successful withdrawals, got %d", succeeded)
	}
	mustEqualDecimal(t, "balance", store.User(provider.ID).AvailableBalance, "10")
}

func TestWalletWithdrawRollsBackWhenRecordFails(t *testing.T) {
	store := testhelpers.NewMemoryStore()
	provider := store.SeedUser(model.AccountProvider, decimal.NewFromInt(100))
	boom := errors.New("insert failed")
	store.FailOn("Withdrawals.Create", boom)
	uc := usecase.NewWalletUseCase(store, discardLogger())

	if _, err := uc.Withdraw(context.Background(), provider.ID, decimal.NewFromInt(40)); !errors.Is(err, boom) {
		t.Fatalf("expected insert failure, got %v", err)
	}
	mustEqualDecimal(t, "balance", store.User(provider.ID).AvailableBalance, "100")
}

func TestWalletDashboard(t *testing.T) {
	store := testhelpers.NewMemoryStore()
	client := store.SeedUser(model.AccountClient, decimal.Zero)
	provider := store.SeedUser(model.AccountProvider, decimal.NewFromInt(75))
	store.SeedOrder(client.ID, provider.ID, model.OrderStatusScheduled, price(40))
	store.SeedOrder(client.ID, provider.ID, model.OrderStatusCompletionRequested, price(60))
	store.SeedOrder(client.ID, provider.ID, model.OrderStatusCompleted, price(500))
	store.SeedOrder(client.ID, provider.ID, model.OrderStatusPendingQuote, decimal.NullDecimal{})
	uc := usecase.NewWalletUseCase(store, discardLogger())

	summary, err := uc.Dashboard(context.Background(), provider.ID)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	mustEqualDecimal(t, "available", summary.Available, "75")
	mustEqualDecimal(t, "pending", summary.Pending, "100")
}

func TestWalletPayoutInfo(t *testing.T) {
	store := testhelpers.NewMemoryStore()
	provider := store.SeedUser(model.AccountProvider, decimal.Zero)
	uc := usecase.NewWalletUseCase(store, discardLogger())
	ctx := context.Background()

	if _, err := uc.PayoutInfo(ctx, provider.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found before saving, got %v", err)
	}

	cases := []struct {
		name  string
		in    usecase.PayoutInfoInput
		field string
	}{
		{"unknown type", usecase.PayoutInfoInput{Type: "CASH"}, "payoutType"},
		{"pix without key", usecase.PayoutInfoInput{Type: model.PayoutTypePix, PixKey: "  "}, "pixKey"},
		{"bank without name", usecase.PayoutInfoInput{Type: model.PayoutTypeBankAccount, AgencyNumber: "0001", AccountNumber: "123"}, "bankName"},
		{"bank without agency", usecase.PayoutInfoInput{Type: model.PayoutTypeBankAccount, BankName: "Banco", AccountNumber: "123"}, "agencyNumber"},
		{"bank without account", usecase.PayoutInfoInput{Type: model.PayoutTypeBankAccount, BankName: "Banco", AgencyNumber: "0001"}, "accountNumber"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.SavePayoutInfo(ctx, provider.ID, tc.in)
			var verr *domainErrors.ValidationError
			if !errors.As(err, &verr) || verr.Field != tc.field {
				t.Fatalf("expected validation error on %s, got %v", tc.field, err)
			}
		})
	}

	if _, err := uc.SavePayoutInfo(ctx, provider.ID, usecase.PayoutInfoInput{
		Type: model.PayoutTypeBankAccount, BankName: " Banco ", AgencyNumber: "0001", AccountNumber: "12345-6", PixKey: "ignored",
	}); err != nil {
		t.Fatalf("save bank account failed: %v", err)
	}
	info, err := uc.PayoutInfo(ctx, provider.ID)
	if err != nil || info.BankName != "Banco" || info.PixKey != "" {
		t.Fatalf("unexpected bank payout info %+v %v", info, err)
	}

	if _, err := uc.SavePayoutInfo(ctx, provider.ID, usecase.PayoutInfoInput{Type: model.PayoutTypePix, PixKey: "provider@example.com", BankName: "stale"}); err != nil {
		t.Fatalf("switch to pix failed: %v", err)
	}
	info, err = uc.PayoutInfo(ctx, provider.ID)
	if err != nil || info.Type != model.PayoutTypePix || info.PixKey != "provider@example.com" || info.BankName != "" || info.AccountNumber != "" {
		t.Fatalf("switching type must clear bank details, got %+v %v", info, err)
	}
}
