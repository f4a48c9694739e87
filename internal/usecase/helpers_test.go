package usecase_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	testhelpers "github.com/GuiiMoreira/jobah-api/internal/test"
)

var decimalZero = decimal.Zero

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func price(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func mustEqualDecimal(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("unexpected %s: got %s want %s", what, got, want)
	}
}

// notificationsFor returns the outbox entries addressed to userID.
func notificationsFor(store *testhelpers.MemoryStore, userID uuid.UUID) []model.Notification {
	var out []model.Notification
	for _, n := range store.Outbox() {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// parties seeds a client and a provider.
func parties(store *testhelpers.MemoryStore) (model.User, model.User) {
	return store.SeedUser(model.AccountClient, decimal.Zero), store.SeedUser(model.AccountProvider, decimal.Zero)
}
