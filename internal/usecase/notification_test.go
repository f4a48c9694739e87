package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	testhelpers "github.com/GuiiMoreira/jobah-api/internal/test"
	"github.com/GuiiMoreira/jobah-api/internal/usecase"
)

func TestNotificationInbox(t *testing.T) {
	store := testhelpers.NewMemoryStore()
	client, provider := parties(store)
	first := store.SeedOrder(client.ID, provider.ID, model.OrderStatusPendingApproval, price(10))
	second := store.SeedOrder(client.ID, provider.ID, model.OrderStatusPendingApproval, price(10))
	orders := usecase.NewOrderUseCase(store, discardLogger())
	uc := usecase.NewNotificationUseCase(store)
	ctx := context.Background()

	for _, o := range []model.Order{first, second} {
		if _, err := orders.UpdateStatus(ctx, provider.ID, o.ID, model.OrderStatusAwaitingPayment); err != nil {
			t.Fatalf("transition failed: %v", err)
		}
	}

	inbox, err := uc.List(ctx, client.ID)
	if err != nil || len(inbox) != 2 {
		t.Fatalf("unexpected inbox %+v %v", inbox, err)
	}
	if *inbox[0].OrderID != second.ID {
		t.Fatal("inbox must be newest first")
	}

	if err := uc.MarkAllRead(ctx, client.ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	inbox, _ = uc.List(ctx, client.ID)
	for _, n := range inbox {
		if !n.IsRead {
			t.Fatalf("notification %s not marked read", n.ID)
		}
	}

	if err := uc.Delete(ctx, provider.ID, inbox[0].ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("cannot delete someone else's notification, got %v", err)
	}
	if err := uc.Delete(ctx, client.ID, inbox[0].ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	inbox, _ = uc.List(ctx, client.ID)
	if len(inbox) != 1 {
		t.Fatalf("expected one notification left, got %d", len(inbox))
	}
}

func TestNotificationClaimAndDispatch(t *testing.T) {
	store := testhelpers.NewMemoryStore()
	client, provider := parties(store)
	order := store.SeedOrder(client.ID, provider.ID, model.OrderStatusPendingApproval, price(10))
	orders := usecase.NewOrderUseCase(store, discardLogger())
	uc := usecase.NewNotificationUseCase(store)
	ctx := context.Background()

	if _, err := orders.UpdateStatus(ctx, provider.ID, order.ID, model.OrderStatusAwaitingPayment); err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	claimed, err := uc.ClaimPending(ctx, 10, time.Hour)
	if err != nil || len(claimed) != 1 {
		t.Fatalf("expected one claimed notification, got %+v %v", claimed, err)
	}
	again, err := uc.ClaimPending(ctx, 10, time.Hour)
	if err != nil || len(again) != 0 {
		t.Fatalf("leased notification must not be claimed twice, got %+v %v", again, err)
	}

	if err := uc.MarkDispatched(ctx, claimed[0].ID); err != nil {
		t.Fatalf("mark dispatched failed: %v", err)
	}
	expired, err := uc.ClaimPending(ctx, 10, 0)
	if err != nil || len(expired) != 0 {
		t.Fatalf("dispatched notification must not be claimed again, got %+v %v", expired, err)
	}
}
