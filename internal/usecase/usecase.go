package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/domain/repository"
)

// notify writes an outbox entry in the running unit of work.
func notify(ctx context.Context, tx repository.Factory, userID uuid.UUID, kind model.NotificationType, orderID uuid.UUID, message string) error {
	related := orderID
	n := &model.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    kind,
		Message: message,
		OrderID: &related,
	}
	if err := tx.Notifications().Enqueue(ctx, n); err != nil {
		return fmt.Errorf("notify %s: %w", kind, err)
	}
	return nil
}

// lockOrder loads the order under a row lock and resolves the caller's role.
// Callers that are not a party see ErrNotFound.
func lockOrder(ctx context.Context, tx repository.Factory, orderID, callerID uuid.UUID) (*model.Order, model.Role, error) {
	order, err := tx.Orders().GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, model.RoleNeither, err
	}
	role := order.RoleOf(callerID)
	if !role.IsParty() {
		return nil, model.RoleNeither, domainErrors.ErrNotFound
	}
	return order, role, nil
}

// readOrder is the lock-free variant of lockOrder for queries.
func readOrder(ctx context.Context, repos repository.Factory, orderID, callerID uuid.UUID) (*model.Order, model.Role, error) {
	order, err := repos.Orders().GetByID(ctx, orderID)
	if err != nil {
		return nil, model.RoleNeither, err
	}
	role := order.RoleOf(callerID)
	if !role.IsParty() {
		return nil, model.RoleNeither, domainErrors.ErrNotFound
	}
	return order, role, nil
}
