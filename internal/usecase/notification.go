package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/domain/repository"
)

// NotificationUseCase exposes a user's inbox and the outbox to the dispatcher.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(store repository.Store) *NotificationUseCase {
	return &NotificationUseCase{notifications: store.Notifications()}
}

func (u *NotificationUseCase) List(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return u.notifications.ListByUser(ctx, userID)
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return u.notifications.MarkAllRead(ctx, userID)
}

// Delete removes one of the user's own notifications.
func (u *NotificationUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return u.notifications.Delete(ctx, id, userID)
}

// ClaimPending leases a batch of undelivered notifications for dispatch.
func (u *NotificationUseCase) ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error) {
	return u.notifications.ClaimUndispatched(ctx, limit, lease)
}

func (u *NotificationUseCase) MarkDispatched(ctx context.Context, id uuid.UUID) error {
	return u.notifications.MarkDispatched(ctx, id)
}
