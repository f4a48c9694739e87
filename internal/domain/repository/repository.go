package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

// UserRepository describes persistence operations for accounts and provider aggregates.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// LockByID reads the account and holds its row lock until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateRating(ctx context.Context, id uuid.UUID, rating model.RatingAggregate) error
}

// ServiceRepository manages the provider service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, service *model.ProviderService) error
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.ProviderService, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.ProviderService, error)
}

// OrderRepository describes persistence operations with orders and their items.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	// GetForUpdate reads the order and holds its row lock until the transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Order, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Order, error)
	PendingAmount(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error)
}

// ProposalRepository stores provider quotes.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *model.Proposal) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.Proposal, error)
	// Finalize marks the accepted proposal and declines its open siblings.
	Finalize(ctx context.Context, orderID, acceptedID uuid.UUID) error
}

// ChangeRequestRepository stores order amendment requests.
type ChangeRequestRepository interface {
	Create(ctx context.Context, request *model.ChangeRequest) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*model.ChangeRequest, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.ChangeRequest, error)
	Resolve(ctx context.Context, id uuid.UUID, status model.ChangeRequestStatus, resolvedAt time.Time) error
}

// ReviewRepository stores reviews and answers aggregate queries over active ones.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
	ListActiveByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Review, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ActiveStats(ctx context.Context, providerID uuid.UUID) (sum int64, count int64, err error)
}

// BalanceRepository manages provider available balance.
type BalanceRepository interface {
	// LockAvailable reads the balance and holds its row lock until the transaction ends.
	LockAvailable(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error)
	Credit(ctx context.Context, providerID uuid.UUID, amount decimal.Decimal) error
	Debit(ctx context.Context, providerID uuid.UUID, amount decimal.Decimal) error
	// RecordRelease fails with ErrAlreadyReleased when the order was settled before.
	RecordRelease(ctx context.Context, orderID, providerID uuid.UUID, amount decimal.Decimal) error
	Available(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error)
}

// WithdrawalRepository provides access to withdrawals.
type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *model.Withdrawal) error
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Withdrawal, error)
}

// PayoutInfoRepository stores one payout destination per provider.
type PayoutInfoRepository interface {
	GetByProvider(ctx context.Context, providerID uuid.UUID) (*model.PayoutInfo, error)
	Upsert(ctx context.Context, info *model.PayoutInfo) error
}

// NotificationRepository is the notification outbox.
type NotificationRepository interface {
	Enqueue(ctx context.Context, notification *model.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// ClaimUndispatched leases up to limit undelivered notifications.
	ClaimUndispatched(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error)
	MarkDispatched(ctx context.Context, id uuid.UUID) error
}
