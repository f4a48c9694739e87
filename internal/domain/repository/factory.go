package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Services() ServiceRepository
	Orders() OrderRepository
	Proposals() ProposalRepository
	ChangeRequests() ChangeRequestRepository
	Reviews() ReviewRepository
	Balances() BalanceRepository
	Withdrawals() WithdrawalRepository
	PayoutInfo() PayoutInfoRepository
	Notifications() NotificationRepository
}

// UnitOfWork runs fn against repositories bound to one transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Transact(ctx context.Context, fn func(tx Factory) error) error
}

// Store combines non-transactional repository access with the unit of work.
type Store interface {
	Factory
	UnitOfWork
}
