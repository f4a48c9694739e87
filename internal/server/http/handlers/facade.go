package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (model.Identity, error)
}

// CatalogFacade exposes the provider service catalog.
type CatalogFacade interface {
	CreateService(ctx context.Context, caller model.Identity, in usecase.ServiceInput) (*model.ProviderService, error)
	Services(ctx context.Context, providerID uuid.UUID) ([]model.ProviderService, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, clientID uuid.UUID, in usecase.CreateOrderInput) (*model.Order, error)
	Orders(ctx context.Context, caller model.Identity) (*usecase.OrderLists, error)
	Order(ctx context.Context, callerID, orderID uuid.UUID) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, callerID, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error)
	ConfirmPayment(ctx context.Context, callerID, orderID uuid.UUID) (*model.Order, error)
	CreatePixCharge(ctx context.Context, callerID, orderID uuid.UUID) (*model.PixCharge, error)
	ConfirmPixPayment(ctx context.Context, txid string) (bool, error)
}

type ProposalFacade interface {
	CreateProposal(ctx context.Context, callerID, orderID uuid.UUID, price decimal.Decimal, details string) (*model.Proposal, error)
	Proposals(ctx context.Context, callerID, orderID uuid.UUID) ([]model.Proposal, error)
	AcceptProposal(ctx context.Context, callerID, proposalID uuid.UUID) (*model.Order, error)
	AcceptProposalAndPay(ctx context.Context, callerID, proposalID uuid.UUID) (*model.Order, error)
}

type ChangeRequestFacade interface {
	CreateChangeRequest(ctx context.Context, callerID, orderID uuid.UUID, in usecase.ChangeRequestInput) (*model.ChangeRequest, error)
	ChangeRequests(ctx context.Context, callerID, orderID uuid.UUID) ([]model.ChangeRequest, error)
	ResolveChangeRequest(ctx context.Context, callerID, requestID uuid.UUID, action model.ChangeRequestAction) (*model.ChangeRequest, error)
}

type ReviewFacade interface {
	CreateReview(ctx context.Context, caller model.Identity, orderID uuid.UUID, rating int, comment string) (*model.Review, error)
	DeleteReview(ctx context.Context, callerID, reviewID uuid.UUID) error
	Reviews(ctx context.Context, providerID uuid.UUID) ([]model.Review, error)
}

// WalletFacade provides provider balance operations.
type WalletFacade interface {
	Wallet(ctx context.Context, providerID uuid.UUID) (*model.WalletSummary, error)
	Withdraw(ctx context.Context, providerID uuid.UUID, amount decimal.Decimal) (*model.Withdrawal, error)
	Withdrawals(ctx context.Context, providerID uuid.UUID) ([]model.Withdrawal, error)
	PayoutInfo(ctx context.Context, providerID uuid.UUID) (*model.PayoutInfo, error)
	SavePayoutInfo(ctx context.Context, providerID uuid.UUID, in usecase.PayoutInfoInput) (*model.PayoutInfo, error)
}

type NotificationFacade interface {
	Notifications(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID uuid.UUID) error
	DeleteNotification(ctx context.Context, userID, id uuid.UUID) error
}

type HealthFacade interface {
	Ping(ctx context.Context) error
}

// MarketplaceFacade aggregates the full set of operations used across handlers.
type MarketplaceFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
	ProposalFacade
	ChangeRequestFacade
	ReviewFacade
	WalletFacade
	NotificationFacade
	HealthFacade
}
