package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/usecase"
)

// PaymentProvider issues instant-payment charges.
type PaymentProvider interface {
	CreateCharge(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*model.PixCharge, error)
}

// Publisher pushes a notification to connected clients.
type Publisher interface {
	Publish(ctx context.Context, n model.Notification) error
}

// HealthChecker reports whether storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// UseCases groups the business use cases behind the facade.
type UseCases struct {
	fx.In

	Auth           *usecase.AuthUseCase
	Catalog        *usecase.CatalogUseCase
	Orders         *usecase.OrderUseCase
	Proposals      *usecase.ProposalUseCase
	ChangeRequests *usecase.ChangeRequestUseCase
	Reviews        *usecase.ReviewUseCase
	Wallet         *usecase.WalletUseCase
	Notifications  *usecase.NotificationUseCase
}

type MarketplaceFacade struct {
	uc        UseCases
	payments  PaymentProvider
	publisher Publisher
	health    HealthChecker
}

func NewMarketplaceFacade(uc UseCases, payments PaymentProvider, publisher Publisher, health HealthChecker) *MarketplaceFacade {
	return &MarketplaceFacade{uc: uc, payments: payments, publisher: publisher, health: health}
}

func (f *MarketplaceFacade) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	return f.uc.Auth.Register(ctx, in)
}

func (f *MarketplaceFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.uc.Auth.Authenticate(ctx, email, password)
}

func (f *MarketplaceFacade) ParseToken(token string) (model.Identity, error) {
	return f.uc.Auth.ParseToken(token)
}

func (f *MarketplaceFacade) CreateService(ctx context.Context, caller model.Identity, in usecase.ServiceInput) (*model.ProviderService, error) {
	return f.uc.Catalog.CreateService(ctx, caller, in)
}

func (f *MarketplaceFacade) Services(ctx context.Context, providerID uuid.UUID) ([]model.ProviderService, error) {
	return f.uc.Catalog.ListServices(ctx, providerID)
}

func (f *MarketplaceFacade) CreateOrder(ctx context.Context, clientID uuid.UUID, in usecase.CreateOrderInput) (*model.Order, error) {
	return f.uc.Orders.Create(ctx, clientID, in)
}

func (f *MarketplaceFacade) Orders(ctx context.Context, caller model.Identity) (*usecase.OrderLists, error) {
	return f.uc.Orders.List(ctx, caller)
}

func (f *MarketplaceFacade) Order(ctx context.Context, callerID, orderID uuid.UUID) (*model.Order, error) {
	return f.uc.Orders.Get(ctx, callerID, orderID)
}

func (f *MarketplaceFacade) UpdateOrderStatus(ctx context.Context, callerID, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	return f.uc.Orders.UpdateStatus(ctx, callerID, orderID, status)
}

func (f *MarketplaceFacade) ConfirmPayment(ctx context.Context, callerID, orderID uuid.UUID) (*model.Order, error) {
	return f.uc.Orders.ConfirmPayment(ctx, callerID, orderID)
}

// CreatePixCharge issues a charge for the caller's order awaiting payment.
func (f *MarketplaceFacade) CreatePixCharge(ctx context.Context, callerID, orderID uuid.UUID) (*model.PixCharge, error) {
	order, err := f.uc.Orders.PayableOrder(ctx, callerID, orderID)
	if err != nil {
		return nil, err
	}
	return f.payments.CreateCharge(ctx, order.ID, order.Price.Decimal)
}

func (f *MarketplaceFacade) ConfirmPixPayment(ctx context.Context, txid string) (bool, error) {
	return f.uc.Orders.ConfirmPaymentFromProvider(ctx, txid)
}

func (f *MarketplaceFacade) CreateProposal(ctx context.Context, callerID, orderID uuid.UUID, price decimal.Decimal, details string) (*model.Proposal, error) {
	return f.uc.Proposals.Create(ctx, callerID, orderID, price, details)
}

func (f *MarketplaceFacade) Proposals(ctx context.Context, callerID, orderID uuid.UUID) ([]model.Proposal, error) {
	return f.uc.Proposals.List(ctx, callerID, orderID)
}

func (f *MarketplaceFacade) AcceptProposal(ctx context.Context, callerID, proposalID uuid.UUID) (*model.Order, error) {
	return f.uc.Proposals.Accept(ctx, callerID, proposalID)
}

func (f *MarketplaceFacade) AcceptProposalAndPay(ctx context.Context, callerID, proposalID uuid.UUID) (*model.Order, error) {
	return f.uc.Proposals.AcceptAndPay(ctx, callerID, proposalID)
}

func (f *MarketplaceFacade) CreateChangeRequest(ctx context.Context, callerID, orderID uuid.UUID, in usecase.ChangeRequestInput) (*model.ChangeRequest, error) {
	return f.uc.ChangeRequests.Create(ctx, callerID, orderID, in)
}

func (f *MarketplaceFacade) ChangeRequests(ctx context.Context, callerID, orderID uuid.UUID) ([]model.ChangeRequest, error) {
	return f.uc.ChangeRequests.List(ctx, callerID, orderID)
}

func (f *MarketplaceFacade) ResolveChangeRequest(ctx context.Context, callerID, requestID uuid.UUID, action model.ChangeRequestAction) (*model.ChangeRequest, error) {
	return f.uc.ChangeRequests.Resolve(ctx, callerID, requestID, action)
}

func (f *MarketplaceFacade) CreateReview(ctx context.Context, caller model.Identity, orderID uuid.UUID, rating int, comment string) (*model.Review, error) {
	return f.uc.Reviews.Create(ctx, caller, orderID, rating, comment)
}

func (f *MarketplaceFacade) DeleteReview(ctx context.Context, callerID, reviewID uuid.UUID) error {
	return f.uc.Reviews.Delete(ctx, callerID, reviewID)
}

func (f *MarketplaceFacade) Reviews(ctx context.Context, providerID uuid.UUID) ([]model.Review, error) {
	return f.uc.Reviews.ListForProvider(ctx, providerID)
}

func (f *MarketplaceFacade) Wallet(ctx context.Context, providerID uuid.UUID) (*model.WalletSummary, error) {
	return f.uc.Wallet.Dashboard(ctx, providerID)
}

func (f *MarketplaceFacade) Withdraw(ctx context.Context, providerID uuid.UUID, amount decimal.Decimal) (*model.Withdrawal, error) {
	return f.uc.Wallet.Withdraw(ctx, providerID, amount)
}

func (f *MarketplaceFacade) Withdrawals(ctx context.Context, providerID uuid.UUID) ([]model.Withdrawal, error) {
	return f.uc.Wallet.Withdrawals(ctx, providerID)
}

func (f *MarketplaceFacade) PayoutInfo(ctx context.Context, providerID uuid.UUID) (*model.PayoutInfo, error) {
	return f.uc.Wallet.PayoutInfo(ctx, providerID)
}

func (f *MarketplaceFacade) SavePayoutInfo(ctx context.Context, providerID uuid.UUID, in usecase.PayoutInfoInput) (*model.PayoutInfo, error) {
	return f.uc.Wallet.SavePayoutInfo(ctx, providerID, in)
}

func (f *MarketplaceFacade) Notifications(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return f.uc.Notifications.List(ctx, userID)
}

func (f *MarketplaceFacade) MarkNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	return f.uc.Notifications.MarkAllRead(ctx, userID)
}

func (f *MarketplaceFacade) DeleteNotification(ctx context.Context, userID, id uuid.UUID) error {
	return f.uc.Notifications.Delete(ctx, userID, id)
}

func (f *MarketplaceFacade) PendingNotifications(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error) {
	return f.uc.Notifications.ClaimPending(ctx, limit, lease)
}

func (f *MarketplaceFacade) PublishNotification(ctx context.Context, n model.Notification) error {
	return f.publisher.Publish(ctx, n)
}

func (f *MarketplaceFacade) MarkNotificationDispatched(ctx context.Context, id uuid.UUID) error {
	return f.uc.Notifications.MarkDispatched(ctx, id)
}

// Ping reports storage health.
func (f *MarketplaceFacade) Ping(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
