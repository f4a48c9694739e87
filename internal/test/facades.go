package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterInput) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (model.Identity, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	return &model.User{ID: uuid.New(), Name: in.Name, Email: in.Email, Kind: in.Kind}, "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: uuid.New(), Email: email, Kind: model.AccountClient}, "token", nil
}

// ParseToken returns the identity of the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (model.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return model.Identity{UserID: uuid.New(), Kind: model.AccountClient}, nil
}

// CatalogFacadeStub provides controllable behaviour for service catalog endpoints.
type CatalogFacadeStub struct {
	CreateServiceFn func(context.Context, model.Identity, usecase.ServiceInput) (*model.ProviderService, error)
	ServicesFn      func(context.Context, uuid.UUID) ([]model.ProviderService, error)
}

func (s CatalogFacadeStub) CreateService(ctx context.Context, caller model.Identity, in usecase.ServiceInput) (*model.ProviderService, error) {
	if s.CreateServiceFn != nil {
		return s.CreateServiceFn(ctx, caller, in)
	}
	return &model.ProviderService{ID: uuid.New(), ProviderID: caller.UserID, Name: in.Name, BasePrice: in.BasePrice}, nil
}

func (s CatalogFacadeStub) Services(ctx context.Context, providerID uuid.UUID) ([]model.ProviderService, error) {
	if s.ServicesFn != nil {
		return s.ServicesFn(ctx, providerID)
	}
	return []model.ProviderService{}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateOrderFn       func(context.Context, uuid.UUID, usecase.CreateOrderInput) (*model.Order, error)
	OrdersFn            func(context.Context, model.Identity) (*usecase.OrderLists, error)
	OrderFn             func(context.Context, uuid.UUID, uuid.UUID) (*model.Order, error)
	UpdateOrderStatusFn func(context.Context, uuid.UUID, uuid.UUID, model.OrderStatus) (*model.Order, error)
	ConfirmPaymentFn    func(context.Context, uuid.UUID, uuid.UUID) (*model.Order, error)
	CreatePixChargeFn   func(context.Context, uuid.UUID, uuid.UUID) (*model.PixCharge, error)
	ConfirmPixPaymentFn func(context.Context, string) (bool, error)
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, clientID uuid.UUID, in usecase.CreateOrderInput) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, clientID, in)
	}
	return &model.Order{ID: uuid.New(), ClientID: clientID, ProviderID: in.ProviderID, Status: model.OrderStatusPendingQuote}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, caller model.Identity) (*usecase.OrderLists, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, caller)
	}
	return &usecase.OrderLists{}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, callerID, orderID uuid.UUID) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, callerID, orderID)
	}
	return &model.Order{ID: orderID, ClientID: callerID, Status: model.OrderStatusScheduled}, nil
}

func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, callerID, orderID uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, callerID, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

func (s OrderFacadeStub) ConfirmPayment(ctx context.Context, callerID, orderID uuid.UUID) (*model.Order, error) {
	if s.ConfirmPaymentFn != nil {
		return s.ConfirmPaymentFn(ctx, callerID, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusScheduled}, nil
}

func (s OrderFacadeStub) CreatePixCharge(ctx context.Context, callerID, orderID uuid.UUID) (*model.PixCharge, error) {
	if s.CreatePixChargeFn != nil {
		return s.CreatePixChargeFn(ctx, callerID, orderID)
	}
	return &model.PixCharge{TxID: orderID.String(), QRCodeText: "000201", ExpiresAt: time.Unix(0, 0).UTC()}, nil
}

func (s OrderFacadeStub) ConfirmPixPayment(ctx context.Context, txid string) (bool, error) {
	if s.ConfirmPixPaymentFn != nil {
		return s.ConfirmPixPaymentFn(ctx, txid)
	}
	return true, nil
}

// ProposalFacadeStub simulates quote operations.
type ProposalFacadeStub struct {
	CreateProposalFn       func(context.Context, uuid.UUID, uuid.UUID, decimal.Decimal, string) (*model.Proposal, error)
	ProposalsFn            func(context.Context, uuid.UUID, uuid.UUID) ([]model.Proposal, error)
	AcceptProposalFn       func(context.Context, uuid.UUID, uuid.UUID) (*model.Order, error)
	AcceptProposalAndPayFn func(context.Context, uuid.UUID, uuid.UUID) (*model.Order, error)
}

func (s ProposalFacadeStub) CreateProposal(ctx context.Context, callerID, orderID uuid.UUID, price decimal.Decimal, details string) (*model.Proposal, error) {
	if s.CreateProposalFn != nil {
		return s.CreateProposalFn(ctx, callerID, orderID, price, details)
	}
	return &model.Proposal{ID: uuid.New(), OrderID: orderID, Price: price, Details: details, Status: model.ProposalStatusSent}, nil
}

func (s ProposalFacadeStub) Proposals(ctx context.Context, callerID, orderID uuid.UUID) ([]model.Proposal, error) {
	if s.ProposalsFn != nil {
		return s.ProposalsFn(ctx, callerID, orderID)
	}
	return []model.Proposal{}, nil
}

func (s ProposalFacadeStub) AcceptProposal(ctx context.Context, callerID, proposalID uuid.UUID) (*model.Order, error) {
	if s.AcceptProposalFn != nil {
		return s.AcceptProposalFn(ctx, callerID, proposalID)
	}
	return &model.Order{ID: uuid.New(), Status: model.OrderStatusAwaitingPayment}, nil
}

func (s ProposalFacadeStub) AcceptProposalAndPay(ctx context.Context, callerID, proposalID uuid.UUID) (*model.Order, error) {
	if s.AcceptProposalAndPayFn != nil {
		return s.AcceptProposalAndPayFn(ctx, callerID, proposalID)
	}
	return &model.Order{ID: uuid.New(), Status: model.OrderStatusScheduled}, nil
}

// ChangeRequestFacadeStub simulates order amendment operations.
type ChangeRequestFacadeStub struct {
	CreateChangeRequestFn  func(context.Context, uuid.UUID, uuid.UUID, usecase.ChangeRequestInput) (*model.ChangeRequest, error)
	ChangeRequestsFn       func(context.Context, uuid.UUID, uuid.UUID) ([]model.ChangeRequest, error)
	ResolveChangeRequestFn func(context.Context, uuid.UUID, uuid.UUID, model.ChangeRequestAction) (*model.ChangeRequest, error)
}

func (s ChangeRequestFacadeStub) CreateChangeRequest(ctx context.Context, callerID, orderID uuid.UUID, in usecase.ChangeRequestInput) (*model.ChangeRequest, error) {
	if s.CreateChangeRequestFn != nil {
		return s.CreateChangeRequestFn(ctx, callerID, orderID, in)
	}
	return &model.ChangeRequest{ID: uuid.New(), OrderID: orderID, RequestedByID: callerID, Type: in.Type, Details: in.Details, Status: model.ChangeRequestPending}, nil
}

func (s ChangeRequestFacadeStub) ChangeRequests(ctx context.Context, callerID, orderID uuid.UUID) ([]model.ChangeRequest, error) {
	if s.ChangeRequestsFn != nil {
		return s.ChangeRequestsFn(ctx, callerID, orderID)
	}
	return []model.ChangeRequest{}, nil
}

func (s ChangeRequestFacadeStub) ResolveChangeRequest(ctx context.Context, callerID, requestID uuid.UUID, action model.ChangeRequestAction) (*model.ChangeRequest, error) {
	if s.ResolveChangeRequestFn != nil {
		return s.ResolveChangeRequestFn(ctx, callerID, requestID, action)
	}
	status := model.ChangeRequestRejected
	if action == model.ChangeRequestAccept {
		status = model.ChangeRequestAccepted
	}
	return &model.ChangeRequest{ID: requestID, Status: status}, nil
}

// ReviewFacadeStub simulates review operations.
type ReviewFacadeStub struct {
	CreateReviewFn func(context.Context, model.Identity, uuid.UUID, int, string) (*model.Review, error)
	DeleteReviewFn func(context.Context, uuid.UUID, uuid.UUID) error
	ReviewsFn      func(context.Context, uuid.UUID) ([]model.Review, error)
}

func (s ReviewFacadeStub) CreateReview(ctx context.Context, caller model.Identity, orderID uuid.UUID, rating int, comment string) (*model.Review, error) {
	if s.CreateReviewFn != nil {
		return s.CreateReviewFn(ctx, caller, orderID, rating, comment)
	}
	return &model.Review{ID: uuid.New(), OrderID: orderID, ReviewerID: caller.UserID, Rating: rating, Comment: comment, Status: model.ReviewStatusActive}, nil
}

func (s ReviewFacadeStub) DeleteReview(ctx context.Context, callerID, reviewID uuid.UUID) error {
	if s.DeleteReviewFn != nil {
		return s.DeleteReviewFn(ctx, callerID, reviewID)
	}
	return nil
}

func (s ReviewFacadeStub) Reviews(ctx context.Context, providerID uuid.UUID) ([]model.Review, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx, providerID)
	}
	return []model.Review{}, nil
}

// WalletFacadeStub simulates provider wallet operations.
type WalletFacadeStub struct {
	WalletFn         func(context.Context, uuid.UUID) (*model.WalletSummary, error)
	WithdrawFn       func(context.Context, uuid.UUID, decimal.Decimal) (*model.Withdrawal, error)
	WithdrawalsFn    func(context.Context, uuid.UUID) ([]model.Withdrawal, error)
	PayoutInfoFn     func(context.Context, uuid.UUID) (*model.PayoutInfo, error)
	SavePayoutInfoFn func(context.Context, uuid.UUID, usecase.PayoutInfoInput) (*model.PayoutInfo, error)
}

func (s WalletFacadeStub) Wallet(ctx context.Context, providerID uuid.UUID) (*model.WalletSummary, error) {
	if s.WalletFn != nil {
		return s.WalletFn(ctx, providerID)
	}
	return &model.WalletSummary{Available: decimal.NewFromInt(10), Pending: decimal.NewFromInt(5)}, nil
}

func (s WalletFacadeStub) Withdraw(ctx context.Context, providerID uuid.UUID, amount decimal.Decimal) (*model.Withdrawal, error) {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, providerID, amount)
	}
	return &model.Withdrawal{ID: uuid.New(), ProviderID: providerID, Amount: amount, Status: model.WithdrawalStatusCompleted, ProcessedAt: time.Unix(0, 0).UTC()}, nil
}

func (s WalletFacadeStub) Withdrawals(ctx context.Context, providerID uuid.UUID) ([]model.Withdrawal, error) {
	if s.WithdrawalsFn != nil {
		return s.WithdrawalsFn(ctx, providerID)
	}
	return []model.Withdrawal{}, nil
}

func (s WalletFacadeStub) PayoutInfo(ctx context.Context, providerID uuid.UUID) (*model.PayoutInfo, error) {
	if s.PayoutInfoFn != nil {
		return s.PayoutInfoFn(ctx, providerID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s WalletFacadeStub) SavePayoutInfo(ctx context.Context, providerID uuid.UUID, in usecase.PayoutInfoInput) (*model.PayoutInfo, error) {
	if s.SavePayoutInfoFn != nil {
		return s.SavePayoutInfoFn(ctx, providerID, in)
	}
	return &model.PayoutInfo{ProviderID: providerID, Type: in.Type, PixKey: in.PixKey, BankName: in.BankName,
		AgencyNumber: in.AgencyNumber, AccountNumber: in.AccountNumber, UpdatedAt: time.Unix(0, 0).UTC()}, nil
}

// NotificationFacadeStub simulates inbox operations.
type NotificationFacadeStub struct {
	NotificationsFn         func(context.Context, uuid.UUID) ([]model.Notification, error)
	MarkNotificationsReadFn func(context.Context, uuid.UUID) error
	DeleteNotificationFn    func(context.Context, uuid.UUID, uuid.UUID) error
}

func (s NotificationFacadeStub) Notifications(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	if s.NotificationsFn != nil {
		return s.NotificationsFn(ctx, userID)
	}
	return []model.Notification{}, nil
}

func (s NotificationFacadeStub) MarkNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	if s.MarkNotificationsReadFn != nil {
		return s.MarkNotificationsReadFn(ctx, userID)
	}
	return nil
}

func (s NotificationFacadeStub) DeleteNotification(ctx context.Context, userID, id uuid.UUID) error {
	if s.DeleteNotificationFn != nil {
		return s.DeleteNotificationFn(ctx, userID, id)
	}
	return nil
}

// MarketplaceFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketplaceFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
	ProposalFacadeStub
	ChangeRequestFacadeStub
	ReviewFacadeStub
	WalletFacadeStub
	NotificationFacadeStub
	PingFn func(context.Context) error
}

// Ping reports storage health.
func (s MarketplaceFacadeStub) Ping(ctx context.Context) error {
	if s.PingFn != nil {
		return s.PingFn(ctx)
	}
	return nil
}

// WorkerFacadeStub mimics dispatcher interactions with the marketplace facade.
type WorkerFacadeStub struct {
	Batches   [][]model.Notification
	PendingFn func(context.Context, int, time.Duration) ([]model.Notification, error)
	PublishFn func(context.Context, model.Notification) error
	MarkFn    func(context.Context, uuid.UUID) error

	Published  []model.Notification
	Dispatched []uuid.UUID
	mu         sync.Mutex
	calls      int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// PendingNotifications returns batches from configured queue.
func (s *WorkerFacadeStub) PendingNotifications(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, limit, lease)
	}
	call := atomic.AddInt32(&s.calls, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	return nil, nil
}

// PublishNotification records published notifications.
func (s *WorkerFacadeStub) PublishNotification(ctx context.Context, n model.Notification) error {
	if s.PublishFn != nil {
		if err := s.PublishFn(ctx, n); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Published = append(s.Published, n)
	return nil
}

// MarkNotificationDispatched records acknowledged notifications.
func (s *WorkerFacadeStub) MarkNotificationDispatched(ctx context.Context, id uuid.UUID) error {
	if s.MarkFn != nil {
		if err := s.MarkFn(ctx, id); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Dispatched = append(s.Dispatched, id)
	return nil
}

// PaymentClientStub issues charges for tests.
type PaymentClientStub struct {
	CreateFn func(context.Context, uuid.UUID, decimal.Decimal) (*model.PixCharge, error)
}

// CreateCharge returns configured response or a fixed charge.
func (s PaymentClientStub) CreateCharge(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*model.PixCharge, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, orderID, amount)
	}
	return &model.PixCharge{TxID: orderID.String(), QRCodeText: "000201" + amount.StringFixed(2), ExpiresAt: time.Unix(0, 0).UTC()}, nil
}

// PublisherStub records published notifications.
type PublisherStub struct {
	Err       error
	mu        sync.Mutex
	Published []model.Notification
}

// Publish stores the notification unless Err is set.
func (s *PublisherStub) Publish(ctx context.Context, n model.Notification) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Published = append(s.Published, n)
	return nil
}

// HealthCheckerStub reports configured storage health.
type HealthCheckerStub struct {
	Err error
}

func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
