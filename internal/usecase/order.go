package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/lifecycle"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/domain/repository"
)

// OrderItemInput is one line of a new order.
type OrderItemInput struct {
	ServiceID uuid.UUID
	Quantity  int
}

// CreateOrderInput carries a booking or a quote request.
type CreateOrderInput struct {
	ProviderID   uuid.UUID
	Type         model.OrderType
	Instant      bool
	Items        []OrderItemInput
	ProposedDate *time.Time
	Note         string
}

// OrderLists splits the caller's orders by role.
type OrderLists struct {
	Given    []model.Order
	Received []model.Order
}

// OrderUseCase drives the order state machine.
type OrderUseCase struct {
	store  repository.Store
	logger *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(store repository.Store, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{store: store, logger: logger}
}

// Create validates the request and persists the order with its items and the
// provider notification as one unit.
func (u *OrderUseCase) Create(ctx context.Context, clientID uuid.UUID, in CreateOrderInput) (*model.Order, error) {
	if err := validateCreate(clientID, in); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:           uuid.New(),
		ClientID:     clientID,
		ProviderID:   in.ProviderID,
		ProposedDate: in.ProposedDate,
		Note:         in.Note,
	}

	err := u.store.Transact(ctx, func(tx repository.Factory) error {
		services, err := servicesFor(ctx, tx, in)
		if err != nil {
			return err
		}

		kind, message := model.NotificationNewOrder, "You received a new order request."
		switch {
		case in.Instant:
			svc := services[in.Items[0].ServiceID]
			if !svc.InstantBookable() {
				return domainErrors.Invalid("isInstantBooking", "service is not available for instant booking")
			}
			order.Status = model.OrderStatusScheduled
			kind, message = model.NotificationInstantBooking, "You received a new instant booking."
		case in.Type == model.OrderTypeDirectBooking:
			for _, item := range in.Items {
				if !services[item.ServiceID].BasePrice.Valid {
					return domainErrors.Invalid("items", "every service needs a base price for direct booking")
				}
			}
			order.Status = model.OrderStatusPendingApproval
		default:
			order.Status = model.OrderStatusPendingQuote
			message = "You received a new quote request."
		}

		total := decimal.Zero
		order.Items = make([]model.OrderItem, 0, len(in.Items))
		for _, item := range in.Items {
			line := model.OrderItem{ID: uuid.New(), ServiceID: item.ServiceID, Position: len(order.Items), Quantity: item.Quantity}
			if order.Status != model.OrderStatusPendingQuote {
				base := services[item.ServiceID].BasePrice
				line.UnitPrice = base
				total = total.Add(base.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
			}
			order.Items = append(order.Items, line)
		}
		if order.Status != model.OrderStatusPendingQuote {
			order.Price = decimal.NewNullDecimal(total)
		}

		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}
		return notify(ctx, tx, order.ProviderID, kind, order.ID, message)
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID.String()),
		slog.String("status", string(order.Status)),
	)
	return order, nil
}

func validateCreate(clientID uuid.UUID, in CreateOrderInput) error {
	if in.ProviderID == uuid.Nil {
		return domainErrors.Invalid("providerId", "is required")
	}
	if in.ProviderID == clientID {
		return domainErrors.Invalid("providerId", "cannot order from yourself")
	}
	if len(in.Items) == 0 {
		return domainErrors.Invalid("items", "at least one item is required")
	}
	for _, item := range in.Items {
		if item.ServiceID == uuid.Nil {
			return domainErrors.Invalid("items", "service id is required")
		}
		if item.Quantity < 1 {
			return domainErrors.Invalid("items", "quantity must be at least 1")
		}
	}
	if in.Instant {
		if len(in.Items) != 1 {
			return domainErrors.Invalid("items", "instant booking takes exactly one item")
		}
		return nil
	}
	if in.Type != model.OrderTypeDirectBooking && in.Type != model.OrderTypeQuoteRequest {
		return domainErrors.Invalid("orderType", "must be DIRECT_BOOKING or QUOTE_REQUEST")
	}
	return nil
}

func servicesFor(ctx context.Context, tx repository.Factory, in CreateOrderInput) (map[uuid.UUID]model.ProviderService, error) {
	ids := make([]uuid.UUID, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.ServiceID)
	}
	found, err := tx.Services().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]model.ProviderService, len(found))
	for _, svc := range found {
		byID[svc.ID] = svc
	}
	for _, id := range ids {
		svc, ok := byID[id]
		if !ok || svc.ProviderID != in.ProviderID {
			return nil, domainErrors.Invalid("items", "service does not belong to the provider")
		}
	}
	return byID, nil
}

// List returns the orders the caller placed and, for providers, the ones received.
func (u *OrderUseCase) List(ctx context.Context, caller model.Identity) (*OrderLists, error) {
	given, err := u.store.Orders().ListByClient(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	lists := &OrderLists{Given: given}
	if caller.IsProvider() {
		if lists.Received, err = u.store.Orders().ListByProvider(ctx, caller.UserID); err != nil {
			return nil, err
		}
	}
	return lists, nil
}

// Get returns the order to one of its parties.
func (u *OrderUseCase) Get(ctx context.Context, callerID, orderID uuid.UUID) (*model.Order, error) {
	order, _, err := readOrder(ctx, u.store, orderID, callerID)
	return order, err
}

// UpdateStatus moves the order to target along a payload-free edge of the lifecycle.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, callerID, orderID uuid.UUID, target model.OrderStatus) (*model.Order, error) {
	if !target.Valid() {
		return nil, domainErrors.Invalid("status", "unknown order status")
	}
	return u.transition(ctx, callerID, orderID, func(order *model.Order, role model.Role) (lifecycle.Rule, error) {
		return lifecycle.ResolveTarget(order.Status, target, role)
	})
}

// ConfirmPayment records the client's simulated payment.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, callerID, orderID uuid.UUID) (*model.Order, error) {
	return u.transition(ctx, callerID, orderID, func(order *model.Order, role model.Role) (lifecycle.Rule, error) {
		return lifecycle.Resolve(order.Status, lifecycle.EventConfirmPayment, role)
	})
}

func (u *OrderUseCase) transition(
	ctx context.Context,
	callerID, orderID uuid.UUID,
	resolve func(*model.Order, model.Role) (lifecycle.Rule, error),
) (*model.Order, error) {
	var (
		order *model.Order
		rule  lifecycle.Rule
		role  model.Role
	)
	err := u.store.Transact(ctx, func(tx repository.Factory) error {
		var err error
		if order, role, err = lockOrder(ctx, tx, orderID, callerID); err != nil {
			return err
		}
		if rule, err = resolve(order, role); err != nil {
			return err
		}
		return apply(ctx, tx, order, role, rule)
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "order transition",
		slog.String("order_id", order.ID.String()),
		slog.String("from", string(rule.From)),
		slog.String("to", string(rule.To)),
		slog.String("actor", role.String()),
	)
	return order, nil
}

// apply persists a resolved rule on a locked order.
func apply(ctx context.Context, tx repository.Factory, order *model.Order, role model.Role, rule lifecycle.Rule) error {
	order.Status = rule.To
	if err := tx.Orders().Update(ctx, order); err != nil {
		return err
	}
	if rule.ReleasesFunds {
		if err := release(ctx, tx, order); err != nil {
			return err
		}
	}
	message := fmt.Sprintf("Order status changed to %s.", rule.To)
	return notify(ctx, tx, order.Counterparty(role), rule.Notification, order.ID, message)
}

// release credits the provider with the order price exactly once.
func release(ctx context.Context, tx repository.Factory, order *model.Order) error {
	if !order.Price.Valid {
		return nil
	}
	if err := tx.Balances().RecordRelease(ctx, order.ID, order.ProviderID, order.Price.Decimal); err != nil {
		return err
	}
	return tx.Balances().Credit(ctx, order.ProviderID, order.Price.Decimal)
}

// ConfirmPaymentFromProvider handles a payment-provider confirmation for txid.
// Unknown references and orders past AWAITING_PAYMENT are a no-op; the
// returned flag reports whether the order moved.
func (u *OrderUseCase) ConfirmPaymentFromProvider(ctx context.Context, txid string) (bool, error) {
	orderID, err := uuid.Parse(txid)
	if err != nil {
		u.logger.WarnContext(ctx, "ignoring payment for malformed txid", slog.String("txid", txid))
		return false, nil
	}

	applied := false
	err = u.store.Transact(ctx, func(tx repository.Factory) error {
		order, err := tx.Orders().GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status != model.OrderStatusAwaitingPayment {
			return nil
		}
		order.Status = model.OrderStatusScheduled
		if err := tx.Orders().Update(ctx, order); err != nil {
			return err
		}
		if err := notify(ctx, tx, order.ProviderID, model.NotificationPaymentConfirmed, order.ID, "Payment confirmed. The order is scheduled."); err != nil {
			return err
		}
		if err := notify(ctx, tx, order.ClientID, model.NotificationPaymentConfirmed, order.ID, "Your payment was confirmed."); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if errors.Is(err, domainErrors.ErrNotFound) {
		u.logger.WarnContext(ctx, "ignoring payment for unknown order", slog.String("txid", txid))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if applied {
		u.logger.InfoContext(ctx, "payment confirmed by provider", slog.String("order_id", orderID.String()))
	}
	return applied, nil
}

// PayableOrder returns the caller's order when it can be charged.
func (u *OrderUseCase) PayableOrder(ctx context.Context, callerID, orderID uuid.UUID) (*model.Order, error) {
	order, role, err := readOrder(ctx, u.store, orderID, callerID)
	if err != nil {
		return nil, err
	}
	if role != model.RoleClient {
		return nil, domainErrors.ErrNotFound
	}
	if order.Status != model.OrderStatusAwaitingPayment {
		return nil, fmt.Errorf("%w: order is %s", domainErrors.ErrIllegalTransition, order.Status)
	}
	if !order.Price.Valid || !order.Price.Decimal.IsPositive() {
		return nil, domainErrors.Invalid("price", "order has no price to charge")
	}
	return order, nil
}
