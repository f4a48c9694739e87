package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/domain/repository"
)

const minChangeDetails = 10

// ChangeRequestInput carries a proposed amendment.
type ChangeRequestInput struct {
	Type          model.ChangeRequestType
	Details       string
	ProposedPrice decimal.NullDecimal
	ProposedDate  *time.Time
}

// ChangeRequestUseCase handles order amendments negotiated between the parties.
type ChangeRequestUseCase struct {
	store  repository.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewChangeRequestUseCase constructs ChangeRequestUseCase.
func NewChangeRequestUseCase(store repository.Store, logger *slog.Logger) *ChangeRequestUseCase {
	return &ChangeRequestUseCase{store: store, logger: logger, now: time.Now}
}

// Create files a PENDING request on an open order and notifies the other party.
func (u *ChangeRequestUseCase) Create(ctx context.Context, callerID, orderID uuid.UUID, in ChangeRequestInput) (*model.ChangeRequest, error) {
	details := strings.TrimSpace(in.Details)
	switch {
	case !in.Type.Valid():
		return nil, domainErrors.Invalid("type", "must be PRICE_ADJUSTMENT, SCHEDULE_CHANGE or SCOPE_CHANGE")
	case utf8.RuneCountInString(details) < minChangeDetails:
		return nil, domainErrors.Invalid("details", "must be at least 10 characters")
	case in.ProposedPrice.Valid && !model.ValidAmount(in.ProposedPrice.Decimal):
		return nil, domainErrors.Invalid("proposedPrice", "must be a positive amount with at most 2 decimal places")
	}

	request := &model.ChangeRequest{
		ID:            uuid.New(),
		OrderID:       orderID,
		RequestedByID: callerID,
		Type:          in.Type,
		Details:       details,
		ProposedPrice: in.ProposedPrice,
		ProposedDate:  in.ProposedDate,
		Status:        model.ChangeRequestPending,
	}
	err := u.store.Transact(ctx, func(tx repository.Factory) error {
		order, role, err := lockOrder(ctx, tx, orderID, callerID)
		if err != nil {
			return err
		}
		if order.Status.Terminal() {
			return domainErrors.ErrOrderClosed
		}
		if err := tx.ChangeRequests().Create(ctx, request); err != nil {
			return err
		}
		return notify(ctx, tx, order.Counterparty(role), model.NotificationChangeRequest, order.ID, "A change to your order was requested.")
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "change request filed",
		slog.String("order_id", orderID.String()),
		slog.String("request_id", request.ID.String()),
		slog.String("type", string(request.Type)),
	)
	return request, nil
}

// Resolve accepts or rejects a pending request on behalf of the party that did not file it.
func (u *ChangeRequestUseCase) Resolve(ctx context.Context, callerID, requestID uuid.UUID, action model.ChangeRequestAction) (*model.ChangeRequest, error) {
	if action != model.ChangeRequestAccept && action != model.ChangeRequestReject {
		return nil, domainErrors.Invalid("action", "must be ACCEPT or REJECT")
	}

	var request *model.ChangeRequest
	err := u.store.Transact(ctx, func(tx repository.Factory) error {
		var err error
		if request, err = tx.ChangeRequests().GetForUpdate(ctx, requestID); err != nil {
			return err
		}
		order, _, err := lockOrder(ctx, tx, request.OrderID, callerID)
		if err != nil {
			return err
		}
		if request.RequestedByID == callerID {
			return domainErrors.ErrSelfResolution
		}
		if request.Status != model.ChangeRequestPending {
			return domainErrors.ErrAlreadyResolved
		}

		status, kind, message := model.ChangeRequestRejected, model.NotificationChangeRejected, "Your change request was rejected."
		if action == model.ChangeRequestAccept {
			if order.Status.Terminal() {
				return domainErrors.ErrOrderClosed
			}
			request.ApplyTo(order)
			if err := tx.Orders().Update(ctx, order); err != nil {
				return err
			}
			status, kind, message = model.ChangeRequestAccepted, model.NotificationChangeAccepted, "Your change request was accepted."
		}

		resolvedAt := u.now().UTC()
		if err := tx.ChangeRequests().Resolve(ctx, request.ID, status, resolvedAt); err != nil {
			return err
		}
		request.Status = status
		request.ResolvedAt = &resolvedAt
		return notify(ctx, tx, request.RequestedByID, kind, order.ID, message)
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "change request resolved",
		slog.String("request_id", request.ID.String()),
		slog.String("status", string(request.Status)),
	)
	return request, nil
}

// List returns the change requests of an order to its parties.
func (u *ChangeRequestUseCase) List(ctx context.Context, callerID, orderID uuid.UUID) ([]model.ChangeRequest, error) {
	if _, _, err := readOrder(ctx, u.store, orderID, callerID); err != nil {
		return nil, err
	}
	requests, err := u.store.ChangeRequests().ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list change requests: %w", err)
	}
	return requests, nil
}
