package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/lifecycle"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/domain/repository"
)

// ProposalUseCase handles provider quotes.
type ProposalUseCase struct {
	store  repository.Store
	logger *slog.Logger
}

// NewProposalUseCase constructs ProposalUseCase.
func NewProposalUseCase(store repository.Store, logger *slog.Logger) *ProposalUseCase {
	return &ProposalUseCase{store: store, logger: logger}
}

// Create sends a quote on a PENDING_QUOTE order and moves it to QUOTE_SENT.
func (u *ProposalUseCase) Create(ctx context.Context, callerID, orderID uuid.UUID, price decimal.Decimal, details string) (*model.Proposal, error) {
	if !model.ValidAmount(price) {
		return nil, domainErrors.Invalid("price", "must be a positive amount with at most 2 decimal places")
	}

	proposal := &model.Proposal{
		ID:      uuid.New(),
		OrderID: orderID,
		Price:   price,
		Details: strings.TrimSpace(details),
		Status:  model.ProposalStatusSent,
	}
	err := u.store.Transact(ctx, func(tx repository.Factory) error {
		order, role, err := lockOrder(ctx, tx, orderID, callerID)
		if err != nil {
			return err
		}
		rule, err := lifecycle.Resolve(order.Status, lifecycle.EventSendProposal, role)
		if err != nil {
			return err
		}
		if err := tx.Proposals().Create(ctx, proposal); err != nil {
			return err
		}
		order.Status = rule.To
		if err := tx.Orders().Update(ctx, order); err != nil {
			return err
		}
		message := fmt.Sprintf("You received a proposal of %s.", price.StringFixed(2))
		return notify(ctx, tx, order.ClientID, rule.Notification, order.ID, message)
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "proposal sent",
		slog.String("order_id", orderID.String()),
		slog.String("proposal_id", proposal.ID.String()),
	)
	return proposal, nil
}

// Accept takes the quote; the order waits for payment at the proposal price.
func (u *ProposalUseCase) Accept(ctx context.Context, callerID, proposalID uuid.UUID) (*model.Order, error) {
	return u.accept(ctx, callerID, proposalID, lifecycle.EventAcceptProposal)
}

// AcceptAndPay takes the quote and treats payment as settled, scheduling the order.
func (u *ProposalUseCase) AcceptAndPay(ctx context.Context, callerID, proposalID uuid.UUID) (*model.Order, error) {
	return u.accept(ctx, callerID, proposalID, lifecycle.EventAcceptAndPay)
}

func (u *ProposalUseCase) accept(ctx context.Context, callerID, proposalID uuid.UUID, event lifecycle.Event) (*model.Order, error) {
	var order *model.Order
	err := u.store.Transact(ctx, func(tx repository.Factory) error {
		proposal, err := tx.Proposals().GetByID(ctx, proposalID)
		if err != nil {
			return err
		}
		var role model.Role
		if order, role, err = lockOrder(ctx, tx, proposal.OrderID, callerID); err != nil {
			return err
		}
		rule, err := lifecycle.Resolve(order.Status, event, role)
		if err != nil {
			return err
		}
		if proposal.Status != model.ProposalStatusSent {
			return fmt.Errorf("%w: proposal is %s", domainErrors.ErrIllegalTransition, proposal.Status)
		}

		order.Price = decimal.NewNullDecimal(proposal.Price)
		order.Status = rule.To
		if err := tx.Orders().Update(ctx, order); err != nil {
			return err
		}
		if err := tx.Proposals().Finalize(ctx, order.ID, proposal.ID); err != nil {
			return err
		}
		message := fmt.Sprintf("Your proposal of %s was accepted.", proposal.Price.StringFixed(2))
		return notify(ctx, tx, order.ProviderID, rule.Notification, order.ID, message)
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "proposal accepted",
		slog.String("order_id", order.ID.String()),
		slog.String("proposal_id", proposalID.String()),
		slog.String("to", string(order.Status)),
	)
	return order, nil
}

// List returns the proposals of an order to its parties.
func (u *ProposalUseCase) List(ctx context.Context, callerID, orderID uuid.UUID) ([]model.Proposal, error) {
	if _, _, err := readOrder(ctx, u.store, orderID, callerID); err != nil {
		return nil, err
	}
	return u.store.Proposals().ListByOrder(ctx, orderID)
}
