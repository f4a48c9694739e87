package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/domain/repository"
)

// ReviewUseCase handles reviews and keeps provider ratings in step with them.
type ReviewUseCase struct {
	store  repository.Store
	logger *slog.Logger
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(store repository.Store, logger *slog.Logger) *ReviewUseCase {
	return &ReviewUseCase{store: store, logger: logger}
}

// Create records the client's review of a completed order.
func (u *ReviewUseCase) Create(ctx context.Context, caller model.Identity, orderID uuid.UUID, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domainErrors.Invalid("rating", "must be between 1 and 5")
	}

	review := &model.Review{
		ID:           uuid.New(),
		OrderID:      orderID,
		ReviewerID:   caller.UserID,
		ReviewerName: caller.Name,
		Rating:       rating,
		Comment:      strings.TrimSpace(comment),
		Status:       model.ReviewStatusActive,
	}
	var aggregate model.RatingAggregate
	err := u.store.Transact(ctx, func(tx repository.Factory) error {
		order, role, err := lockOrder(ctx, tx, orderID, caller.UserID)
		if err != nil {
			return err
		}
		if role != model.RoleClient {
			return fmt.Errorf("%w: only the client can review an order", domainErrors.ErrConflict)
		}
		if order.Status != model.OrderStatusCompleted {
			return fmt.Errorf("%w: order is %s", domainErrors.ErrIllegalTransition, order.Status)
		}
		exists, err := tx.Reviews().ExistsForOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if exists {
			return domainErrors.ErrAlreadyReviewed
		}

		review.ProviderID = order.ProviderID
		if _, err := tx.Users().LockByID(ctx, order.ProviderID); err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, review); err != nil {
			return err
		}
		if aggregate, err = recomputeRating(ctx, tx, order.ProviderID); err != nil {
			return err
		}
		message := fmt.Sprintf("You received a %d-star review.", rating)
		return notify(ctx, tx, order.ProviderID, model.NotificationNewReview, order.ID, message)
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "review created",
		slog.String("review_id", review.ID.String()),
		slog.String("provider_id", review.ProviderID.String()),
		slog.String("average", aggregate.Average.StringFixed(2)),
		slog.Int("total", aggregate.Total),
	)
	return review, nil
}

// Delete soft-deletes the caller's own review and recomputes the provider rating.
func (u *ReviewUseCase) Delete(ctx context.Context, callerID, reviewID uuid.UUID) error {
	var providerID uuid.UUID
	err := u.store.Transact(ctx, func(tx repository.Factory) error {
		review, err := tx.Reviews().GetByID(ctx, reviewID)
		if err != nil {
			return err
		}
		if review.ReviewerID != callerID || review.Status != model.ReviewStatusActive {
			return domainErrors.ErrNotFound
		}
		providerID = review.ProviderID
		if _, err := tx.Users().LockByID(ctx, providerID); err != nil {
			return err
		}
		if err := tx.Reviews().SoftDelete(ctx, reviewID); err != nil {
			return err
		}
		_, err = recomputeRating(ctx, tx, providerID)
		return err
	})
	if err != nil {
		return err
	}

	u.logger.InfoContext(ctx, "review deleted",
		slog.String("review_id", reviewID.String()),
		slog.String("provider_id", providerID.String()),
	)
	return nil
}

// ListForProvider returns the provider's active reviews, newest first.
func (u *ReviewUseCase) ListForProvider(ctx context.Context, providerID uuid.UUID) ([]model.Review, error) {
	return u.store.Reviews().ListActiveByProvider(ctx, providerID)
}

// recomputeRating derives the aggregate from the current active review set.
func recomputeRating(ctx context.Context, tx repository.Factory, providerID uuid.UUID) (model.RatingAggregate, error) {
	sum, count, err := tx.Reviews().ActiveStats(ctx, providerID)
	if err != nil {
		return model.RatingAggregate{}, err
	}
	aggregate := model.ComputeRating(sum, count)
	if err := tx.Users().UpdateRating(ctx, providerID, aggregate); err != nil {
		return model.RatingAggregate{}, err
	}
	return aggregate, nil
}
