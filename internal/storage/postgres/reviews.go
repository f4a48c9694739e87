package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

type reviewRepository struct {
	q querier
}

func (r *reviewRepository) Create(ctx context.Context, rv *model.Review) error {
	const query = `INSERT INTO reviews (id, order_id, reviewer_id, provider_id, rating, comment, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	err := r.q.QueryRow(ctx, query, rv.ID, rv.OrderID, rv.ReviewerID, rv.ProviderID, rv.Rating, rv.Comment, rv.Status).
		Scan(&rv.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyReviewed
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	const query = `SELECT id, order_id, reviewer_id, provider_id, rating, comment, status, created_at FROM reviews WHERE id=$1`
	var rv model.Review
	err := r.q.QueryRow(ctx, query, id).Scan(&rv.ID, &rv.OrderID, &rv.ReviewerID, &rv.ProviderID, &rv.Rating, &rv.Comment, &rv.Status, &rv.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &rv, nil
}

func (r *reviewRepository) ExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reviews WHERE order_id=$1)`, orderID).Scan(&exists); err != nil {
		return false, fmt.Errorf("review exists: %w", err)
	}
	return exists, nil
}

func (r *reviewRepository) ListActiveByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Review, error) {
	const query = `SELECT r.id, r.order_id, r.reviewer_id, u.name, r.provider_id, r.rating, r.comment, r.status, r.created_at
                   FROM reviews r JOIN users u ON u.id = r.reviewer_id
                   WHERE r.provider_id=$1 AND r.status=$2
                   ORDER BY r.created_at DESC`
	rows, err := r.q.Query(ctx, query, providerID, model.ReviewStatusActive)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.OrderID, &rv.ReviewerID, &rv.ReviewerName, &rv.ProviderID, &rv.Rating, &rv.Comment, &rv.Status, &rv.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reviewRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE reviews SET status=$1 WHERE id=$2 AND status=$3`
	tag, err := r.q.Exec(ctx, query, model.ReviewStatusDeletedByUser, id, model.ReviewStatusActive)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) ActiveStats(ctx context.Context, providerID uuid.UUID) (int64, int64, error) {
	const query = `SELECT COALESCE(SUM(rating), 0), COUNT(*) FROM reviews WHERE provider_id=$1 AND status=$2`
	var sum, count int64
	if err := r.q.QueryRow(ctx, query, providerID, model.ReviewStatusActive).Scan(&sum, &count); err != nil {
		return 0, 0, fmt.Errorf("review stats: %w", err)
	}
	return sum, count, nil
}
