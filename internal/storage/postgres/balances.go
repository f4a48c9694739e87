package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
)

type balanceRepository struct {
	q querier
}

func (r *balanceRepository) LockAvailable(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error) {
	return r.available(ctx, `SELECT available_balance FROM users WHERE id=$1 FOR UPDATE`, providerID)
}

func (r *balanceRepository) Available(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error) {
	return r.available(ctx, `SELECT available_balance FROM users WHERE id=$1`, providerID)
}

func (r *balanceRepository) available(ctx context.Context, query string, providerID uuid.UUID) (decimal.Decimal, error) {
	var current decimal.Decimal
	if err := r.q.QueryRow(ctx, query, providerID).Scan(&current); err != nil {
		return decimal.Zero, notFound(err)
	}
	return current, nil
}

func (r *balanceRepository) Credit(ctx context.Context, providerID uuid.UUID, amount decimal.Decimal) error {
	const query = `UPDATE users SET available_balance = available_balance + $1 WHERE id=$2`
	return r.apply(ctx, query, amount, providerID)
}

// Debit never drives the balance negative; a short balance is ErrInsufficientBalance.
func (r *balanceRepository) Debit(ctx context.Context, providerID uuid.UUID, amount decimal.Decimal) error {
	const query = `UPDATE users SET available_balance = available_balance - $1 WHERE id=$2 AND available_balance >= $1`
	err := r.apply(ctx, query, amount, providerID)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return domainErrors.ErrInsufficientBalance
	}
	return err
}

func (r *balanceRepository) apply(ctx context.Context, query string, amount decimal.Decimal, providerID uuid.UUID) error {
	tag, err := r.q.Exec(ctx, query, amount, providerID)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *balanceRepository) RecordRelease(ctx context.Context, orderID, providerID uuid.UUID, amount decimal.Decimal) error {
	const query = `INSERT INTO fund_releases (order_id, provider_id, amount) VALUES ($1, $2, $3)`
	if _, err := r.q.Exec(ctx, query, orderID, providerID, amount); err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyReleased
		}
		return fmt.Errorf("record release: %w", err)
	}
	return nil
}
