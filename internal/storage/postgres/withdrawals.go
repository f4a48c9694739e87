package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

type withdrawalRepository struct {
	q querier
}

func (r *withdrawalRepository) Create(ctx context.Context, w *model.Withdrawal) error {
	const query = `INSERT INTO withdrawals (id, provider_id, amount, status) VALUES ($1, $2, $3, $4) RETURNING processed_at`
	if err := r.q.QueryRow(ctx, query, w.ID, w.ProviderID, w.Amount, w.Status).Scan(&w.ProcessedAt); err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

func (r *withdrawalRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Withdrawal, error) {
	const query = `SELECT id, provider_id, amount, status, processed_at
                   FROM withdrawals WHERE provider_id=$1 ORDER BY processed_at DESC`
	rows, err := r.q.Query(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Withdrawal
	for rows.Next() {
		var w model.Withdrawal
		if err := rows.Scan(&w.ID, &w.ProviderID, &w.Amount, &w.Status, &w.ProcessedAt); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
