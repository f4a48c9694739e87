package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

type serviceRepository struct {
	q querier
}

const serviceColumns = `id, provider_id, name, base_price, allow_instant_booking, created_at`

func (r *serviceRepository) Create(ctx context.Context, s *model.ProviderService) error {
	const query = `INSERT INTO provider_services (id, provider_id, name, base_price, allow_instant_booking)
                   VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	if err := r.q.QueryRow(ctx, query, s.ID, s.ProviderID, s.Name, s.BasePrice, s.AllowInstantBooking).Scan(&s.CreatedAt); err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (r *serviceRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.ProviderService, error) {
	return r.list(ctx, `SELECT `+serviceColumns+` FROM provider_services WHERE id = ANY($1)`, ids)
}

func (r *serviceRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.ProviderService, error) {
	return r.list(ctx, `SELECT `+serviceColumns+` FROM provider_services WHERE provider_id=$1 ORDER BY created_at`, providerID)
}

func (r *serviceRepository) list(ctx context.Context, query string, arg any) ([]model.ProviderService, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ProviderService, error) {
		var s model.ProviderService
		err := row.Scan(&s.ID, &s.ProviderID, &s.Name, &s.BasePrice, &s.AllowInstantBooking, &s.CreatedAt)
		return s, err
	})
}
