package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

type changeRequestRepository struct {
	q querier
}

const changeRequestColumns = `id, order_id, requested_by_id, type, details, proposed_price, proposed_date, status, created_at, resolved_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanChangeRequest(row scanner) (model.ChangeRequest, error) {
	var cr model.ChangeRequest
	err := row.Scan(&cr.ID, &cr.OrderID, &cr.RequestedByID, &cr.Type, &cr.Details,
		&cr.ProposedPrice, &cr.ProposedDate, &cr.Status, &cr.CreatedAt, &cr.ResolvedAt)
	return cr, err
}

func (r *changeRequestRepository) Create(ctx context.Context, cr *model.ChangeRequest) error {
	const query = `INSERT INTO order_change_requests (id, order_id, requested_by_id, type, details, proposed_price, proposed_date, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`
	err := r.q.QueryRow(ctx, query, cr.ID, cr.OrderID, cr.RequestedByID, cr.Type, cr.Details,
		cr.ProposedPrice, cr.ProposedDate, cr.Status).Scan(&cr.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert change request: %w", err)
	}
	return nil
}

func (r *changeRequestRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*model.ChangeRequest, error) {
	cr, err := scanChangeRequest(r.q.QueryRow(ctx, `SELECT `+changeRequestColumns+` FROM order_change_requests WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &cr, nil
}

func (r *changeRequestRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.ChangeRequest, error) {
	rows, err := r.q.Query(ctx, `SELECT `+changeRequestColumns+` FROM order_change_requests WHERE order_id=$1 ORDER BY created_at DESC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query change requests: %w", err)
	}
	defer rows.Close()

	var result []model.ChangeRequest
	for rows.Next() {
		cr, err := scanChangeRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Resolve only touches pending requests; anything else is reported as already resolved.
func (r *changeRequestRepository) Resolve(ctx context.Context, id uuid.UUID, status model.ChangeRequestStatus, resolvedAt time.Time) error {
	const query = `UPDATE order_change_requests SET status=$1, resolved_at=$2 WHERE id=$3 AND status=$4`
	tag, err := r.q.Exec(ctx, query, status, resolvedAt, id, model.ChangeRequestPending)
	if err != nil {
		return fmt.Errorf("resolve change request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrAlreadyResolved
	}
	return nil
}
