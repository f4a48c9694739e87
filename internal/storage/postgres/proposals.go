package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

type proposalRepository struct {
	q querier
}

const proposalColumns = `id, order_id, price, details, status, created_at`

func (r *proposalRepository) Create(ctx context.Context, p *model.Proposal) error {
	const query = `INSERT INTO proposals (id, order_id, price, details, status) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	if err := r.q.QueryRow(ctx, query, p.ID, p.OrderID, p.Price, p.Details, p.Status).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("insert proposal: %w", err)
	}
	return nil
}

func (r *proposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error) {
	var p model.Proposal
	err := r.q.QueryRow(ctx, `SELECT `+proposalColumns+` FROM proposals WHERE id=$1`, id).
		Scan(&p.ID, &p.OrderID, &p.Price, &p.Details, &p.Status, &p.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *proposalRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.Proposal, error) {
	rows, err := r.q.Query(ctx, `SELECT `+proposalColumns+` FROM proposals WHERE order_id=$1 ORDER BY created_at DESC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query proposals: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Proposal, error) {
		var p model.Proposal
		err := row.Scan(&p.ID, &p.OrderID, &p.Price, &p.Details, &p.Status, &p.CreatedAt)
		return p, err
	})
}

func (r *proposalRepository) Finalize(ctx context.Context, orderID, acceptedID uuid.UUID) error {
	const query = `UPDATE proposals
                   SET status = CASE WHEN id=$2 THEN $3 ELSE $4 END
                   WHERE order_id=$1 AND status=$5`
	_, err := r.q.Exec(ctx, query, orderID, acceptedID,
		model.ProposalStatusAccepted, model.ProposalStatusDeclined, model.ProposalStatusSent)
	if err != nil {
		return fmt.Errorf("finalize proposals: %w", err)
	}
	return nil
}
