package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

type orderRepository struct {
	q querier
}

const orderColumns = `id, client_id, provider_id, status, price, proposed_date, note, created_at, updated_at`

func scanOrder(row pgx.Row) (model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.ClientID, &o.ProviderID, &o.Status, &o.Price, &o.ProposedDate, &o.Note, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

// Create inserts the order and its items. Callers run it inside a unit of work.
func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	const insertOrder = `INSERT INTO orders (id, client_id, provider_id, status, price, proposed_date, note)
                         VALUES ($1, $2, $3, $4, $5, $6, $7)
                         RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, insertOrder, o.ID, o.ClientID, o.ProviderID, o.Status, o.Price, o.ProposedDate, o.Note).
		Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	const insertItem = `INSERT INTO order_items (id, order_id, service_id, position, quantity, unit_price) VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		item.Position = i
		if _, err := r.q.Exec(ctx, insertItem, item.ID, item.OrderID, item.ServiceID, item.Position, item.Quantity, item.UnitPrice); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
}

func (r *orderRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1 FOR UPDATE`, id)
}

func (r *orderRepository) get(ctx context.Context, query string, id uuid.UUID) (*model.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	orders := []model.Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *orderRepository) Update(ctx context.Context, o *model.Order) error {
	const query = `UPDATE orders SET status=$1, price=$2, proposed_date=$3, updated_at=NOW() WHERE id=$4 RETURNING updated_at`
	err := r.q.QueryRow(ctx, query, o.Status, o.Price, o.ProposedDate, o.ID).Scan(&o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order: %w", notFound(err))
	}
	return nil
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE client_id=$1 ORDER BY created_at DESC`, clientID)
}

func (r *orderRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]model.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE provider_id=$1 ORDER BY created_at DESC`, providerID)
}

func (r *orderRepository) list(ctx context.Context, query string, arg uuid.UUID) ([]model.Order, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	const query = `SELECT id, order_id, service_id, position, quantity, unit_price FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, position`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ServiceID, &item.Position, &item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return rows.Err()
}

func (r *orderRepository) PendingAmount(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(price), 0) FROM orders WHERE provider_id=$1 AND status IN ($2, $3)`
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx, query, providerID, model.OrderStatusScheduled, model.OrderStatusCompletionRequested).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pending amount: %w", err)
	}
	return sum, nil
}
