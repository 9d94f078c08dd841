package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// FindMatchForUpdate busca la orden más antigua con el mismo producto, cantidad exacta
// y created_at estrictamente anterior a before, y bloquea su fila (SELECT FOR UPDATE).
// El bloqueo serializa dos peticiones que compiten por surtir la misma orden: la
// segunda espera el Commit de la primera y entonces ve la orden como ya surtida.
func (r *OrderRepo) FindMatchForUpdate(ctx context.Context, productID, amount int, before time.Time) (*entity.Order, error) {
	query := `
		SELECT id_order, id_product, amount, created_at, fulfilled_at
		FROM "order"
		WHERE id_product = $1 AND amount = $2 AND created_at < $3
		ORDER BY created_at ASC
		LIMIT 1
		FOR UPDATE`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, productID, amount, before).Scan(
		&o.ID, &o.ProductID, &o.Amount, &o.CreatedAt, &o.FulfilledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find matching order: %w", err)
	}
	return &o, nil
}

// MarkFulfilled fija fulfilled_at de la orden. Cero filas afectadas significa que la
// orden desapareció bajo la transacción: se reporta como error de persistencia, nunca
// se ignora en silencio.
func (r *OrderRepo) MarkFulfilled(ctx context.Context, orderID int, at time.Time) error {
	query := `UPDATE "order" SET fulfilled_at = $2 WHERE id_order = $1`
	cmd, err := r.q.Exec(ctx, query, orderID, at)
	if err != nil {
		return fmt.Errorf("mark order fulfilled: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("mark order fulfilled: orden %d no existe: %w", orderID, domain.ErrPersistence)
	}
	return nil
}

// ListPending lista órdenes sin surtir, más antiguas primero, con paginación.
func (r *OrderRepo) ListPending(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id_order, id_product, amount, created_at, fulfilled_at
		FROM "order"
		WHERE fulfilled_at IS NULL
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ProductID, &o.Amount, &o.CreatedAt, &o.FulfilledAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
