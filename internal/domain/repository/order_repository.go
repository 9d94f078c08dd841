package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para órdenes de reposición.
type OrderRepository interface {
	// FindMatchForUpdate busca la orden que corresponde a la entrada de mercancía:
	// mismo producto, cantidad exacta y created_at estrictamente anterior a before.
	// Si varias califican gana la más antigua (desempate determinista). Dentro de una
	// transacción bloquea la fila (SELECT FOR UPDATE) para serializar surtidos
	// concurrentes de la misma orden. Devuelve nil si ninguna coincide.
	FindMatchForUpdate(ctx context.Context, productID, amount int, before time.Time) (*entity.Order, error)

	// MarkFulfilled fija fulfilled_at de la orden. Si no afecta filas devuelve
	// domain.ErrPersistence: la orden desapareció bajo la transacción.
	MarkFulfilled(ctx context.Context, orderID int, at time.Time) error

	// ListPending lista órdenes sin surtir, más antiguas primero.
	ListPending(ctx context.Context, limit, offset int) ([]*entity.Order, error)
}
