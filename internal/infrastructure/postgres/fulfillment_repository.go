package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.FulfillmentRepository = (*FulfillmentRepo)(nil)

// FulfillmentRepo implementación del puerto FulfillmentRepository sobre PostgreSQL (usable con pool o tx).
type FulfillmentRepo struct {
	q Querier
}

// NewFulfillmentRepository construye el adaptador para registros de surtido. Pasar pool o tx (Querier).
func NewFulfillmentRepository(q Querier) *FulfillmentRepo {
	return &FulfillmentRepo{q: q}
}

// ExistsForOrder indica si ya existe un registro en product_warehouse para la orden.
func (r *FulfillmentRepo) ExistsForOrder(ctx context.Context, orderID int) (bool, error) {
	query := `SELECT 1 FROM product_warehouse WHERE id_order = $1`
	var one int
	err := r.q.QueryRow(ctx, query, orderID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check fulfillment exists: %w", err)
	}
	return true, nil
}

// Create inserta el registro de surtido y devuelve su id generado (RETURNING).
// El constraint único sobre id_order es la defensa final contra carreras: si otro
// surtido de la misma orden ganó, el 23505 se mapea a domain.ErrOrderFulfilled.
func (r *FulfillmentRepo) Create(ctx context.Context, f *entity.Fulfillment) (int, error) {
	query := `
		INSERT INTO product_warehouse (id_warehouse, id_product, id_order, amount, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_product_warehouse`
	var id int
	err := r.q.QueryRow(ctx, query,
		f.WarehouseID, f.ProductID, f.OrderID, f.Amount, f.Price, f.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrOrderFulfilled
		}
		return 0, fmt.Errorf("insert fulfillment: %w", err)
	}
	return id, nil
}
