package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/warehouse-api/internal/application/fulfillment"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// Ensure TxRunner implements fulfillment.TxRunner.
var _ fulfillment.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// El Rollback diferido cubre también el caso de cancelación del contexto: si el caller
// se desconecta a mitad del flujo, la transacción nunca queda abierta ni a medio aplicar.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	fulfillmentRepo repository.FulfillmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	warehouseRepo := NewWarehouseRepository(tx)
	orderRepo := NewOrderRepository(tx)
	fulfillmentRepo := NewFulfillmentRepository(tx)

	if err := fn(productRepo, warehouseRepo, orderRepo, fulfillmentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
