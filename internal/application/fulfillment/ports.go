package fulfillment

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad del flujo de surtido: las validaciones y las
// dos mutaciones (marcar la orden + insertar el registro) comparten la misma transacción,
// y cualquier error hace Rollback de todo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		orderRepo repository.OrderRepository,
		fulfillmentRepo repository.FulfillmentRepository,
	) error) error
}
