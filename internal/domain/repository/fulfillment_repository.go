package repository

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// FulfillmentRepository puerto de persistencia para registros de surtido (product_warehouse).
type FulfillmentRepository interface {
	// ExistsForOrder indica si ya hay un registro de surtido que referencia la orden.
	ExistsForOrder(ctx context.Context, orderID int) (bool, error)

	// Create inserta el registro y devuelve su id generado. Una violación del
	// constraint único sobre id_order se reporta como domain.ErrOrderFulfilled.
	Create(ctx context.Context, f *entity.Fulfillment) (int, error)
}
