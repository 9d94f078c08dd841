package fulfillment

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// Validator corre las precondiciones del surtido, en orden, contra los repositorios
// atados a la transacción activa. Solo consultas; no muta nada. Debe ejecutarse dentro
// de la misma tx que el Executor para que las lecturas no queden obsoletas frente a
// otro surtido concurrente de la misma orden.
type Validator struct {
	productRepo     repository.ProductRepository
	warehouseRepo   repository.WarehouseRepository
	orderRepo       repository.OrderRepository
	fulfillmentRepo repository.FulfillmentRepository
}

// NewValidator construye el validador sobre repos atados a la tx.
func NewValidator(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	fulfillmentRepo repository.FulfillmentRepository,
) *Validator {
	return &Validator{
		productRepo:     productRepo,
		warehouseRepo:   warehouseRepo,
		orderRepo:       orderRepo,
		fulfillmentRepo: fulfillmentRepo,
	}
}

// Validate verifica las cuatro precondiciones y devuelve el ID de la orden a surtir:
//  1. el producto existe                      -> domain.ErrProductNotFound
//  2. la bodega existe                        -> domain.ErrWarehouseNotFound
//  3. hay una orden que coincide (producto,
//     cantidad exacta, creada antes)          -> domain.ErrNoMatchingOrder
//  4. la orden no fue surtida todavía         -> domain.ErrOrderFulfilled
//
// La orden coincidente queda bloqueada (FOR UPDATE) por FindMatchForUpdate, así el
// chequeo 4 no puede quedar obsoleto antes de que el Executor escriba.
func (v *Validator) Validate(ctx context.Context, in Input) (int, error) {
	product, err := v.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrProductNotFound
	}

	warehouse, err := v.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return 0, err
	}
	if warehouse == nil {
		return 0, domain.ErrWarehouseNotFound
	}

	order, err := v.orderRepo.FindMatchForUpdate(ctx, in.ProductID, in.Amount, in.CreatedAt)
	if err != nil {
		return 0, err
	}
	if order == nil {
		return 0, domain.ErrNoMatchingOrder
	}

	fulfilled, err := v.fulfillmentRepo.ExistsForOrder(ctx, order.ID)
	if err != nil {
		return 0, err
	}
	if fulfilled || order.Fulfilled() {
		return 0, domain.ErrOrderFulfilled
	}

	return order.ID, nil
}
