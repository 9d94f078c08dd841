package fulfillment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// Executor aplica las dos mutaciones del surtido sobre una orden ya validada:
// marca la orden como surtida e inserta el registro en product_warehouse con
// precio = precio unitario × cantidad. Ambas escrituras van en la misma transacción
// que corrió el Validator; o se confirman juntas o ninguna.
type Executor struct {
	productRepo     repository.ProductRepository
	orderRepo       repository.OrderRepository
	fulfillmentRepo repository.FulfillmentRepository
}

// NewExecutor construye el ejecutor sobre repos atados a la tx.
func NewExecutor(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	fulfillmentRepo repository.FulfillmentRepository,
) *Executor {
	return &Executor{
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		fulfillmentRepo: fulfillmentRepo,
	}
}

// Execute lee el precio unitario vigente, marca la orden como surtida e inserta el
// registro. Devuelve el id generado del registro. fulfilled_at y created_at llevan
// el mismo instante, capturado una sola vez.
func (e *Executor) Execute(ctx context.Context, orderID int, in Input) (int, error) {
	product, err := e.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		// Validado hace un instante; si desapareció es un fallo de persistencia, no un 404.
		return 0, fmt.Errorf("producto %d desapareció bajo la transacción: %w", in.ProductID, domain.ErrPersistence)
	}

	now := time.Now()
	if err := e.orderRepo.MarkFulfilled(ctx, orderID, now); err != nil {
		return 0, err
	}

	record := &entity.Fulfillment{
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		OrderID:     orderID,
		Amount:      in.Amount,
		Price:       product.Price.Mul(decimal.NewFromInt(int64(in.Amount))),
		CreatedAt:   now,
	}
	return e.fulfillmentRepo.Create(ctx, record)
}
