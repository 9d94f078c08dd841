package usecase

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// CatalogUseCase consultas de solo lectura sobre productos, bodegas y órdenes
// pendientes. Opera sobre repos atados al pool (fuera de transacción).
type CatalogUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	orderRepo     repository.OrderRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		orderRepo:     orderRepo,
	}
}

// GetProduct obtiene un producto por ID.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// GetWarehouse obtiene una bodega por ID.
func (uc *CatalogUseCase) GetWarehouse(ctx context.Context, id int) (*entity.Warehouse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrWarehouseNotFound
	}
	return warehouse, nil
}

// ListPendingOrders lista órdenes sin surtir, más antiguas primero.
func (uc *CatalogUseCase) ListPendingOrders(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.orderRepo.ListPending(ctx, limit, offset)
}
