package repository

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// WarehouseRepository puerto de persistencia para bodegas (solo lectura en este flujo).
type WarehouseRepository interface {
	// GetByID devuelve la bodega o nil si no existe.
	GetByID(ctx context.Context, id int) (*entity.Warehouse, error)
}
