package repository

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos (solo lectura en este flujo).
type ProductRepository interface {
	// GetByID devuelve el producto o nil si no existe.
	GetByID(ctx context.Context, id int) (*entity.Product, error)
}
