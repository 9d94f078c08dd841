package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fulfillment es el registro en product_warehouse que deja constancia del surtido
// de una orden: qué producto entró a qué bodega, por qué orden y a qué precio total.
// Se crea una sola vez por orden (id_order es único) y nunca se actualiza ni se borra.
type Fulfillment struct {
	ID          int
	WarehouseID int
	ProductID   int
	OrderID     int
	Amount      int
	Price       decimal.Decimal // precio unitario × cantidad
	CreatedAt   time.Time
}
