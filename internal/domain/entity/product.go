package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Para el flujo de surtido es de
// solo lectura: el precio unitario vigente se toma de aquí al momento de surtir.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal // precio unitario, siempre positivo
}
