package entity

import "time"

// Order representa una orden de reposición pendiente de surtir.
// FulfilledAt pasa de NULL a un timestamp exactamente una vez en su ciclo de vida;
// una orden con FulfilledAt no nulo es terminal para este flujo.
type Order struct {
	ID          int
	ProductID   int
	Amount      int
	CreatedAt   time.Time
	FulfilledAt *time.Time
}

// Fulfilled indica si la orden ya fue surtida.
func (o *Order) Fulfilled() bool {
	return o.FulfilledAt != nil
}
