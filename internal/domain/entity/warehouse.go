package entity

// Warehouse representa una bodega donde se recibe mercancía. Solo lectura para el flujo de surtido.
type Warehouse struct {
	ID      int
	Name    string
	Address string
}
