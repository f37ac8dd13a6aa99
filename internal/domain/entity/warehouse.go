package entity

import "time"

// Warehouse representa una bodega física que almacena posiciones.
// No se puede eliminar mientras existan posiciones que la referencien (FK RESTRICT).
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
