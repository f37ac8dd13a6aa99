package entity

import "time"

// Provider representa un proveedor de repuestos.
// Al eliminarlo se eliminan en cascada sus managers.
type Provider struct {
	ID          string
	Name        string
	Address     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
