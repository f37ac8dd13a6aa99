package entity

import "time"

// ProviderManager representa un contacto nombrado de un proveedor.
type ProviderManager struct {
	ID         string
	ProviderID string
	Name       string
	Telephones string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
