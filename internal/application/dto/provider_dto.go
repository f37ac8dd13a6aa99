package dto

import "time"

// CreateProviderRequest entrada para crear un proveedor.
type CreateProviderRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Address     string `json:"address" validate:"required"`
	Description string `json:"description"`
}

// UpdateProviderRequest actualización parcial de un proveedor.
type UpdateProviderRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

// ProviderResponse salida de un proveedor.
type ProviderResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateManagerRequest entrada para crear un contacto de proveedor.
type CreateManagerRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Telephones string `json:"telephones" validate:"required"`
}

// UpdateManagerRequest actualización parcial de un contacto.
type UpdateManagerRequest struct {
	Name       *string `json:"name"`
	Telephones *string `json:"telephones"`
}

// ManagerResponse salida de un contacto de proveedor.
type ManagerResponse struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	Name       string    `json:"name"`
	Telephones string    `json:"telephones"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateProviderWithManagerRequest alta de proveedor con su primer contacto en
// una sola transacción (regla de negocio: todo proveedor tiene un manager).
type CreateProviderWithManagerRequest struct {
	Provider CreateProviderRequest `json:"provider"`
	Manager  struct {
		Name       string `json:"name" validate:"required"`
		Telephones string `json:"telephones" validate:"required"`
	} `json:"manager"`
}

// ProviderWithManagerResponse resultado del alta transaccional.
type ProviderWithManagerResponse struct {
	Provider ProviderResponse `json:"provider"`
	Manager  ManagerResponse  `json:"manager"`
}
