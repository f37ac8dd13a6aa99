package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest entrada para crear una categoría de posiciones.
// Markup es el coeficiente por defecto opcional de la categoría.
type CreateCategoryRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=100"`
	Description *string          `json:"description"`
	Markup      *decimal.Decimal `json:"markup"`
}

// UpdateCategoryRequest actualización parcial de una categoría.
type UpdateCategoryRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Markup      *decimal.Decimal `json:"markup"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Markup      *decimal.Decimal `json:"markup"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CreateSubCategoryRequest entrada para crear una subcategoría.
// Markup sobreescribe el coeficiente por defecto de la categoría padre.
type CreateSubCategoryRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=100"`
	Description *string          `json:"description"`
	Markup      *decimal.Decimal `json:"markup"`
}

// UpdateSubCategoryRequest actualización parcial de una subcategoría.
type UpdateSubCategoryRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Markup      *decimal.Decimal `json:"markup"`
}

// SubCategoryResponse salida de una subcategoría.
type SubCategoryResponse struct {
	ID          string           `json:"id"`
	CategoryID  string           `json:"category_id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Markup      *decimal.Decimal `json:"markup"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
