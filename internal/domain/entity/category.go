package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PositionCategory categoría de posiciones. Markup es un coeficiente por defecto
// opcional; hoy solo se administra, no participa en el recálculo masivo.
type PositionCategory struct {
	ID          string
	Name        string
	Description *string
	Markup      *decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PositionSubCategory subcategoría; puede sobreescribir el coeficiente de su categoría.
// Se elimina en cascada junto con la categoría padre.
type PositionSubCategory struct {
	ID          string
	CategoryID  string
	Name        string
	Description *string
	Markup      *decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
