package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position representa una posición de inventario (un repuesto) almacenada en una bodega.
// SalePrice se deriva de PurchasePrice × Markup cuando no se envía al crear.
type Position struct {
	ID                string
	Category          string
	SubCategory       string
	Name              string
	Description       string
	Balance           *int // existencias actuales (nullable)
	MinBalance        *int // umbral de reposición (nullable)
	PurchasePrice     decimal.Decimal
	SalePrice         decimal.Decimal
	Markup            decimal.Decimal // coeficiente multiplicativo compra → venta
	WarehouseID       string
	ProviderID        *string
	ProviderManagerID *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PositionPatch actualización parcial de una posición: solo los campos no nulos
// se aplican. ID, CreatedAt y UpdatedAt no son parchables por construcción.
type PositionPatch struct {
	Category          *string
	SubCategory       *string
	Name              *string
	Description       *string
	Balance           *int
	MinBalance        *int
	PurchasePrice     *decimal.Decimal
	SalePrice         *decimal.Decimal
	Markup            *decimal.Decimal
	WarehouseID       *string
	ProviderID        *string
	ProviderManagerID *string
}

// IsZero indica si el patch no trae ningún campo.
func (p PositionPatch) IsZero() bool {
	return p.Category == nil && p.SubCategory == nil && p.Name == nil &&
		p.Description == nil && p.Balance == nil && p.MinBalance == nil &&
		p.PurchasePrice == nil && p.SalePrice == nil && p.Markup == nil &&
		p.WarehouseID == nil && p.ProviderID == nil && p.ProviderManagerID == nil
}

// Apply copia los campos presentes del patch sobre la posición.
func (p PositionPatch) Apply(pos *Position) {
	if p.Category != nil {
		pos.Category = *p.Category
	}
	if p.SubCategory != nil {
		pos.SubCategory = *p.SubCategory
	}
	if p.Name != nil {
		pos.Name = *p.Name
	}
	if p.Description != nil {
		pos.Description = *p.Description
	}
	if p.Balance != nil {
		pos.Balance = p.Balance
	}
	if p.MinBalance != nil {
		pos.MinBalance = p.MinBalance
	}
	if p.PurchasePrice != nil {
		pos.PurchasePrice = *p.PurchasePrice
	}
	if p.SalePrice != nil {
		pos.SalePrice = *p.SalePrice
	}
	if p.Markup != nil {
		pos.Markup = *p.Markup
	}
	if p.WarehouseID != nil {
		pos.WarehouseID = *p.WarehouseID
	}
	if p.ProviderID != nil {
		pos.ProviderID = p.ProviderID
	}
	if p.ProviderManagerID != nil {
		pos.ProviderManagerID = p.ProviderManagerID
	}
}
