package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/position"
)

// CreatePositionRequest entrada para crear una posición. SalePrice es opcional:
// si no viene se deriva de purchase_price × markup.
type CreatePositionRequest struct {
	Category          string           `json:"category" validate:"required,min=1,max=100"`
	SubCategory       string           `json:"sub_category" validate:"required,min=1,max=100"`
	Name              string           `json:"name" validate:"required,min=1,max=200"`
	Description       string           `json:"description" validate:"required"`
	Balance           *int             `json:"balance"`
	MinBalance        *int             `json:"min_balance"`
	PurchasePrice     decimal.Decimal  `json:"purchase_price"`
	SalePrice         *decimal.Decimal `json:"sale_price"`
	Markup            decimal.Decimal  `json:"markup"`
	WarehouseID       string           `json:"warehouse_id" validate:"required"`
	ProviderID        *string          `json:"provider_id"`
	ProviderManagerID *string          `json:"provider_manager_id"`
}

// UpdatePositionRequest actualización parcial: solo los campos presentes cambian.
// Los campos desconocidos del JSON se ignoran en el decode; id y timestamps no
// existen aquí, así que son imparchables por construcción.
type UpdatePositionRequest struct {
	Category          *string          `json:"category"`
	SubCategory       *string          `json:"sub_category"`
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Balance           *int             `json:"balance"`
	MinBalance        *int             `json:"min_balance"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price"`
	SalePrice         *decimal.Decimal `json:"sale_price"`
	Markup            *decimal.Decimal `json:"markup"`
	WarehouseID       *string          `json:"warehouse_id"`
	ProviderID        *string          `json:"provider_id"`
	ProviderManagerID *string          `json:"provider_manager_id"`
}

// ToPatch convierte la entrada HTTP en el parche tipado del dominio.
func (in UpdatePositionRequest) ToPatch() entity.PositionPatch {
	return entity.PositionPatch{
		Category:          in.Category,
		SubCategory:       in.SubCategory,
		Name:              in.Name,
		Description:       in.Description,
		Balance:           in.Balance,
		MinBalance:        in.MinBalance,
		PurchasePrice:     in.PurchasePrice,
		SalePrice:         in.SalePrice,
		Markup:            in.Markup,
		WarehouseID:       in.WarehouseID,
		ProviderID:        in.ProviderID,
		ProviderManagerID: in.ProviderManagerID,
	}
}

// PositionResponse salida de una posición.
type PositionResponse struct {
	ID                string          `json:"id"`
	Category          string          `json:"category"`
	SubCategory       string          `json:"sub_category"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Balance           *int            `json:"balance"`
	MinBalance        *int            `json:"min_balance"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	Markup            decimal.Decimal `json:"markup"`
	WarehouseID       string          `json:"warehouse_id"`
	ProviderID        *string         `json:"provider_id"`
	ProviderManagerID *string         `json:"provider_manager_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// BulkInsertError fallo por ítem de una inserción masiva: el payload intentado
// (con el id que se le generó) más el mensaje de error.
type BulkInsertError struct {
	Item  PositionResponse `json:"item"`
	Error string           `json:"error"`
}

// BulkCreateResponse resultado de POST /positions/bulk.
type BulkCreateResponse struct {
	OK     []PositionResponse `json:"ok"`
	Failed []BulkInsertError  `json:"failed"`
}

// BulkUpdateResponse resultado de PATCH /positions/bulk.
type BulkUpdateResponse struct {
	Updated []PositionResponse `json:"updated"`
	Failed  []BulkItemError    `json:"failed"`
}

// BulkDeleteResponse resultado de POST /positions/delete-bulk.
type BulkDeleteResponse struct {
	DeletedIDs []string        `json:"deleted_ids"`
	Failed     []BulkItemError `json:"failed"`
}

// MarkupFilter filtro conjuntivo del recálculo masivo de markup.
type MarkupFilter struct {
	Category    *string  `json:"category"`
	SubCategory *string  `json:"sub_category"`
	WarehouseID *string  `json:"warehouse_id"`
	IDs         []string `json:"ids"`
}

// ToFilter convierte el filtro HTTP al filtro del dominio.
func (f MarkupFilter) ToFilter() position.Filter {
	return position.Filter{
		Category:    f.Category,
		SubCategory: f.SubCategory,
		WarehouseID: f.WarehouseID,
		IDs:         f.IDs,
	}
}

// MarkupUpdateRequest entrada de PATCH /positions/markup-percent.
// percent acotado a [-95, 500]: nunca más de 95% de descuento ni 500% de
// recargo en una sola llamada.
type MarkupUpdateRequest struct {
	Percent decimal.Decimal `json:"percent"`
	Filter  MarkupFilter    `json:"filter"`
}

// MarkupUpdateResponse resultado del recálculo masivo.
type MarkupUpdateResponse struct {
	Updated int64           `json:"updated"`
	Percent decimal.Decimal `json:"percent"`
}
