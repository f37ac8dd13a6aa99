package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/storehouse-api/internal/application/dto"
	"github.com/tu-usuario/storehouse-api/internal/domain"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/position"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
	"github.com/tu-usuario/storehouse-api/pkg/logger"
	"github.com/tu-usuario/storehouse-api/pkg/metrics"
)

// PositionUseCase casos de uso CRUD y masivos para posiciones.
type PositionUseCase struct {
	repo repository.PositionRepository
	log  *logger.Logger
}

// NewPositionUseCase construye el caso de uso.
func NewPositionUseCase(repo repository.PositionRepository, log *logger.Logger) *PositionUseCase {
	return &PositionUseCase{repo: repo, log: log}
}

// buildPosition valida la entrada y arma la entidad con id y timestamps.
// Si sale_price no viene, se deriva de purchase_price × markup.
func buildPosition(in dto.CreatePositionRequest) (*entity.Position, error) {
	if in.PurchasePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Markup.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	salePrice := position.DeriveSalePrice(in.PurchasePrice, in.Markup)
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		salePrice = *in.SalePrice
	}
	now := time.Now()
	return &entity.Position{
		ID:                uuid.New().String(),
		Category:          in.Category,
		SubCategory:       in.SubCategory,
		Name:              in.Name,
		Description:       in.Description,
		Balance:           in.Balance,
		MinBalance:        in.MinBalance,
		PurchasePrice:     in.PurchasePrice,
		SalePrice:         salePrice,
		Markup:            in.Markup,
		WarehouseID:       in.WarehouseID,
		ProviderID:        in.ProviderID,
		ProviderManagerID: in.ProviderManagerID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// Create crea una posición nueva.
func (uc *PositionUseCase) Create(in dto.CreatePositionRequest) (*dto.PositionResponse, error) {
	p, err := buildPosition(in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.repo.Insert(p); err != nil {
		return nil, err
	}
	return toPositionResponse(p), nil
}

// GetByID obtiene una posición; nil cuando no existe.
func (uc *PositionUseCase) GetByID(id string) (*dto.PositionResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPositionResponse(p), nil
}

// Search lista posiciones por el subconjunto de filtros presente; sin filtros
// devuelve la colección completa.
func (uc *PositionUseCase) Search(warehouseID, category, subCategory *string) ([]dto.PositionResponse, error) {
	var list []*entity.Position
	var err error
	if warehouseID == nil && category == nil && subCategory == nil {
		list, err = uc.repo.GetAll()
	} else {
		list, err = uc.repo.Search(warehouseID, category, subCategory)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.PositionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPositionResponse(p))
	}
	return items, nil
}

// Update aplica un parche parcial; nil cuando la posición no existe.
func (uc *PositionUseCase) Update(id string, in dto.UpdatePositionRequest) (*dto.PositionResponse, error) {
	p, err := uc.repo.UpdateByID(id, in.ToPatch())
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPositionResponse(p), nil
}

// Delete elimina una posición por ID.
func (uc *PositionUseCase) Delete(id string) error {
	return uc.repo.DeleteByID(id)
}

// CreateMany inserta un lote con aislamiento por ítem y emite un resumen del
// resultado. El error solo cubre el fallo de preparación del lote completo.
func (uc *PositionUseCase) CreateMany(ctx context.Context, in []dto.CreatePositionRequest) (*dto.BulkCreateResponse, error) {
	items := make([]*entity.Position, 0, len(in))
	prefailed := make([]dto.BulkInsertError, 0)
	for _, req := range in {
		p, err := buildPosition(req)
		if err != nil {
			prefailed = append(prefailed, dto.BulkInsertError{
				Item:  dto.PositionResponse{Category: req.Category, SubCategory: req.SubCategory, Name: req.Name, WarehouseID: req.WarehouseID},
				Error: err.Error(),
			})
			continue
		}
		items = append(items, p)
	}

	ok, failed, err := uc.repo.InsertMany(ctx, items)
	if err != nil {
		return nil, err
	}

	out := &dto.BulkCreateResponse{
		OK:     make([]dto.PositionResponse, 0, len(ok)),
		Failed: prefailed,
	}
	for _, p := range ok {
		out.OK = append(out.OK, *toPositionResponse(p))
	}
	for _, f := range failed {
		out.Failed = append(out.Failed, dto.BulkInsertError{Item: *toPositionResponse(f.Item), Error: f.Reason})
	}

	reasons := make([]string, 0, len(out.Failed))
	for _, f := range out.Failed {
		reasons = append(reasons, f.Error)
	}
	uc.logBulkOutcome("insert", len(out.OK), reasons)
	metrics.RecordBulk("insert", len(out.OK), len(out.Failed))
	return out, nil
}

// UpdateMany aplica parches por id con aislamiento por ítem. Los fallos son
// datos de la respuesta, nunca errores.
func (uc *PositionUseCase) UpdateMany(ctx context.Context, in map[string]dto.UpdatePositionRequest) *dto.BulkUpdateResponse {
	patches := make(map[string]entity.PositionPatch, len(in))
	for id, req := range in {
		patches[id] = req.ToPatch()
	}
	updated, failed := uc.repo.UpdateManyByID(ctx, patches)

	out := &dto.BulkUpdateResponse{
		Updated: make([]dto.PositionResponse, 0, len(updated)),
		Failed:  make([]dto.BulkItemError, 0, len(failed)),
	}
	for _, p := range updated {
		out.Updated = append(out.Updated, *toPositionResponse(p))
	}
	reasons := make([]string, 0, len(failed))
	for _, f := range failed {
		out.Failed = append(out.Failed, dto.BulkItemError{ID: f.ID, Error: f.Reason})
		reasons = append(reasons, f.ID+": "+f.Reason)
	}

	uc.logBulkOutcome("update", len(out.Updated), reasons)
	metrics.RecordBulk("update", len(out.Updated), len(out.Failed))
	return out
}

// DeleteMany elimina un lote de ids de forma independiente por fila.
func (uc *PositionUseCase) DeleteMany(ctx context.Context, ids []string) *dto.BulkDeleteResponse {
	deleted, failed := uc.repo.DeleteMany(ctx, ids)

	out := &dto.BulkDeleteResponse{
		DeletedIDs: deleted,
		Failed:     make([]dto.BulkItemError, 0, len(failed)),
	}
	if out.DeletedIDs == nil {
		out.DeletedIDs = []string{}
	}
	reasons := make([]string, 0, len(failed))
	for _, f := range failed {
		out.Failed = append(out.Failed, dto.BulkItemError{ID: f.ID, Error: f.Reason})
		reasons = append(reasons, f.ID+": "+f.Reason)
	}

	uc.logBulkOutcome("delete", len(out.DeletedIDs), reasons)
	metrics.RecordBulk("delete", len(out.DeletedIDs), len(out.Failed))
	return out
}

// logBulkOutcome emite exactamente un resumen por lote.
func (uc *PositionUseCase) logBulkOutcome(op string, ok int, failReasons []string) {
	uc.log.Info().
		Str("operation", op).
		Int("ok", ok).
		Int("failed", len(failReasons)).
		Strs("reasons", failReasons).
		Msg("resultado de operación masiva")
}

func toPositionResponse(p *entity.Position) *dto.PositionResponse {
	if p == nil {
		return nil
	}
	return &dto.PositionResponse{
		ID:                p.ID,
		Category:          p.Category,
		SubCategory:       p.SubCategory,
		Name:              p.Name,
		Description:       p.Description,
		Balance:           p.Balance,
		MinBalance:        p.MinBalance,
		PurchasePrice:     p.PurchasePrice,
		SalePrice:         p.SalePrice,
		Markup:            p.Markup,
		WarehouseID:       p.WarehouseID,
		ProviderID:        p.ProviderID,
		ProviderManagerID: p.ProviderManagerID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
