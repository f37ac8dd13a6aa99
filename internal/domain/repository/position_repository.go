package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/position"
)

// InsertFailure resultado por ítem de una inserción masiva que no se guardó.
type InsertFailure struct {
	Item   *entity.Position
	Reason string
}

// ItemFailure resultado por ítem de una mutación masiva fallida (update/delete).
type ItemFailure struct {
	ID     string
	Reason string
}

// PositionRepository define el puerto de persistencia para Position (DIP).
// Las rutas de un solo ítem devuelven nil cuando el registro no existe; los
// errores del motor de almacenamiento nunca cruzan esta frontera sin envolver.
type PositionRepository interface {
	Insert(p *entity.Position) (*entity.Position, error)
	GetByID(id string) (*entity.Position, error)
	GetAll() ([]*entity.Position, error)
	Search(warehouseID, category, subCategory *string) ([]*entity.Position, error)
	UpdateByID(id string, patch entity.PositionPatch) (*entity.Position, error)
	DeleteByID(id string) error

	// InsertMany inserta cada ítem en su propia transacción; un fallo de
	// constraint descarta solo ese ítem. Devuelve error únicamente cuando la
	// preparación del lote completo falla (domain.ErrStorageUnavailable).
	InsertMany(ctx context.Context, items []*entity.Position) (ok []*entity.Position, failed []InsertFailure, err error)

	// UpdateManyByID aplica parches por id con aislamiento por ítem
	// (SAVEPOINT por fila). Los ids inexistentes se reportan NOT_FOUND sin
	// intentar mutación; la caída total del lote marca todos los ids como
	// fallidos. Nunca devuelve error: los fallos son datos.
	UpdateManyByID(ctx context.Context, patches map[string]entity.PositionPatch) (updated []*entity.Position, failed []ItemFailure)

	// DeleteMany elimina cada id de forma independiente; el fallo de una fila
	// no impide borrar el resto.
	DeleteMany(ctx context.Context, ids []string) (deleted []string, failed []ItemFailure)

	// ApplyMarkupFactorByFilter multiplica markup por factor en todas las filas
	// que cumplan el filtro, en un solo UPDATE atómico (todo o nada).
	// Devuelve la cantidad de filas afectadas. No toca sale_price.
	ApplyMarkupFactorByFilter(ctx context.Context, factor decimal.Decimal, filter position.Filter) (int64, error)
}
