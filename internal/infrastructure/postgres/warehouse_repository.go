package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

var warehouseCols = []string{"id", "name", "address", "created_at", "updated_at"}

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL (usable con pool o tx).
type WarehouseRepo struct {
	store *entityStore[entity.Warehouse]
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{store: &entityStore[entity.Warehouse]{
		q:     q,
		table: "warehouses",
		cols:  warehouseCols,
		values: func(w *entity.Warehouse) []any {
			return []any{w.ID, w.Name, w.Address, w.CreatedAt, w.UpdatedAt}
		},
		scan: func(row pgx.CollectableRow) (*entity.Warehouse, error) {
			var w entity.Warehouse
			err := row.Scan(&w.ID, &w.Name, &w.Address, &w.CreatedAt, &w.UpdatedAt)
			return &w, err
		},
	}}
}

func (r *WarehouseRepo) Create(w *entity.Warehouse) error { return r.store.insert(w) }
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) { return r.store.getByID(id) }
func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) { return r.store.list() }
func (r *WarehouseRepo) Update(w *entity.Warehouse) error { return r.store.update(w) }

// Delete falla con domain.ErrConflict mientras existan posiciones en la bodega
// (FK ON DELETE RESTRICT).
func (r *WarehouseRepo) Delete(id string) error { return r.store.delete(id) }
