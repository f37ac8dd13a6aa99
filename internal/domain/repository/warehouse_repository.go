package repository

import "github.com/tu-usuario/storehouse-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// Delete devuelve domain.ErrConflict si aún existen posiciones en la bodega.
type WarehouseRepository interface {
	Create(w *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
	Update(w *entity.Warehouse) error
	Delete(id string) error
}
