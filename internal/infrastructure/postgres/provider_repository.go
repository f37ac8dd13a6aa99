package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

var providerCols = []string{"id", "name", "address", "description", "created_at", "updated_at"}

// ProviderRepo implementación del puerto ProviderRepository sobre PostgreSQL (usable con pool o tx).
type ProviderRepo struct {
	store *entityStore[entity.Provider]
}

// NewProviderRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{store: &entityStore[entity.Provider]{
		q:     q,
		table: "providers",
		cols:  providerCols,
		values: func(p *entity.Provider) []any {
			return []any{p.ID, p.Name, p.Address, p.Description, p.CreatedAt, p.UpdatedAt}
		},
		scan: func(row pgx.CollectableRow) (*entity.Provider, error) {
			var p entity.Provider
			err := row.Scan(&p.ID, &p.Name, &p.Address, &p.Description, &p.CreatedAt, &p.UpdatedAt)
			return &p, err
		},
	}}
}

func (r *ProviderRepo) Create(p *entity.Provider) error { return r.store.insert(p) }
func (r *ProviderRepo) GetByID(id string) (*entity.Provider, error) { return r.store.getByID(id) }
func (r *ProviderRepo) List() ([]*entity.Provider, error) { return r.store.list() }
func (r *ProviderRepo) Update(p *entity.Provider) error { return r.store.update(p) }

// Delete elimina el proveedor; sus managers caen en cascada (FK ON DELETE CASCADE).
func (r *ProviderRepo) Delete(id string) error { return r.store.delete(id) }
