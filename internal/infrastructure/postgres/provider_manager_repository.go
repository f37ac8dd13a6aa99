package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
)

var _ repository.ProviderManagerRepository = (*ProviderManagerRepo)(nil)

var managerCols = []string{"id", "provider_id", "name", "telephones", "created_at", "updated_at"}

// ProviderManagerRepo implementación del puerto ProviderManagerRepository sobre PostgreSQL (usable con pool o tx).
type ProviderManagerRepo struct {
	store *entityStore[entity.ProviderManager]
}

// NewProviderManagerRepository construye el adaptador de persistencia para managers. Pasar pool o tx (Querier).
func NewProviderManagerRepository(q Querier) *ProviderManagerRepo {
	return &ProviderManagerRepo{store: &entityStore[entity.ProviderManager]{
		q:     q,
		table: "provider_managers",
		cols:  managerCols,
		values: func(m *entity.ProviderManager) []any {
			return []any{m.ID, m.ProviderID, m.Name, m.Telephones, m.CreatedAt, m.UpdatedAt}
		},
		scan: func(row pgx.CollectableRow) (*entity.ProviderManager, error) {
			var m entity.ProviderManager
			err := row.Scan(&m.ID, &m.ProviderID, &m.Name, &m.Telephones, &m.CreatedAt, &m.UpdatedAt)
			return &m, err
		},
	}}
}

func (r *ProviderManagerRepo) Create(m *entity.ProviderManager) error { return r.store.insert(m) }

func (r *ProviderManagerRepo) GetByID(id string) (*entity.ProviderManager, error) {
	return r.store.getByID(id)
}

func (r *ProviderManagerRepo) List() ([]*entity.ProviderManager, error) { return r.store.list() }

// ListByProvider lista los contactos de un proveedor.
func (r *ProviderManagerRepo) ListByProvider(providerID string) ([]*entity.ProviderManager, error) {
	return r.store.listByField("provider_id", providerID)
}

func (r *ProviderManagerRepo) Update(m *entity.ProviderManager) error { return r.store.update(m) }
func (r *ProviderManagerRepo) Delete(id string) error { return r.store.delete(id) }
