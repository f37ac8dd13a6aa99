package postgres

import (
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository    = (*CategoryRepo)(nil)
	_ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)
)

var categoryCols = []string{"id", "name", "description", "markup", "created_at", "updated_at"}

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	store *entityStore[entity.PositionCategory]
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{store: &entityStore[entity.PositionCategory]{
		q:     q,
		table: "position_categories",
		cols:  categoryCols,
		values: func(c *entity.PositionCategory) []any {
			return []any{c.ID, c.Name, c.Description, c.Markup, c.CreatedAt, c.UpdatedAt}
		},
		scan: func(row pgx.CollectableRow) (*entity.PositionCategory, error) {
			var c entity.PositionCategory
			err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Markup, &c.CreatedAt, &c.UpdatedAt)
			return &c, err
		},
	}}
}

func (r *CategoryRepo) Create(c *entity.PositionCategory) error { return r.store.insert(c) }

func (r *CategoryRepo) GetByID(id string) (*entity.PositionCategory, error) {
	return r.store.getByID(id)
}

func (r *CategoryRepo) List() ([]*entity.PositionCategory, error) { return r.store.list() }
func (r *CategoryRepo) Update(c *entity.PositionCategory) error { return r.store.update(c) }

// Delete elimina la categoría; sus subcategorías caen en cascada.
func (r *CategoryRepo) Delete(id string) error { return r.store.delete(id) }

var subCategoryCols = []string{"id", "category_id", "name", "description", "markup", "created_at", "updated_at"}

// SubCategoryRepo implementación del puerto SubCategoryRepository sobre PostgreSQL (usable con pool o tx).
type SubCategoryRepo struct {
	store *entityStore[entity.PositionSubCategory]
}

// NewSubCategoryRepository construye el adaptador de persistencia para subcategorías. Pasar pool o tx (Querier).
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{store: &entityStore[entity.PositionSubCategory]{
		q:     q,
		table: "position_sub_categories",
		cols:  subCategoryCols,
		values: func(s *entity.PositionSubCategory) []any {
			return []any{s.ID, s.CategoryID, s.Name, s.Description, s.Markup, s.CreatedAt, s.UpdatedAt}
		},
		scan: func(row pgx.CollectableRow) (*entity.PositionSubCategory, error) {
			var s entity.PositionSubCategory
			err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.Markup, &s.CreatedAt, &s.UpdatedAt)
			return &s, err
		},
	}}
}

func (r *SubCategoryRepo) Create(s *entity.PositionSubCategory) error { return r.store.insert(s) }

func (r *SubCategoryRepo) GetByID(id string) (*entity.PositionSubCategory, error) {
	return r.store.getByID(id)
}

// ListByCategory lista las subcategorías de una categoría.
func (r *SubCategoryRepo) ListByCategory(categoryID string) ([]*entity.PositionSubCategory, error) {
	return r.store.listByField("category_id", categoryID)
}

func (r *SubCategoryRepo) Update(s *entity.PositionSubCategory) error { return r.store.update(s) }
func (r *SubCategoryRepo) Delete(id string) error { return r.store.delete(id) }
