package repository

import "github.com/tu-usuario/storehouse-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para PositionCategory (DIP).
type CategoryRepository interface {
	Create(c *entity.PositionCategory) error
	GetByID(id string) (*entity.PositionCategory, error)
	List() ([]*entity.PositionCategory, error)
	Update(c *entity.PositionCategory) error
	Delete(id string) error
}

// SubCategoryRepository define el puerto de persistencia para PositionSubCategory (DIP).
type SubCategoryRepository interface {
	Create(s *entity.PositionSubCategory) error
	GetByID(id string) (*entity.PositionSubCategory, error)
	ListByCategory(categoryID string) ([]*entity.PositionSubCategory, error)
	Update(s *entity.PositionSubCategory) error
	Delete(id string) error
}
