package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/storehouse-api/internal/application/dto"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías y subcategorías.
// Los coeficientes por defecto solo se administran aquí; el recálculo masivo
// de markup no los lee.
type CategoryUseCase struct {
	categories    repository.CategoryRepository
	subCategories repository.SubCategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, subCategories repository.SubCategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, subCategories: subCategories}
}

// Create crea una categoría nueva. El nombre es único.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	c := &entity.PositionCategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Markup:      in.Markup,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetByID obtiene una categoría; nil cuando no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	c, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCategoryResponse(c), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update aplica un parche parcial; nil cuando la categoría no existe.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = in.Description
	}
	if in.Markup != nil {
		c.Markup = in.Markup
	}
	c.UpdatedAt = time.Now()
	if err := uc.categories.Update(c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Delete elimina la categoría y, en cascada, sus subcategorías.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.categories.Delete(id)
}

// CreateSubCategory crea una subcategoría dentro de una categoría.
func (uc *CategoryUseCase) CreateSubCategory(categoryID string, in dto.CreateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	now := time.Now()
	s := &entity.PositionSubCategory{
		ID:          uuid.New().String(),
		CategoryID:  categoryID,
		Name:        in.Name,
		Description: in.Description,
		Markup:      in.Markup,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.subCategories.Create(s); err != nil {
		return nil, err
	}
	return toSubCategoryResponse(s), nil
}

// ListSubCategories lista las subcategorías de una categoría.
func (uc *CategoryUseCase) ListSubCategories(categoryID string) ([]dto.SubCategoryResponse, error) {
	list, err := uc.subCategories.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubCategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubCategoryResponse(s))
	}
	return items, nil
}

// UpdateSubCategory aplica un parche parcial; nil cuando no existe.
func (uc *CategoryUseCase) UpdateSubCategory(id string, in dto.UpdateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	s, err := uc.subCategories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Description != nil {
		s.Description = in.Description
	}
	if in.Markup != nil {
		s.Markup = in.Markup
	}
	s.UpdatedAt = time.Now()
	if err := uc.subCategories.Update(s); err != nil {
		return nil, err
	}
	return toSubCategoryResponse(s), nil
}

// DeleteSubCategory elimina una subcategoría por ID.
func (uc *CategoryUseCase) DeleteSubCategory(id string) error {
	return uc.subCategories.Delete(id)
}

func toCategoryResponse(c *entity.PositionCategory) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Markup:      c.Markup,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toSubCategoryResponse(s *entity.PositionSubCategory) *dto.SubCategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubCategoryResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
		Markup:      s.Markup,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
