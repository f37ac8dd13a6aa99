package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/storehouse-api/internal/application/dto"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
)

// ProviderManagerUseCase casos de uso CRUD para contactos de proveedor.
type ProviderManagerUseCase struct {
	repo repository.ProviderManagerRepository
}

// NewProviderManagerUseCase construye el caso de uso.
func NewProviderManagerUseCase(repo repository.ProviderManagerRepository) *ProviderManagerUseCase {
	return &ProviderManagerUseCase{repo: repo}
}

// Create crea un contacto nuevo. El provider_id debe referir a un proveedor existente.
func (uc *ProviderManagerUseCase) Create(in dto.CreateManagerRequest) (*dto.ManagerResponse, error) {
	now := time.Now()
	m := &entity.ProviderManager{
		ID:         uuid.New().String(),
		ProviderID: in.ProviderID,
		Name:       in.Name,
		Telephones: in.Telephones,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toManagerResponse(m), nil
}

// GetByID obtiene un contacto; nil cuando no existe.
func (uc *ProviderManagerUseCase) GetByID(id string) (*dto.ManagerResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toManagerResponse(m), nil
}

// List lista todos los contactos.
func (uc *ProviderManagerUseCase) List() ([]dto.ManagerResponse, error) {
	return uc.toResponses(uc.repo.List())
}

// ListByProvider lista los contactos de un proveedor.
func (uc *ProviderManagerUseCase) ListByProvider(providerID string) ([]dto.ManagerResponse, error) {
	return uc.toResponses(uc.repo.ListByProvider(providerID))
}

// Update aplica un parche parcial; nil cuando el contacto no existe.
func (uc *ProviderManagerUseCase) Update(id string, in dto.UpdateManagerRequest) (*dto.ManagerResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Telephones != nil {
		m.Telephones = *in.Telephones
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toManagerResponse(m), nil
}

// Delete elimina un contacto por ID.
func (uc *ProviderManagerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProviderManagerUseCase) toResponses(list []*entity.ProviderManager, err error) ([]dto.ManagerResponse, error) {
	if err != nil {
		return nil, err
	}
	items := make([]dto.ManagerResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toManagerResponse(m))
	}
	return items, nil
}

func toManagerResponse(m *entity.ProviderManager) *dto.ManagerResponse {
	if m == nil {
		return nil
	}
	return &dto.ManagerResponse{
		ID:         m.ID,
		ProviderID: m.ProviderID,
		Name:       m.Name,
		Telephones: m.Telephones,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
