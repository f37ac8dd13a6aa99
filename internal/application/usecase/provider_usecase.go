package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/storehouse-api/internal/application/dto"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
)

// ProviderTxRunner ejecuta un callback con repos de proveedor y manager atados
// a una misma transacción (implementado por infraestructura).
type ProviderTxRunner interface {
	RunProvider(ctx context.Context, fn func(
		providers repository.ProviderRepository,
		managers repository.ProviderManagerRepository,
	) error) error
}

// ProviderUseCase casos de uso CRUD para proveedores.
type ProviderUseCase struct {
	repo repository.ProviderRepository
	tx   ProviderTxRunner
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository, tx ProviderTxRunner) *ProviderUseCase {
	return &ProviderUseCase{repo: repo, tx: tx}
}

func buildProvider(in dto.CreateProviderRequest) *entity.Provider {
	now := time.Now()
	return &entity.Provider{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Create crea un proveedor nuevo.
func (uc *ProviderUseCase) Create(in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	p := buildProvider(in)
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// CreateWithManager crea el proveedor y su primer contacto en una sola
// transacción: o quedan los dos o ninguno.
func (uc *ProviderUseCase) CreateWithManager(ctx context.Context, in dto.CreateProviderWithManagerRequest) (*dto.ProviderWithManagerResponse, error) {
	p := buildProvider(in.Provider)
	now := time.Now()
	m := &entity.ProviderManager{
		ID:         uuid.New().String(),
		ProviderID: p.ID,
		Name:       in.Manager.Name,
		Telephones: in.Manager.Telephones,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := uc.tx.RunProvider(ctx, func(providers repository.ProviderRepository, managers repository.ProviderManagerRepository) error {
		if err := providers.Create(p); err != nil {
			return err
		}
		return managers.Create(m)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ProviderWithManagerResponse{
		Provider: *toProviderResponse(p),
		Manager:  *toManagerResponse(m),
	}, nil
}

// GetByID obtiene un proveedor; nil cuando no existe.
func (uc *ProviderUseCase) GetByID(id string) (*dto.ProviderResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProviderResponse(p), nil
}

// List lista todos los proveedores.
func (uc *ProviderUseCase) List() ([]dto.ProviderResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProviderResponse(p))
	}
	return items, nil
}

// Update aplica un parche parcial; nil cuando el proveedor no existe.
func (uc *ProviderUseCase) Update(id string, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProviderResponse(p), nil
}

// Delete elimina el proveedor y, en cascada, sus contactos.
func (uc *ProviderUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	if p == nil {
		return nil
	}
	return &dto.ProviderResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
