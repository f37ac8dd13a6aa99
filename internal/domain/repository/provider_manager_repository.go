package repository

import "github.com/tu-usuario/storehouse-api/internal/domain/entity"

// ProviderManagerRepository define el puerto de persistencia para ProviderManager (DIP).
type ProviderManagerRepository interface {
	Create(m *entity.ProviderManager) error
	GetByID(id string) (*entity.ProviderManager, error)
	List() ([]*entity.ProviderManager, error)
	ListByProvider(providerID string) ([]*entity.ProviderManager, error)
	Update(m *entity.ProviderManager) error
	Delete(id string) error
}
