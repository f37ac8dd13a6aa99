package repository

import "github.com/tu-usuario/storehouse-api/internal/domain/entity"

// ProviderRepository define el puerto de persistencia para Provider (DIP).
type ProviderRepository interface {
	Create(p *entity.Provider) error
	GetByID(id string) (*entity.Provider, error)
	List() ([]*entity.Provider, error)
	Update(p *entity.Provider) error
	Delete(id string) error
}
