package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/storehouse-api/internal/application/usecase"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
)

var _ usecase.ProviderTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunProvider inicia una transacción, ejecuta fn con repos de proveedor y
// manager atados a la tx, y hace Commit o Rollback. Se usa para el alta de
// proveedor con su primer manager en una sola unidad de trabajo.
func (r *TxRunner) RunProvider(ctx context.Context, fn func(
	providers repository.ProviderRepository,
	managers repository.ProviderManagerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	providerRepo := NewProviderRepository(tx)
	managerRepo := NewProviderManagerRepository(tx)

	if err := fn(providerRepo, managerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
