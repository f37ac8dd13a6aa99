package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/storehouse-api/internal/domain"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/position"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
)

var _ repository.PositionRepository = (*PositionRepo)(nil)

const positionColumns = `id, category, sub_category, name, description, balance, min_balance,
	purchase_price, sale_price, markup, warehouse_id, provider_id, provider_manager_id,
	created_at, updated_at`

const positionInsertSQL = `
	INSERT INTO positions (id, category, sub_category, name, description, balance, min_balance,
		purchase_price, sale_price, markup, warehouse_id, provider_id, provider_manager_id,
		created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

const positionUpdateSQL = `
	UPDATE positions SET category = $2, sub_category = $3, name = $4, description = $5,
		balance = $6, min_balance = $7, purchase_price = $8, sale_price = $9, markup = $10,
		warehouse_id = $11, provider_id = $12, provider_manager_id = $13, updated_at = $14
	WHERE id = $1`

// PositionRepo implementación del puerto PositionRepository sobre PostgreSQL.
// Maneja sus propias transacciones (rutas masivas con aislamiento por ítem),
// por eso recibe el pool y no un Querier.
type PositionRepo struct {
	pool *pgxpool.Pool
}

// NewPositionRepository construye el adaptador de persistencia para posiciones.
func NewPositionRepository(pool *pgxpool.Pool) *PositionRepo {
	return &PositionRepo{pool: pool}
}

func scanPosition(row pgx.CollectableRow) (*entity.Position, error) {
	var p entity.Position
	err := row.Scan(
		&p.ID, &p.Category, &p.SubCategory, &p.Name, &p.Description,
		&p.Balance, &p.MinBalance, &p.PurchasePrice, &p.SalePrice, &p.Markup,
		&p.WarehouseID, &p.ProviderID, &p.ProviderManagerID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return &p, err
}

func positionInsertArgs(p *entity.Position) []any {
	return []any{
		p.ID, p.Category, p.SubCategory, p.Name, p.Description, p.Balance, p.MinBalance,
		p.PurchasePrice, p.SalePrice, p.Markup, p.WarehouseID, p.ProviderID, p.ProviderManagerID,
		p.CreatedAt, p.UpdatedAt,
	}
}

func positionUpdateArgs(p *entity.Position) []any {
	return []any{
		p.ID, p.Category, p.SubCategory, p.Name, p.Description, p.Balance, p.MinBalance,
		p.PurchasePrice, p.SalePrice, p.Markup, p.WarehouseID, p.ProviderID, p.ProviderManagerID,
		p.UpdatedAt,
	}
}

// filterConditions traduce el filtro conjuntivo a condiciones SQL. Los campos
// ausentes no generan condición; IDs usa pertenencia (= ANY). Los placeholders
// arrancan en $start para poder anteponer otros argumentos (ej. el factor).
func filterConditions(f position.Filter, start int) (string, []any) {
	var conds []string
	var args []any
	n := start
	add := func(expr string, v any) {
		conds = append(conds, fmt.Sprintf(expr, n))
		args = append(args, v)
		n++
	}
	if f.Category != nil {
		add("category = $%d", *f.Category)
	}
	if f.SubCategory != nil {
		add("sub_category = $%d", *f.SubCategory)
	}
	if f.WarehouseID != nil {
		add("warehouse_id = $%d", *f.WarehouseID)
	}
	if len(f.IDs) > 0 {
		add("id = ANY($%d)", f.IDs)
	}
	return strings.Join(conds, " AND "), args
}

// Insert persiste una posición nueva.
func (r *PositionRepo) Insert(p *entity.Position) (*entity.Position, error) {
	_, err := r.pool.Exec(context.Background(), positionInsertSQL, positionInsertArgs(p)...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, constraintMessage(err))
		}
		return nil, fmt.Errorf("insert position: %w", err)
	}
	return p, nil
}

// GetByID obtiene una posición por ID; nil cuando no existe.
func (r *PositionRepo) GetByID(id string) (*entity.Position, error) {
	rows, err := r.pool.Query(context.Background(),
		"SELECT "+positionColumns+" FROM positions WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("get position: %w", err)
	}
	p, err := pgx.CollectOneRow(rows, scanPosition)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan position: %w", err)
	}
	return p, nil
}

// GetAll lista todas las posiciones.
func (r *PositionRepo) GetAll() ([]*entity.Position, error) {
	rows, err := r.pool.Query(context.Background(),
		"SELECT "+positionColumns+" FROM positions ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	items, err := pgx.CollectRows(rows, scanPosition)
	if err != nil {
		return nil, fmt.Errorf("scan positions: %w", err)
	}
	return items, nil
}

// Search filtra por el subconjunto de {bodega, categoría, subcategoría} que
// venga presente (semántica AND). A diferencia del recálculo de markup, la
// búsqueda sin filtros sí está permitida y devuelve la colección completa.
func (r *PositionRepo) Search(warehouseID, category, subCategory *string) ([]*entity.Position, error) {
	where, args := filterConditions(position.Filter{
		Category:    category,
		SubCategory: subCategory,
		WarehouseID: warehouseID,
	}, 1)
	query := "SELECT " + positionColumns + " FROM positions"
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY created_at"

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search positions: %w", err)
	}
	items, err := pgx.CollectRows(rows, scanPosition)
	if err != nil {
		return nil, fmt.Errorf("scan positions: %w", err)
	}
	return items, nil
}

// UpdateByID aplica un parche parcial sobre la posición. Devuelve nil cuando no
// existe; los errores de integridad se envuelven, nunca se propagan crudos.
func (r *PositionRepo) UpdateByID(id string, patch entity.PositionPatch) (*entity.Position, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	patch.Apply(p)
	p.UpdatedAt = time.Now()

	_, err = r.pool.Exec(context.Background(), positionUpdateSQL, positionUpdateArgs(p)...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, constraintMessage(err))
		}
		return nil, fmt.Errorf("update position: %w", err)
	}
	return p, nil
}

// DeleteByID elimina una posición por ID.
func (r *PositionRepo) DeleteByID(id string) error {
	cmd, err := r.pool.Exec(context.Background(), "DELETE FROM positions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete position: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// InsertMany inserta cada ítem en su propia transacción sobre una misma
// conexión: el fallo de constraint de un ítem no toca a los ya confirmados ni
// a los que siguen. Solo la imposibilidad de preparar el lote (sin conexión)
// se devuelve como error.
func (r *PositionRepo) InsertMany(ctx context.Context, items []*entity.Position) ([]*entity.Position, []repository.InsertFailure, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	defer conn.Release()

	var ok []*entity.Position
	var failed []repository.InsertFailure

	for _, item := range items {
		tx, err := conn.Begin(ctx)
		if err != nil {
			failed = append(failed, repository.InsertFailure{Item: item, Reason: "DB_ERROR: " + err.Error()})
			continue
		}
		if _, err := tx.Exec(ctx, positionInsertSQL, positionInsertArgs(item)...); err != nil {
			_ = tx.Rollback(ctx)
			failed = append(failed, repository.InsertFailure{Item: item, Reason: constraintMessage(err)})
			continue
		}
		if err := tx.Commit(ctx); err != nil {
			failed = append(failed, repository.InsertFailure{Item: item, Reason: "DB_ERROR: " + err.Error()})
			continue
		}
		ok = append(ok, item)
	}
	return ok, failed, nil
}

// UpdateManyByID actualiza por lotes con aislamiento por ítem: una transacción
// externa, un chequeo de existencia único y un SAVEPOINT por fila, de modo que
// la violación de constraint de una fila revierte solo esa fila. La caída del
// lote completo marca todos los ids como fallidos; nunca devuelve error.
func (r *PositionRepo) UpdateManyByID(ctx context.Context, patches map[string]entity.PositionPatch) ([]*entity.Position, []repository.ItemFailure) {
	ids := make([]string, 0, len(patches))
	for id := range patches {
		ids = append(ids, id)
	}
	sort.Strings(ids) // orden determinista: las llaves de un map no lo son

	allFailed := func(reason string) []repository.ItemFailure {
		out := make([]repository.ItemFailure, 0, len(ids))
		for _, id := range ids {
			out = append(out, repository.ItemFailure{ID: id, Reason: reason})
		}
		return out
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, allFailed("DB_ERROR: " + err.Error())
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx,
		"SELECT "+positionColumns+" FROM positions WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, allFailed("DB_ERROR: " + err.Error())
	}
	existing, err := pgx.CollectRows(rows, scanPosition)
	if err != nil {
		return nil, allFailed("DB_ERROR: " + err.Error())
	}
	found := make(map[string]*entity.Position, len(existing))
	for _, p := range existing {
		found[p.ID] = p
	}

	var updated []*entity.Position
	var failed []repository.ItemFailure

	for _, id := range ids {
		if _, ok := found[id]; !ok {
			failed = append(failed, repository.ItemFailure{ID: id, Reason: "NOT_FOUND"})
		}
	}

	for _, id := range ids {
		p, ok := found[id]
		if !ok {
			continue
		}
		patches[id].Apply(p)
		p.UpdatedAt = time.Now()

		sp, err := tx.Begin(ctx) // SAVEPOINT
		if err != nil {
			failed = append(failed, repository.ItemFailure{ID: id, Reason: "DB_ERROR: " + err.Error()})
			continue
		}
		if _, err := sp.Exec(ctx, positionUpdateSQL, positionUpdateArgs(p)...); err != nil {
			_ = sp.Rollback(ctx)
			if isIntegrityViolation(err) {
				failed = append(failed, repository.ItemFailure{ID: id, Reason: "INTEGRITY_ERROR: " + constraintMessage(err)})
			} else {
				failed = append(failed, repository.ItemFailure{ID: id, Reason: err.Error()})
			}
			continue
		}
		if err := sp.Commit(ctx); err != nil {
			failed = append(failed, repository.ItemFailure{ID: id, Reason: "DB_ERROR: " + err.Error()})
			continue
		}
		updated = append(updated, p)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, allFailed("DB_ERROR: " + err.Error())
	}
	return updated, failed
}

// DeleteMany elimina cada id de forma independiente (SAVEPOINT por fila): el
// fallo de una fila no impide borrar el resto. Los ids inexistentes se
// reportan NOT_FOUND.
func (r *PositionRepo) DeleteMany(ctx context.Context, ids []string) ([]string, []repository.ItemFailure) {
	allFailed := func(reason string) []repository.ItemFailure {
		out := make([]repository.ItemFailure, 0, len(ids))
		for _, id := range ids {
			out = append(out, repository.ItemFailure{ID: id, Reason: reason})
		}
		return out
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, allFailed("DB_ERROR: " + err.Error())
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, "SELECT id FROM positions WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, allFailed("DB_ERROR: " + err.Error())
	}
	existingIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, allFailed("DB_ERROR: " + err.Error())
	}
	existing := make(map[string]struct{}, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = struct{}{}
	}

	var deleted []string
	var failed []repository.ItemFailure

	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			failed = append(failed, repository.ItemFailure{ID: id, Reason: "NOT_FOUND"})
			continue
		}
		sp, err := tx.Begin(ctx) // SAVEPOINT
		if err != nil {
			failed = append(failed, repository.ItemFailure{ID: id, Reason: "DB_ERROR: " + err.Error()})
			continue
		}
		if _, err := sp.Exec(ctx, "DELETE FROM positions WHERE id = $1", id); err != nil {
			_ = sp.Rollback(ctx)
			failed = append(failed, repository.ItemFailure{ID: id, Reason: constraintMessage(err)})
			continue
		}
		if err := sp.Commit(ctx); err != nil {
			failed = append(failed, repository.ItemFailure{ID: id, Reason: "DB_ERROR: " + err.Error()})
			continue
		}
		deleted = append(deleted, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, allFailed("DB_ERROR: " + err.Error())
	}
	return deleted, failed
}

// ApplyMarkupFactorByFilter multiplica el markup de todas las filas que cumplen
// el filtro, en un único UPDATE basado en conjunto: todo o nada. La expresión
// es relativa (markup * factor), así dos llamadas concurrentes sobre filtros
// disjuntos componen sin pisarse. No recalcula sale_price.
func (r *PositionRepo) ApplyMarkupFactorByFilter(ctx context.Context, factor decimal.Decimal, filter position.Filter) (int64, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}
	where, args := filterConditions(filter, 2)
	args = append([]any{factor}, args...)

	query := "UPDATE positions SET markup = markup * $1, updated_at = now() WHERE " + where
	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("apply markup: %w", err)
	}
	return cmd.RowsAffected(), nil
}
