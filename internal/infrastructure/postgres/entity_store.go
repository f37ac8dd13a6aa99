package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/storehouse-api/internal/domain"
)

// entityStore CRUD genérico por id, parametrizado por la forma de la entidad.
// Providers, managers, bodegas y categorías comparten exactamente la misma
// lógica salvo el juego de columnas, así que viven sobre un único store en vez
// de cuatro repositorios casi idénticos.
type entityStore[T any] struct {
	q      Querier
	table  string
	cols   []string       // la primera columna debe ser id
	values func(*T) []any // valores en el orden de cols
	scan   func(row pgx.CollectableRow) (*T, error)
}

func (s *entityStore[T]) colList() string {
	return strings.Join(s.cols, ", ")
}

func placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ps, ", ")
}

// insert persiste una entidad nueva. Violación de unicidad -> ErrDuplicate;
// referencia a un padre inexistente -> ErrInvalidInput.
func (s *entityStore[T]) insert(e *T) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		s.table, s.colList(), placeholders(len(s.cols)),
	)
	_, err := s.q.Exec(context.Background(), query, s.values(e)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, constraintMessage(err))
		}
		return fmt.Errorf("insert %s: %w", s.table, err)
	}
	return nil
}

// getByID devuelve nil sin error cuando la fila no existe.
func (s *entityStore[T]) getByID(id string) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", s.colList(), s.table)
	rows, err := s.q.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.table, err)
	}
	e, err := pgx.CollectOneRow(rows, s.scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan %s: %w", s.table, err)
	}
	return e, nil
}

// list devuelve todas las filas ordenadas por fecha de creación.
func (s *entityStore[T]) list() ([]*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at", s.colList(), s.table)
	rows, err := s.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.table, err)
	}
	items, err := pgx.CollectRows(rows, s.scan)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.table, err)
	}
	return items, nil
}

// listByField filtra por igualdad de una columna (ej. provider_id, category_id).
func (s *entityStore[T]) listByField(col, value string) ([]*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY created_at",
		s.colList(), s.table, col,
	)
	rows, err := s.q.Query(context.Background(), query, value)
	if err != nil {
		return nil, fmt.Errorf("list %s by %s: %w", s.table, col, err)
	}
	items, err := pgx.CollectRows(rows, s.scan)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.table, err)
	}
	return items, nil
}

// update sobreescribe todas las columnas (salvo id) de la fila con los valores
// actuales de la entidad. Cero filas afectadas -> ErrNotFound.
func (s *entityStore[T]) update(e *T) error {
	sets := make([]string, 0, len(s.cols)-1)
	for i, col := range s.cols[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+2))
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", s.table, strings.Join(sets, ", "))
	cmd, err := s.q.Exec(context.Background(), query, s.values(e)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, constraintMessage(err))
		}
		return fmt.Errorf("update %s: %w", s.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// delete elimina por id. Filas hijas con ON DELETE RESTRICT -> ErrConflict.
func (s *entityStore[T]) delete(id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", s.table)
	cmd, err := s.q.Exec(context.Background(), query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete %s: %w", s.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
