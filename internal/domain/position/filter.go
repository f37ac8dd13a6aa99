// Package position contiene las reglas de negocio puras de las posiciones:
// el filtro conjuntivo para mutaciones masivas y el cálculo del factor de markup.
package position

import "github.com/tu-usuario/storehouse-api/internal/domain"

// Filter filtro conjuntivo (AND) sobre posiciones. Los campos nil/vacíos no
// imponen restricción. IDs aplica semántica de pertenencia (match de cualquiera).
type Filter struct {
	Category    *string
	SubCategory *string
	WarehouseID *string
	IDs         []string
}

// IsEmpty indica si no hay ningún campo presente.
func (f Filter) IsEmpty() bool {
	return f.Category == nil && f.SubCategory == nil && f.WarehouseID == nil && len(f.IDs) == 0
}

// Validate rechaza el filtro vacío: una mutación masiva sin filtro nunca se
// permite, para evitar cambios accidentales de tabla completa.
func (f Filter) Validate() error {
	if f.IsEmpty() {
		return domain.ErrEmptyFilter
	}
	return nil
}
