package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/storehouse-api/internal/domain"
	"github.com/tu-usuario/storehouse-api/internal/domain/position"
)

func strPtr(s string) *string { return &s }

func TestFilter_Validate_RechazaVacio(t *testing.T) {
	// Sin filtro no hay mutación masiva: protege contra cambios de tabla completa.
	err := position.Filter{}.Validate()
	assert.ErrorIs(t, err, domain.ErrEmptyFilter)
}

func TestFilter_Validate_UnCampoBasta(t *testing.T) {
	cases := []struct {
		name   string
		filter position.Filter
	}{
		{"solo categoría", position.Filter{Category: strPtr("Filtros")}},
		{"solo subcategoría", position.Filter{SubCategory: strPtr("Aceite")}},
		{"solo bodega", position.Filter{WarehouseID: strPtr("w-1")}},
		{"solo ids", position.Filter{IDs: []string{"p-1"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, tc.filter.Validate())
			assert.False(t, tc.filter.IsEmpty())
		})
	}
}

func TestFilter_IsEmpty_SliceVacioNoCuenta(t *testing.T) {
	// Un slice de IDs declarado pero vacío equivale a ausente.
	assert.True(t, position.Filter{IDs: []string{}}.IsEmpty())
}
