package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/storehouse-api/internal/application/dto"
	"github.com/tu-usuario/storehouse-api/internal/application/usecase"
	"github.com/tu-usuario/storehouse-api/internal/domain"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
)

func seedPosition(repo *fakePositionRepo, id, category, warehouseID, markup string) {
	repo.items[id] = &entity.Position{
		ID:          id,
		Category:    category,
		SubCategory: "General",
		WarehouseID: warehouseID,
		Markup:      decimal.RequireFromString(markup),
	}
}

func TestMarkupUseCase_ApplyPercent_Exitoso(t *testing.T) {
	repo := newFakePositionRepo()
	seedPosition(repo, "p-1", "Filtros", "w-1", "1.5")
	seedPosition(repo, "p-2", "Filtros", "w-2", "2")
	seedPosition(repo, "p-3", "Aceites", "w-1", "1.2")
	uc := usecase.NewMarkupUseCase(repo, testLogger())

	cat := "Filtros"
	out, err := uc.ApplyPercent(context.Background(), dto.MarkupUpdateRequest{
		Percent: decimal.NewFromInt(10),
		Filter:  dto.MarkupFilter{Category: &cat},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Updated)

	// El factor enviado al repositorio es 1 + 10/100 y el markup se multiplica.
	require.Len(t, repo.MarkupCalls, 1)
	assert.True(t, decimal.RequireFromString("1.1").Equal(repo.MarkupCalls[0].Factor))
	assert.True(t, decimal.RequireFromString("1.65").Equal(repo.items["p-1"].Markup))
	assert.True(t, decimal.RequireFromString("1.2").Equal(repo.items["p-3"].Markup),
		"las posiciones fuera del filtro no se tocan")
}

func TestMarkupUseCase_ApplyPercent_RechazaFactorNoPositivo(t *testing.T) {
	repo := newFakePositionRepo()
	seedPosition(repo, "p-1", "Filtros", "w-1", "1.5")
	uc := usecase.NewMarkupUseCase(repo, testLogger())

	cat := "Filtros"
	_, err := uc.ApplyPercent(context.Background(), dto.MarkupUpdateRequest{
		Percent: decimal.NewFromInt(-100),
		Filter:  dto.MarkupFilter{Category: &cat},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidMarkup)
	assert.Empty(t, repo.MarkupCalls, "el rechazo debe ocurrir antes de tocar el almacenamiento")
	assert.True(t, decimal.RequireFromString("1.5").Equal(repo.items["p-1"].Markup))
}

func TestMarkupUseCase_ApplyPercent_RechazaFueraDeRango(t *testing.T) {
	repo := newFakePositionRepo()
	uc := usecase.NewMarkupUseCase(repo, testLogger())

	cat := "Filtros"
	// 501% produce un factor positivo válido pero excede el tope de negocio.
	_, err := uc.ApplyPercent(context.Background(), dto.MarkupUpdateRequest{
		Percent: decimal.NewFromInt(501),
		Filter:  dto.MarkupFilter{Category: &cat},
	})

	assert.ErrorIs(t, err, domain.ErrPercentOutOfRange)
	assert.Empty(t, repo.MarkupCalls)
}

func TestMarkupUseCase_ApplyPercent_RechazaFiltroVacio(t *testing.T) {
	repo := newFakePositionRepo()
	uc := usecase.NewMarkupUseCase(repo, testLogger())

	_, err := uc.ApplyPercent(context.Background(), dto.MarkupUpdateRequest{
		Percent: decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, domain.ErrEmptyFilter)
	assert.Empty(t, repo.MarkupCalls)
}

func TestMarkupUseCase_ApplyPercent_FiltroSinCoincidencias(t *testing.T) {
	repo := newFakePositionRepo()
	seedPosition(repo, "p-1", "Filtros", "w-1", "1.5")
	uc := usecase.NewMarkupUseCase(repo, testLogger())

	cat := "NoExiste"
	out, err := uc.ApplyPercent(context.Background(), dto.MarkupUpdateRequest{
		Percent: decimal.NewFromInt(10),
		Filter:  dto.MarkupFilter{Category: &cat},
	})

	// Cero coincidencias es un resultado válido, no un error.
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Updated)
}
