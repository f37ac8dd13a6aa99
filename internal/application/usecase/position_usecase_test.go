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
)

func validCreateRequest(name string) dto.CreatePositionRequest {
	return dto.CreatePositionRequest{
		Category:      "Filtros",
		SubCategory:   "Aceite",
		Name:          name,
		Description:   "filtro de aceite",
		PurchasePrice: decimal.RequireFromString("10.00"),
		Markup:        decimal.RequireFromString("1.5"),
		WarehouseID:   "w-1",
	}
}

func TestPositionUseCase_Create_DerivaSalePrice(t *testing.T) {
	repo := newFakePositionRepo()
	uc := usecase.NewPositionUseCase(repo, testLogger())

	out, err := uc.Create(validCreateRequest("Filtro X"))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.True(t, decimal.RequireFromString("15.00").Equal(out.SalePrice),
		"sale_price = purchase_price × markup redondeado, obtenido %s", out.SalePrice)
}

func TestPositionUseCase_Create_RespetaSalePriceExplicito(t *testing.T) {
	repo := newFakePositionRepo()
	uc := usecase.NewPositionUseCase(repo, testLogger())

	in := validCreateRequest("Filtro X")
	sale := decimal.RequireFromString("19.99")
	in.SalePrice = &sale

	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.True(t, sale.Equal(out.SalePrice))
}

func TestPositionUseCase_Create_RechazaMarkupNoPositivo(t *testing.T) {
	repo := newFakePositionRepo()
	uc := usecase.NewPositionUseCase(repo, testLogger())

	in := validCreateRequest("Filtro X")
	in.Markup = decimal.Zero

	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.items)
}

func TestPositionUseCase_GetByID_NilCuandoNoExiste(t *testing.T) {
	repo := newFakePositionRepo()
	uc := usecase.NewPositionUseCase(repo, testLogger())

	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestPositionUseCase_CreateMany_SeparaExitosDeFallos(t *testing.T) {
	repo := newFakePositionRepo()
	repo.failInsertOf["Filtro B"] = "duplicate key value violates unique constraint"
	uc := usecase.NewPositionUseCase(repo, testLogger())

	out, err := uc.CreateMany(context.Background(), []dto.CreatePositionRequest{
		validCreateRequest("Filtro A"),
		validCreateRequest("Filtro B"),
		validCreateRequest("Filtro C"),
	})

	require.NoError(t, err)
	require.Len(t, out.OK, 2)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, "Filtro B", out.Failed[0].Item.Name)
	assert.Contains(t, out.Failed[0].Error, "unique constraint")
}

func TestPositionUseCase_CreateMany_ValidacionLocalNoLlegaAlRepo(t *testing.T) {
	repo := newFakePositionRepo()
	uc := usecase.NewPositionUseCase(repo, testLogger())

	bad := validCreateRequest("Filtro inválido")
	bad.PurchasePrice = decimal.RequireFromString("-1")

	out, err := uc.CreateMany(context.Background(), []dto.CreatePositionRequest{
		validCreateRequest("Filtro A"),
		bad,
	})

	require.NoError(t, err)
	assert.Len(t, out.OK, 1)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, "Filtro inválido", out.Failed[0].Item.Name)
	assert.Len(t, repo.items, 1, "el ítem inválido nunca debe llegar al almacenamiento")
}

func TestPositionUseCase_CreateMany_FalloDePreparacion(t *testing.T) {
	repo := newFakePositionRepo()
	repo.insertManyErr = domain.ErrStorageUnavailable
	uc := usecase.NewPositionUseCase(repo, testLogger())

	_, err := uc.CreateMany(context.Background(), []dto.CreatePositionRequest{
		validCreateRequest("Filtro A"),
	})

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestPositionUseCase_UpdateMany_FallosComoDatos(t *testing.T) {
	repo := newFakePositionRepo()
	seedPosition(repo, "p-1", "Filtros", "w-1", "1.5")
	uc := usecase.NewPositionUseCase(repo, testLogger())

	newName := "Filtro renombrado"
	out := uc.UpdateMany(context.Background(), map[string]dto.UpdatePositionRequest{
		"p-1":       {Name: &newName},
		"no-existe": {Name: &newName},
	})

	require.Len(t, out.Updated, 1)
	assert.Equal(t, "Filtro renombrado", out.Updated[0].Name)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, "no-existe", out.Failed[0].ID)
	assert.Equal(t, "NOT_FOUND", out.Failed[0].Error)
}

func TestPositionUseCase_DeleteMany_RespuestaNuncaNil(t *testing.T) {
	repo := newFakePositionRepo()
	seedPosition(repo, "p-1", "Filtros", "w-1", "1.5")
	uc := usecase.NewPositionUseCase(repo, testLogger())

	out := uc.DeleteMany(context.Background(), []string{"p-1", "no-existe"})

	assert.Equal(t, []string{"p-1"}, out.DeletedIDs)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, "NOT_FOUND", out.Failed[0].Error)

	// Lote donde todo falla: deleted_ids serializa como lista vacía, no null.
	out = uc.DeleteMany(context.Background(), []string{"tampoco"})
	assert.NotNil(t, out.DeletedIDs)
	assert.Empty(t, out.DeletedIDs)
}

func TestPositionUseCase_Search_SinFiltrosDevuelveTodo(t *testing.T) {
	repo := newFakePositionRepo()
	seedPosition(repo, "p-1", "Filtros", "w-1", "1.5")
	seedPosition(repo, "p-2", "Aceites", "w-2", "1.2")
	uc := usecase.NewPositionUseCase(repo, testLogger())

	all, err := uc.Search(nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	w1 := "w-1"
	some, err := uc.Search(&w1, nil, nil)
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, "p-1", some[0].ID)
}
