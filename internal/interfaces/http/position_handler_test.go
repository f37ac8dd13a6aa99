package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/storehouse-api/internal/application/dto"
	"github.com/tu-usuario/storehouse-api/internal/application/usecase"
	"github.com/tu-usuario/storehouse-api/internal/domain"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/position"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/storehouse-api/internal/interfaces/http"
	"github.com/tu-usuario/storehouse-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memPositionRepo struct {
	items         map[string]*entity.Position
	insertManyErr error
}

func newMemPositionRepo() *memPositionRepo {
	return &memPositionRepo{items: make(map[string]*entity.Position)}
}

func (f *memPositionRepo) Insert(p *entity.Position) (*entity.Position, error) {
	f.items[p.ID] = p
	return p, nil
}

func (f *memPositionRepo) GetByID(id string) (*entity.Position, error) {
	return f.items[id], nil
}

func (f *memPositionRepo) GetAll() ([]*entity.Position, error) {
	return f.all(), nil
}

func (f *memPositionRepo) Search(warehouseID, category, subCategory *string) ([]*entity.Position, error) {
	out := make([]*entity.Position, 0)
	for _, p := range f.all() {
		if warehouseID != nil && p.WarehouseID != *warehouseID {
			continue
		}
		if category != nil && p.Category != *category {
			continue
		}
		if subCategory != nil && p.SubCategory != *subCategory {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *memPositionRepo) UpdateByID(id string, patch entity.PositionPatch) (*entity.Position, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(p)
	return p, nil
}

func (f *memPositionRepo) DeleteByID(id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *memPositionRepo) InsertMany(_ context.Context, items []*entity.Position) ([]*entity.Position, []repository.InsertFailure, error) {
	if f.insertManyErr != nil {
		return nil, nil, f.insertManyErr
	}
	for _, p := range items {
		f.items[p.ID] = p
	}
	return items, nil, nil
}

func (f *memPositionRepo) UpdateManyByID(_ context.Context, patches map[string]entity.PositionPatch) ([]*entity.Position, []repository.ItemFailure) {
	ids := make([]string, 0, len(patches))
	for id := range patches {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var updated []*entity.Position
	var failed []repository.ItemFailure
	for _, id := range ids {
		p, ok := f.items[id]
		if !ok {
			failed = append(failed, repository.ItemFailure{ID: id, Reason: "NOT_FOUND"})
			continue
		}
		patch := patches[id]
		patch.Apply(p)
		updated = append(updated, p)
	}
	return updated, failed
}

func (f *memPositionRepo) DeleteMany(_ context.Context, ids []string) ([]string, []repository.ItemFailure) {
	var deleted []string
	var failed []repository.ItemFailure
	for _, id := range ids {
		if _, ok := f.items[id]; !ok {
			failed = append(failed, repository.ItemFailure{ID: id, Reason: "NOT_FOUND"})
			continue
		}
		delete(f.items, id)
		deleted = append(deleted, id)
	}
	return deleted, failed
}

func (f *memPositionRepo) ApplyMarkupFactorByFilter(_ context.Context, factor decimal.Decimal, filter position.Filter) (int64, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}
	var updated int64
	for _, p := range f.items {
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.WarehouseID != nil && p.WarehouseID != *filter.WarehouseID {
			continue
		}
		p.Markup = p.Markup.Mul(factor)
		updated++
	}
	return updated, nil
}

func (f *memPositionRepo) all() []*entity.Position {
	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.Position, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.items[id])
	}
	return out
}

type memWarehouseRepo struct {
	items     map[string]*entity.Warehouse
	deleteErr error
}

func newMemWarehouseRepo() *memWarehouseRepo {
	return &memWarehouseRepo{items: make(map[string]*entity.Warehouse)}
}

func (f *memWarehouseRepo) Create(w *entity.Warehouse) error {
	f.items[w.ID] = w
	return nil
}

func (f *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.items[id], nil
}

func (f *memWarehouseRepo) List() ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(f.items))
	for _, w := range f.items {
		out = append(out, w)
	}
	return out, nil
}

func (f *memWarehouseRepo) Update(w *entity.Warehouse) error {
	f.items[w.ID] = w
	return nil
}

func (f *memWarehouseRepo) Delete(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app        *fiber.App
	positions  *memPositionRepo
	warehouses *memWarehouseRepo
}

func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	positions := newMemPositionRepo()
	warehouses := newMemWarehouseRepo()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		PositionUC:  usecase.NewPositionUseCase(positions, log),
		MarkupUC:    usecase.NewMarkupUseCase(positions, log),
		WarehouseUC: usecase.NewWarehouseUseCase(warehouses, positions),
		// Las rutas de proveedores y categorías no se ejercitan aquí.
		ProviderUC: usecase.NewProviderUseCase(nil, nil),
		ManagerUC:  usecase.NewProviderManagerUseCase(nil),
		CategoryUC: usecase.NewCategoryUseCase(nil, nil),
	})
	return &testEnv{app: app, positions: positions, warehouses: warehouses}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedHTTPPosition(env *testEnv, id, category, warehouseID string) {
	env.positions.items[id] = &entity.Position{
		ID:            id,
		Category:      category,
		SubCategory:   "General",
		Name:          "Posición " + id,
		Description:   "repuesto",
		PurchasePrice: decimal.RequireFromString("10.00"),
		SalePrice:     decimal.RequireFromString("15.00"),
		Markup:        decimal.RequireFromString("1.5"),
		WarehouseID:   warehouseID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Positions
// ──────────────────────────────────────────────────────────────────────────────

func TestPositionHandler_Create(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, fiber.MethodPost, "/api/positions", fiber.Map{
		"category":       "Filtros",
		"sub_category":   "Aceite",
		"name":           "Filtro X",
		"description":    "filtro de aceite",
		"purchase_price": "10.00",
		"markup":         "1.5",
		"warehouse_id":   "w-1",
	})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decodeBody[dto.PositionResponse](t, resp)
	assert.NotEmpty(t, out.ID)
	assert.True(t, decimal.RequireFromString("15.00").Equal(out.SalePrice),
		"sale_price ausente se deriva de purchase_price × markup")
}

func TestPositionHandler_Create_CamposRequeridos(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, fiber.MethodPost, "/api/positions", fiber.Map{
		"name": "incompleto",
	})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestPositionHandler_GetByID_NoEncontrada(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, fiber.MethodGet, "/api/positions/no-existe", nil)

	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestPositionHandler_List_FiltraPorBodega(t *testing.T) {
	env := buildTestApp(t)
	seedHTTPPosition(env, "p-1", "Filtros", "w-1")
	seedHTTPPosition(env, "p-2", "Filtros", "w-2")

	resp := doJSON(t, env.app, fiber.MethodGet, "/api/positions?warehouse_id=w-1", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeBody[[]dto.PositionResponse](t, resp)
	require.Len(t, out, 1)
	assert.Equal(t, "p-1", out[0].ID)
}

func TestPositionHandler_UpdateBulk_FallosPorItem(t *testing.T) {
	env := buildTestApp(t)
	seedHTTPPosition(env, "p-1", "Filtros", "w-1")

	resp := doJSON(t, env.app, fiber.MethodPatch, "/api/positions/bulk", fiber.Map{
		"p-1":       fiber.Map{"name": "renombrada"},
		"no-existe": fiber.Map{"name": "da igual"},
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeBody[dto.BulkUpdateResponse](t, resp)
	require.Len(t, out.Updated, 1)
	assert.Equal(t, "renombrada", out.Updated[0].Name)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, "no-existe", out.Failed[0].ID)
	assert.Equal(t, "NOT_FOUND", out.Failed[0].Error)
}

func TestPositionHandler_CreateBulk_FalloDePreparacion(t *testing.T) {
	env := buildTestApp(t)
	env.positions.insertManyErr = domain.ErrStorageUnavailable

	resp := doJSON(t, env.app, fiber.MethodPost, "/api/positions/bulk", []fiber.Map{{
		"category":       "Filtros",
		"sub_category":   "Aceite",
		"name":           "Filtro X",
		"description":    "filtro",
		"purchase_price": "10.00",
		"markup":         "1.5",
		"warehouse_id":   "w-1",
	}})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "BULK_SETUP_FAILED", out.Code)
}

func TestPositionHandler_DeleteBulk(t *testing.T) {
	env := buildTestApp(t)
	seedHTTPPosition(env, "p-1", "Filtros", "w-1")

	resp := doJSON(t, env.app, fiber.MethodPost, "/api/positions/delete-bulk", []string{"p-1", "no-existe"})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeBody[dto.BulkDeleteResponse](t, resp)
	assert.Equal(t, []string{"p-1"}, out.DeletedIDs)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, "NOT_FOUND", out.Failed[0].Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Markup
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkupHandler_ApplyPercent(t *testing.T) {
	env := buildTestApp(t)
	seedHTTPPosition(env, "p-1", "Filtros", "w-1")
	seedHTTPPosition(env, "p-2", "Aceites", "w-1")

	resp := doJSON(t, env.app, fiber.MethodPatch, "/api/positions/markup-percent", fiber.Map{
		"percent": "10",
		"filter":  fiber.Map{"category": "Filtros"},
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeBody[dto.MarkupUpdateResponse](t, resp)
	assert.Equal(t, int64(1), out.Updated)
	assert.True(t, decimal.RequireFromString("1.65").Equal(env.positions.items["p-1"].Markup))
	assert.True(t, decimal.RequireFromString("1.5").Equal(env.positions.items["p-2"].Markup))
}

func TestMarkupHandler_ApplyPercent_Errores422(t *testing.T) {
	cases := []struct {
		name string
		body fiber.Map
		code string
	}{
		{
			"filtro vacío",
			fiber.Map{"percent": "10"},
			"EMPTY_FILTER",
		},
		{
			"factor no positivo",
			fiber.Map{"percent": "-100", "filter": fiber.Map{"category": "Filtros"}},
			"INVALID_MARKUP",
		},
		{
			"fuera de rango",
			fiber.Map{"percent": "501", "filter": fiber.Map{"category": "Filtros"}},
			"PERCENT_OUT_OF_RANGE",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := buildTestApp(t)
			resp := doJSON(t, env.app, fiber.MethodPatch, "/api/positions/markup-percent", tc.body)

			require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
			out := decodeBody[dto.ErrorResponse](t, resp)
			assert.Equal(t, tc.code, out.Code)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Warehouses
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseHandler_Delete_ConflictoConPosiciones(t *testing.T) {
	env := buildTestApp(t)
	env.warehouses.items["w-1"] = &entity.Warehouse{ID: "w-1", Name: "Central"}
	env.warehouses.deleteErr = domain.ErrConflict

	resp := doJSON(t, env.app, fiber.MethodDelete, "/api/warehouses/w-1", nil)

	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "CONFLICT", out.Code)
}

func TestWarehouseHandler_Positions(t *testing.T) {
	env := buildTestApp(t)
	env.warehouses.items["w-1"] = &entity.Warehouse{ID: "w-1", Name: "Central"}
	seedHTTPPosition(env, "p-1", "Filtros", "w-1")
	seedHTTPPosition(env, "p-2", "Filtros", "w-2")

	resp := doJSON(t, env.app, fiber.MethodGet, "/api/warehouses/w-1/positions", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeBody[[]dto.PositionResponse](t, resp)
	require.Len(t, out, 1)
	assert.Equal(t, "p-1", out[0].ID)
}
