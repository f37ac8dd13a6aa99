package usecase_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/storehouse-api/internal/domain/entity"
	"github.com/tu-usuario/storehouse-api/internal/domain/position"
	"github.com/tu-usuario/storehouse-api/internal/domain/repository"
	"github.com/tu-usuario/storehouse-api/pkg/logger"
)

// testLogger logger silencioso para los tests de casos de uso.
func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// fakePositionRepo doble de prueba en memoria del puerto PositionRepository.
// Los campos *Err/*Fail permiten inyectar fallos por ruta; MarkupCalls registra
// cada invocación al recálculo para verificar que los rechazos ocurren antes
// de tocar el almacenamiento.
type fakePositionRepo struct {
	items map[string]*entity.Position

	insertErr     error
	insertManyErr error
	markupErr     error
	failInsertOf  map[string]string // name → razón de fallo por ítem
	failUpdateOf  map[string]string // id → razón de fallo por ítem

	MarkupCalls []markupCall
}

type markupCall struct {
	Factor decimal.Decimal
	Filter position.Filter
}

func newFakePositionRepo() *fakePositionRepo {
	return &fakePositionRepo{
		items:        make(map[string]*entity.Position),
		failInsertOf: make(map[string]string),
		failUpdateOf: make(map[string]string),
	}
}

func (f *fakePositionRepo) Insert(p *entity.Position) (*entity.Position, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.items[p.ID] = p
	return p, nil
}

func (f *fakePositionRepo) GetByID(id string) (*entity.Position, error) {
	return f.items[id], nil
}

func (f *fakePositionRepo) GetAll() ([]*entity.Position, error) {
	return f.sorted(), nil
}

func (f *fakePositionRepo) Search(warehouseID, category, subCategory *string) ([]*entity.Position, error) {
	var out []*entity.Position
	for _, p := range f.sorted() {
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

func (f *fakePositionRepo) UpdateByID(id string, patch entity.PositionPatch) (*entity.Position, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(p)
	return p, nil
}

func (f *fakePositionRepo) DeleteByID(id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakePositionRepo) InsertMany(_ context.Context, items []*entity.Position) ([]*entity.Position, []repository.InsertFailure, error) {
	if f.insertManyErr != nil {
		return nil, nil, f.insertManyErr
	}
	var ok []*entity.Position
	var failed []repository.InsertFailure
	for _, item := range items {
		if reason, bad := f.failInsertOf[item.Name]; bad {
			failed = append(failed, repository.InsertFailure{Item: item, Reason: reason})
			continue
		}
		f.items[item.ID] = item
		ok = append(ok, item)
	}
	return ok, failed, nil
}

func (f *fakePositionRepo) UpdateManyByID(_ context.Context, patches map[string]entity.PositionPatch) ([]*entity.Position, []repository.ItemFailure) {
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
		if reason, bad := f.failUpdateOf[id]; bad {
			failed = append(failed, repository.ItemFailure{ID: id, Reason: reason})
			continue
		}
		patch := patches[id]
		patch.Apply(p)
		updated = append(updated, p)
	}
	return updated, failed
}

func (f *fakePositionRepo) DeleteMany(_ context.Context, ids []string) ([]string, []repository.ItemFailure) {
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

func (f *fakePositionRepo) ApplyMarkupFactorByFilter(_ context.Context, factor decimal.Decimal, filter position.Filter) (int64, error) {
	if err := filter.Validate(); err != nil {
		return 0, err
	}
	f.MarkupCalls = append(f.MarkupCalls, markupCall{Factor: factor, Filter: filter})
	if f.markupErr != nil {
		return 0, f.markupErr
	}
	var updated int64
	for _, p := range f.items {
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.SubCategory != nil && p.SubCategory != *filter.SubCategory {
			continue
		}
		if filter.WarehouseID != nil && p.WarehouseID != *filter.WarehouseID {
			continue
		}
		if len(filter.IDs) > 0 && !contains(filter.IDs, p.ID) {
			continue
		}
		p.Markup = p.Markup.Mul(factor)
		updated++
	}
	return updated, nil
}

func (f *fakePositionRepo) sorted() []*entity.Position {
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

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
