package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/storehouse-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PositionUC  *usecase.PositionUseCase
	MarkupUC    *usecase.MarkupUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProviderUC  *usecase.ProviderUseCase
	ManagerUC   *usecase.ProviderManagerUseCase
	CategoryUC  *usecase.CategoryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Positions. Las rutas fijas (bulk, markup-percent, delete-bulk) van antes
	// que /:id para que fiber no las capture como parámetro.
	positions := api.Group("/positions")
	positionHandler := NewPositionHandler(deps.PositionUC)
	markupHandler := NewMarkupHandler(deps.MarkupUC)
	positions.Get("/", positionHandler.List)
	positions.Post("/", positionHandler.Create)
	positions.Post("/bulk", positionHandler.CreateBulk)
	positions.Patch("/bulk", positionHandler.UpdateBulk)
	positions.Post("/delete-bulk", positionHandler.DeleteBulk)
	positions.Patch("/markup-percent", markupHandler.ApplyPercent)
	positions.Get("/:id", positionHandler.GetByID)
	positions.Patch("/:id", positionHandler.Update)
	positions.Delete("/:id", positionHandler.Delete)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Get("/:id/positions", warehouseHandler.Positions)
	warehouses.Patch("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Providers
	providers := api.Group("/providers")
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Get("/", providerHandler.List)
	providers.Post("/", providerHandler.Create)
	providers.Post("/with-manager", providerHandler.CreateWithManager)
	providers.Get("/:id", providerHandler.GetByID)
	providers.Patch("/:id", providerHandler.Update)
	providers.Delete("/:id", providerHandler.Delete)

	// Provider managers
	managers := api.Group("/provider-managers")
	managerHandler := NewProviderManagerHandler(deps.ManagerUC)
	managers.Get("/", managerHandler.List)
	managers.Post("/", managerHandler.Create)
	managers.Get("/:id", managerHandler.GetByID)
	managers.Patch("/:id", managerHandler.Update)
	managers.Delete("/:id", managerHandler.Delete)

	// Categories y subcategorías
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Patch("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Get("/:id/sub-categories", categoryHandler.ListSubCategories)
	categories.Post("/:id/sub-categories", categoryHandler.CreateSubCategory)

	subCategories := api.Group("/sub-categories")
	subCategories.Patch("/:id", categoryHandler.UpdateSubCategory)
	subCategories.Delete("/:id", categoryHandler.DeleteSubCategory)
}
