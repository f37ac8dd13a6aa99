package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/storehouse-api/internal/application/usecase"
	"github.com/tu-usuario/storehouse-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/storehouse-api/internal/interfaces/http"
	"github.com/tu-usuario/storehouse-api/pkg/config"
	"github.com/tu-usuario/storehouse-api/pkg/logger"
	"github.com/tu-usuario/storehouse-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	positionRepo := postgres.NewPositionRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	managerRepo := postgres.NewProviderManagerRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subCategoryRepo := postgres.NewSubCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	positionUC := usecase.NewPositionUseCase(positionRepo, log)
	markupUC := usecase.NewMarkupUseCase(positionRepo, log)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, positionRepo)
	providerUC := usecase.NewProviderUseCase(providerRepo, txRunner)
	managerUC := usecase.NewProviderManagerUseCase(managerRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, subCategoryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Storehouse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandlerFunc(metrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		PositionUC:  positionUC,
		MarkupUC:    markupUC,
		WarehouseUC: warehouseUC,
		ProviderUC:  providerUC,
		ManagerUC:   managerUC,
		CategoryUC:  categoryUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
