package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/bodega-api/internal/application/auth"
	appdoc "github.com/jhoicas/bodega-api/internal/application/document"
	"github.com/jhoicas/bodega-api/internal/application/reports"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/bodega-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bodega-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/bodega-api/internal/interfaces/http"
	"github.com/jhoicas/bodega-api/pkg/config"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	zoneRepo := postgres.NewStorageZoneRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	docRepo := postgres.NewDocumentRepository(pool)
	lineRepo := postgres.NewDocumentLineRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	zoneUC := usecase.NewZoneUseCase(zoneRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)

	sessions := appdoc.NewSessionManager(docRepo, lineRepo, productRepo, zoneRepo)
	documentUC := appdoc.NewUseCase(docRepo, lineRepo, productRepo, zoneRepo, sessions, txRunner, log)

	reportUC := reports.NewUseCase(reportRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	printUC := reports.NewPrintUseCase(documentUC, pdfGenerator)

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
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		ZoneUC:     zoneUC,
		SupplierUC: supplierUC,
		EmployeeUC: employeeUC,
		DocumentUC: documentUC,
		Sessions:   sessions,
		ReportUC:   reportUC,
		PrintUC:    printUC,
		JWTSecret:  cfg.JWT.Secret,
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
