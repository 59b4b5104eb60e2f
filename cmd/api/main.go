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

	"github.com/jhoicas/bin-inventory-api/docs"
	appanalytics "github.com/jhoicas/bin-inventory-api/internal/application/analytics"
	"github.com/jhoicas/bin-inventory-api/internal/application/inventory"
	"github.com/jhoicas/bin-inventory-api/internal/application/labels"
	"github.com/jhoicas/bin-inventory-api/internal/application/scan"
	"github.com/jhoicas/bin-inventory-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/bin-inventory-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bin-inventory-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/bin-inventory-api/internal/interfaces/http"
	"github.com/jhoicas/bin-inventory-api/pkg/config"
	"github.com/jhoicas/bin-inventory-api/pkg/logger"
)

// @title                       Bin Inventory API
// @version                     1.0
// @description                 Motor de inventario por bins: clasificación de llenado, escaneo IN/OUT y etiquetas QR.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token JWT>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	materialUC := usecase.NewMaterialUseCase(materialRepo, log.Component("materials"))
	statusUC := inventory.NewStatusUseCase(materialRepo, movementRepo)
	commitUC := inventory.NewScanCommitUseCase(txRunner, log.Component("scan-commit"))
	labelUC := labels.NewUseCase(materialRepo, infrapdf.NewMarotoPDFGenerator())
	dashboardUC := appanalytics.NewDashboardUseCase(postgres.NewAnalyticsRepository(pool))

	// Sesiones de escaneo en memoria; el barrido descarta las inactivas.
	sessions := scan.NewSessionStore(statusUC, cfg.Scan.SessionTTL, log.Component("scan-sessions"),
		scan.WithConfirmation(cfg.Scan.RequireConfirmation),
		scan.WithLookupTimeout(cfg.Scan.LookupTimeout),
		scan.WithLogger(log.Component("scan-session")),
	)
	go sessions.Run(ctx, time.Minute)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Title = cfg.App.Name
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC: materialUC,
		StatusUC:   statusUC,
		CommitUC:   commitUC,
		LabelUC:    labelUC,
		Dashboard:  dashboardUC,
		Sessions:   sessions,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		Logger:     log.Component("http"),
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
