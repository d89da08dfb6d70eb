// @title						Timebox API
// @version					1.0
// @description				Ciclo de vida de timeboxes, publicación de roles y compensación.
// @BasePath					/
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/timebox-api/docs"
	"github.com/jhoicas/timebox-api/internal/application/finance"
	"github.com/jhoicas/timebox-api/internal/application/lifecycle"
	"github.com/jhoicas/timebox-api/internal/application/publication"
	"github.com/jhoicas/timebox-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/timebox-api/internal/infrastructure/pdf"
	"github.com/jhoicas/timebox-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/timebox-api/internal/interfaces/http"
	"github.com/jhoicas/timebox-api/pkg/config"
	"github.com/jhoicas/timebox-api/pkg/keylock"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, closeStorage, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeStorage()

	// Un único juego de locks por timebox compartido entre servicios.
	locks := keylock.New()

	phaseStore := lifecycle.NewPhaseStore(repos.Phases)
	engine := lifecycle.NewProgressionEngine(repos.Timeboxes, repos.Phases, log)
	emitter := finance.NewAdvanceEmitter(repos.PaymentOrders, repos.Payments, log).
		WithDefaultCurrency(cfg.Finance.DefaultCurrency)
	workflow := publication.NewWorkflow(
		repos.Timeboxes, repos.Offers, repos.Postulations,
		phaseStore, engine, emitter, locks, log,
	)
	phaseSvc := lifecycle.NewPhaseService(repos.Timeboxes, phaseStore, engine, workflow, locks, log)
	autoPublisher := publication.NewAutoPublisher(
		repos.Timeboxes, repos.AutoPublications, repos.RoleSalaries,
		phaseStore, cfg.Finance.DefaultCurrency, log,
	)
	orderSvc := finance.NewOrderService(
		repos.PaymentOrders, repos.Payments,
		infrapdf.NewReceiptRenderer(cfg.App.Name),
		cfg.Finance.DefaultCurrency, log,
	)
	timeboxUC := usecase.NewTimeboxUseCase(repos.Timeboxes, repos.Tx, locks, log)
	roleUC := usecase.NewRoleUseCase(repos.RoleSalaries, cfg.Finance.DefaultCurrency, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Timebox API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TimeboxUC:   timeboxUC,
		Roles:       roleUC,
		Phases:      phaseSvc,
		Workflow:    workflow,
		AutoPublish: autoPublisher,
		Orders:      orderSvc,
		JWTSecret:   cfg.JWT.Secret,
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
