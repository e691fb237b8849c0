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

	_ "github.com/techstore/inventario-api/docs"
	"github.com/techstore/inventario-api/internal/application/auth"
	"github.com/techstore/inventario-api/internal/application/inventory"
	infrapdf "github.com/techstore/inventario-api/internal/infrastructure/pdf"
	"github.com/techstore/inventario-api/internal/infrastructure/postgres"
	"github.com/techstore/inventario-api/internal/infrastructure/ublxml"
	httpRouter "github.com/techstore/inventario-api/internal/interfaces/http"
	"github.com/techstore/inventario-api/pkg/config"
	"github.com/techstore/inventario-api/pkg/logger"
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

	// Un fallo de base de datos no es fatal: el Store cae a modo offline con
	// datos de muestra y la API sigue sirviendo lecturas.
	var deps inventory.Deps
	if err := cfg.DB.Check(); err != nil {
		log.Warn().Err(err).Msg("configuración de base de datos inválida, arrancando offline")
		deps.ConfigErr = err
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Warn().Err(err).Msg("crear pool de PostgreSQL, arrancando offline")
			deps.ConfigErr = err
		} else {
			defer pool.Close()
			deps = inventory.Deps{
				Tx:        postgres.NewTxRunner(pool),
				Prober:    postgres.NewProber(pool),
				Products:  postgres.NewProductRepository(pool),
				Movements: postgres.NewMovementRepository(pool),
				History:   postgres.NewPriceHistoryRepository(pool),
			}
		}
	}

	store := inventory.NewStore(log, deps)
	store.Initialize(ctx)
	status := store.Status()
	log.Info().
		Str("status", status.Status).
		Str("error_type", status.ErrorType).
		Msg("inventario inicializado")

	authUC := auth.NewAuthUseCase(cfg.Admin.User, cfg.Admin.PasswordHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "TechStore Inventario API",
	}))

	httpRouter.SetupRoutes(app, httpRouter.RouterDeps{
		Store:      store,
		AuthUC:     authUC,
		PDFGen:     infrapdf.NewMarotoInvoiceGenerator("TechStore"),
		XMLBuilder: ublxml.NewBuilder(),
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
