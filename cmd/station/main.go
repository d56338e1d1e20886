package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/restaurant-pos/internal/application/cart"
	"github.com/jhoicas/restaurant-pos/internal/application/catalog"
	"github.com/jhoicas/restaurant-pos/internal/application/ordering"
	"github.com/jhoicas/restaurant-pos/internal/application/session"
	"github.com/jhoicas/restaurant-pos/internal/infrastructure/backend"
	"github.com/jhoicas/restaurant-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/restaurant-pos/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/restaurant-pos/internal/interfaces/http"
	"github.com/jhoicas/restaurant-pos/pkg/config"
	"github.com/jhoicas/restaurant-pos/pkg/logger"
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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando estación")

	// Sesión: vault en archivo + store inyectado. Store y cliente se
	// referencian mutuamente, por eso el cableado en dos pasos.
	vault := storage.NewFileVault(cfg.Session.File)
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), log)
	store := session.NewStore(client, vault, log)
	client.SetTokenSource(store)
	client.OnUnauthorized(store.Invalidate)

	carts := cart.NewRegistry(client)
	cat := catalog.NewService(client)
	bill := pdf.NewBillGenerator(cfg.App.Name)
	orderingUC := ordering.NewUseCase(client, client, carts, bill, log)

	// Rehidratar antes de servir; la señal de completitud es el canal Ready
	// del store, sin timeout artificial.
	ctx := context.Background()
	store.Rehydrate(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:  store,
		Ordering: orderingUC,
		Catalog:  cat,
		Carts:    carts,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando estación...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("estación detenida")
}
