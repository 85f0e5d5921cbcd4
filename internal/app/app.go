package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dsentered/lasatastore/internal/config"
	httpdelivery "github.com/dsentered/lasatastore/internal/delivery/http"
)

type App struct {
	f   *fiber.App
	cfg config.Config
}

func New(cfg config.Config, pool *pgxpool.Pool, log *zap.Logger) *App {
	f := fiber.New(fiber.Config{
		AppName: "lasatastore",
	})

	f.Use(recover.New())
	f.Use(logger.New())

	if cfg.MetricsEnabled {
		f.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpdelivery.RegisterRoutes(f, cfg, pool, log)

	return &App{f: f, cfg: cfg}
}

func (a *App) Run() error {
	return a.f.Listen(":" + a.cfg.Port)
}

func (a *App) Shutdown() error {
	return a.f.Shutdown()
}
