package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"catalogproxy/internal/config"
	"catalogproxy/internal/http/handlers"
	applog "catalogproxy/internal/log"
	"catalogproxy/internal/metrics"
	"catalogproxy/internal/repos"
	"catalogproxy/internal/upstream"
)

func main() {
	cfg := config.Load()

	if err := applog.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
	}

	store, err := repos.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if cfg.SeedOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := repos.Seed(ctx, store); err != nil {
			log.Fatalf("seed: %v", err)
		}
		cancel()
		log.Printf("[seed] store reset with demo brands and products")
	}

	src := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamElectronicsPath, cfg.UpstreamBrandsPath, cfg.UpstreamTimeout)

	app := handlers.NewApp()

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(metrics.Middleware())

	deps := handlers.NewDeps(store, src)
	handlers.Register(app, deps)

	log.Fatal(app.Listen(":" + cfg.Port))
}
