package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"color-chooser/internal/api"
	"color-chooser/internal/config"
	"color-chooser/internal/store"
	"color-chooser/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Missing .env is fine; deployments may rely on real env vars
	_ = godotenv.Load()

	ui.PrintBanner("colorsvc", version, ui.PickTagline())

	cfg := config.Load()
	ui.SetDebug(cfg.Env.Debug)
	ui.SetLevel(ui.ParseLevel(cfg.Env.LogLevel))

	if cfg.Env.IsDevelopment() {
		ui.LogStatus("info", "Environment: "+ui.Warn("DEVELOPMENT"))
	} else {
		ui.LogStatus("info", "Environment: "+ui.Success("PRODUCTION"))
	}

	if err := cfg.Validate(); err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}

	seed, err := store.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}

	st, err := store.Open(cfg)
	if err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}

	ui.LogSection("Seed")
	ui.PrintTable(ui.ColorTable(seed))
	ui.PrintSeparator()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	metrics := api.NewMetricsServer(cfg.MetricsListen)
	metrics.Start()
	ui.LogStatus("info", "Metrics: http://localhost"+cfg.MetricsListen+"/metrics")

	go func() {
		<-ctx.Done()
		metrics.Shutdown(context.Background())
	}()

	srv := api.NewServer(cfg, st, seed)
	ui.PrintFooter("Press Ctrl+C to stop")
	if err := srv.Start(ctx); err != nil {
		ui.LogStatus("error", "Server failed: "+err.Error())
		log.Fatal(err)
	}
}
