package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"color-chooser/internal/config"
	"color-chooser/internal/router"
	"color-chooser/internal/ui"
	"color-chooser/internal/web"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	ui.PrintBanner("colorweb", version, ui.PickTagline())

	cfg := config.Load()
	ui.SetDebug(cfg.Env.Debug)
	ui.SetLevel(ui.ParseLevel(cfg.Env.LogLevel))

	if err := cfg.ValidateRouter(); err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}

	rt, err := router.New(cfg.ProxyAPIURL, cfg.APIPrefix, web.NewHandler(cfg.APIPrefix))
	if err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}

	ui.LogGroup("Routes")
	ui.LogGroupItem(cfg.APIPrefix+"/*", rt.Target())
	ui.LogGroupItem("/*", "color chooser page")
	ui.LogGroupItem("/metrics", "prometheus")
	ui.LogGroupEnd()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := router.NewServer(cfg.WebListen, rt)
	if err := srv.Start(ctx); err != nil {
		ui.LogStatus("error", "Server failed: "+err.Error())
		log.Fatal(err)
	}
}
