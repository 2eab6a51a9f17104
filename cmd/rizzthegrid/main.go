// Command rizzthegrid launches the interactive grid map explorer.
package main

import (
	"flag"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/joho/godotenv"

	"github.com/RoroDev2023/RizzTheGrid/internal/config"
	applog "github.com/RoroDev2023/RizzTheGrid/internal/log"
	"github.com/RoroDev2023/RizzTheGrid/internal/vis"
)

func main() {
	_ = godotenv.Load(".env")

	defaultPath, _ := config.Path()
	cfgPath := flag.String("config", defaultPath, "path to the config file")
	dataDir := flag.String("data", "", "override the dataset directory")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		applog.Init(applog.FromEnv())
		applog.L().Error("config load failed", slog.String("path", *cfgPath), slog.Any("err", err))
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	applog.Init(applog.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	l := applog.WithComponent("main")
	l.Info("starting", slog.String("data_dir", cfg.DataDir))

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("RizzTheGrid"),
			app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
		)

		application := vis.NewApp(cfg)
		if err := application.Run(window); err != nil {
			l.Error("window closed with error", slog.Any("err", err))
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
