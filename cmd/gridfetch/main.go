// Command gridfetch maintains the local dataset mirror and the
// describe service credential from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/RoroDev2023/RizzTheGrid/internal/config"
	"github.com/RoroDev2023/RizzTheGrid/internal/fetch"
	applog "github.com/RoroDev2023/RizzTheGrid/internal/log"
)

func usage() {
	fmt.Println("gridfetch maintains the RizzTheGrid dataset mirror")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gridfetch [flags] sync             Download zones, metrics, manifest and photos")
	fmt.Println("  gridfetch [flags] set-key <key>    Store the describe service key in the system keyring")
	fmt.Println("  gridfetch [flags] clear-key        Remove the stored describe service key")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

func main() {
	_ = godotenv.Load(".env")

	defaultPath, _ := config.Path()
	cfgPath := flag.String("config", defaultPath, "path to the config file")
	dataDir := flag.String("data", "", "override the dataset directory")
	flag.Usage = usage
	flag.Parse()

	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		l.Error("config load failed", slog.String("path", *cfgPath), slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "sync":
		runSync(cfg, l)
	case "set-key":
		if len(args) < 2 {
			fmt.Println("set-key requires the key value")
			usage()
			os.Exit(2)
		}
		if err := config.SetDescribeKey(args[1]); err != nil {
			l.Error("keyring store failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println("Describe key stored.")
	case "clear-key":
		if err := config.ClearDescribeKey(); err != nil {
			l.Error("keyring clear failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println("Describe key removed.")
	default:
		usage()
		os.Exit(2)
	}
}

func runSync(cfg config.Config, l *slog.Logger) {
	// Photo downloads can take a while on a fresh mirror.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	if err := fetch.NewClient(cfg).SyncAll(ctx); err != nil {
		l.Error("sync failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Dataset synced to %s in %s\n", cfg.DataDir, time.Since(start).Round(time.Millisecond))
}
