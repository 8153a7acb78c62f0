package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/parasearch/internal/buildinfo"
	"github.com/dmitrijs2005/parasearch/internal/client/cli"
	"github.com/dmitrijs2005/parasearch/internal/client/config"
	"github.com/dmitrijs2005/parasearch/internal/filex"
	"github.com/dmitrijs2005/parasearch/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logPath, err := filex.EnsureParentDir(cfg.LogFile)
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	logger, closer, err := logging.NewFileLogger(logPath, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer closer.Close()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		log.Printf("%v", err)
		return
	}
	defer app.Close()

	logger.Info(ctx, "client started", "api", cfg.APIBaseURL, "ephemeral", cfg.Ephemeral)
	app.Run(ctx)
	logger.Info(ctx, "client stopped")
}
