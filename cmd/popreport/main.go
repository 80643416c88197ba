package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"worldpop/internal/cli"
	"worldpop/internal/platform/config"
	"worldpop/internal/platform/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Log.Level = "warn"
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(cfg, log).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "popreport:", err)
		stop()
		os.Exit(1)
	}
}
