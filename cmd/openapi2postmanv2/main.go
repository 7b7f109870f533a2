// Package main provides the entry point for the openapi2postmanv2 CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/GabrielNunesIT/go-libs/logger"

	"github.com/stueynz/openapi-to-postman/internal/cli"
	"github.com/stueynz/openapi-to-postman/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Diagnostics go to stderr so stdout carries only the collection.
	log := logger.NewConsoleLogger(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("Error: failed to load configuration: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(log, *cfg, version)
	if err := app.Execute(ctx); err != nil {
		log.Errorf("Error: %v", err)
		stop()
		os.Exit(1)
	}
}
