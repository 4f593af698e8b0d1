package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kedare/basket/cmd"
	"github.com/kedare/basket/internal/logger"
)

func main() {
	// Initialize pterm to send all diagnostic output to stderr
	// This keeps stdout clean for the theme JSON output
	logger.InitPterm()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
