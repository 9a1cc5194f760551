// Command server runs the Interview Questions HTTP API.
//
// Configuration comes from the YAML file named by CONFIG_PATH (default
// config.yaml when present) and environment variables.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/priteshGolakiya/Interview-Questions/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
