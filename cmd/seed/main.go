// cmd/seed/main.go
//
// Seeds the demo catalog and accounts into the configured stores (useful for
// STORE=postgres, where the data outlives the process).
package main

import (
	"context"
	"log"

	"storefront/internal/infra/config"
	"storefront/internal/platform/di"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	container, err := di.New(ctx, cfg)
	if err != nil {
		log.Fatalf("[seed] FATAL: container init failed: %v", err)
	}
	defer container.Close()

	if err := container.Seed(ctx); err != nil {
		log.Fatalf("[seed] FATAL: %v", err)
	}
	log.Printf("[seed] done (store=%s cartStore=%s)", cfg.Store, cfg.CartStore)
}
