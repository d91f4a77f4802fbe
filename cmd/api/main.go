// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/adapters/in/http/middleware"
	"storefront/internal/infra/config"
	"storefront/internal/platform/di"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	container, err := di.New(ctx, cfg)
	if err != nil {
		log.Fatalf("[boot] FATAL: container init failed: %v", err)
	}
	defer container.Close()

	if cfg.SeedDemoData {
		if err := container.Seed(ctx); err != nil {
			log.Fatalf("[boot] FATAL: seeding failed: %v", err)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.CORS(container.Handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("[boot] listening on :%s (store=%s cartStore=%s)", cfg.Port, cfg.Store, cfg.CartStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[boot] FATAL: server error: %v", err)
		}
	}()

	// graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Printf("[boot] shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[boot] WARN: shutdown: %v", err)
	}
	log.Printf("[boot] bye")
}
