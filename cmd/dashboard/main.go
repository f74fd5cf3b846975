// Command dashboard is a development harness for the dashboard core: it
// loads the configuration, performs an initial storefront load against the
// commerce API, and prints the resulting view snapshot as JSON.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopview/dashboard/internal/app"
	"github.com/shopview/dashboard/internal/config"
	"github.com/shopview/dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New("dashboard", cfg.LogLevel)
	log.Info("starting dashboard",
		slog.String("environment", cfg.Environment),
		slog.String("api_url", cfg.APIBaseURL),
	)

	application := app.New(cfg, log, func(name string) {
		log.Info("added to cart", slog.String("product", name))
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Storefront.Load(ctx); err != nil {
		log.Error("storefront load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if application.API.Authenticated() {
		if err := application.Notifications.Refresh(ctx); err != nil {
			log.Warn("notification refresh failed", slog.String("error", err.Error()))
		}
	}

	snapshot := application.Storefront.Snapshot()
	out := map[string]any{
		"products":          len(snapshot.Products),
		"categories":        snapshot.Categories,
		"filtered_products": snapshot.FilteredProducts,
		"wishlisted_ids":    snapshot.WishlistedIDs,
		"review_stats":      snapshot.ReviewStats,
		"cart_count":        snapshot.CartCount,
		"order_count":       snapshot.OrderCount,
		"unread_count":      application.Notifications.UnreadCount(),
		"state":             snapshot.State.String(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error("encode snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
