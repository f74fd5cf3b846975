// Package app wires the dashboard core together: configuration, logger,
// token store, commerce API client, and the view services.
package app

import (
	"context"
	"log/slog"

	"github.com/shopview/dashboard/internal/api"
	"github.com/shopview/dashboard/internal/config"
	"github.com/shopview/dashboard/internal/service"
	"github.com/shopview/dashboard/pkg/httpclient"
)

// App holds the wired dashboard components. The presentation layer reads
// snapshots and invokes the services' operations in response to user events.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Tokens *api.MemoryTokenStore
	API    *api.Client

	Wishlist      *service.WishlistService
	Reviews       *service.ReviewService
	Cart          *service.CartService
	Notifications *service.NotificationService
	Account       *service.AccountService
	Storefront    *service.Storefront
}

// New creates the application with all dependencies wired. onAdded receives
// the display name of a product after a confirmed add-to-cart (for toast
// display); it may be nil.
func New(cfg *config.Config, log *slog.Logger, onAdded func(name string)) *App {
	tokens := &api.MemoryTokenStore{}
	if cfg.APIToken != "" {
		tokens.Set(cfg.APIToken)
	}

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.HTTPTimeout
	httpCfg.MaxRetries = cfg.HTTPMaxRetries
	breaker := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpCfg),
		httpclient.DefaultCircuitBreakerConfig("commerce-api"),
		log,
	)

	client := api.New(cfg.APIBaseURL, breaker, tokens, log)

	wishlist := service.NewWishlistService(client, log)
	reviews := service.NewReviewService(client, log)
	notifications := service.NewNotificationService(client, log)
	account := service.NewAccountService(client, log)
	storefront := service.NewStorefront(client, wishlist, reviews, log)

	cart := service.NewCartService(client, log, onAdded, func() {
		storefront.RefreshCartCount(context.Background())
	})

	return &App{
		Config:        cfg,
		Logger:        log,
		Tokens:        tokens,
		API:           client,
		Wishlist:      wishlist,
		Reviews:       reviews,
		Cart:          cart,
		Notifications: notifications,
		Account:       account,
		Storefront:    storefront,
	}
}
