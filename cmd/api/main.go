package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/giftworks/holiday-shop-backend/api/routes"
	"github.com/giftworks/holiday-shop-backend/internal/catalog"
	"github.com/giftworks/holiday-shop-backend/internal/composer"
	"github.com/giftworks/holiday-shop-backend/internal/orders"
	"github.com/giftworks/holiday-shop-backend/internal/reporting"
	"github.com/giftworks/holiday-shop-backend/pkg/config"
	"github.com/giftworks/holiday-shop-backend/pkg/db"
	"github.com/giftworks/holiday-shop-backend/pkg/enums"
	"github.com/giftworks/holiday-shop-backend/pkg/logger"
	"github.com/giftworks/holiday-shop-backend/pkg/migrate"
	"github.com/giftworks/holiday-shop-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	catalogRepo := catalog.NewRepository(dbClient.DB())
	ordersRepo := orders.NewRepository(dbClient.DB())

	allocator := orders.NewNumberAllocator(
		enums.NumberPolicy(cfg.Storefront.NumberPolicy),
		cfg.Storefront.RandomPrefix,
		cfg.Storefront.SequentialPrefix,
	)

	orderService, err := orders.NewService(orders.ServiceParams{
		Repo:           ordersRepo,
		Catalog:        catalogRepo,
		Tx:             dbClient,
		Allocator:      allocator,
		Logger:         logg,
		DefaultCountry: cfg.Storefront.DefaultCountry,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	snapshots, err := composer.NewRedisStore(redisClient, cfg.Storefront.WizardTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create wizard snapshot store", err)
		os.Exit(1)
	}

	wizardService, err := composer.NewService(composer.ServiceParams{
		Store:        snapshots,
		Catalog:      catalogRepo,
		Orders:       orderService,
		EmailAllowed: cfg.Storefront.EmailAllowed,
		Logger:       logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wizard service", err)
		os.Exit(1)
	}

	reportingService, err := reporting.NewService(ordersRepo, catalogRepo, cfg.Storefront.ExportBrandSlug)
	if err != nil {
		logg.Error(context.Background(), "failed to create reporting service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg, dbClient, redisClient,
			catalogRepo, orderService, wizardService, reportingService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
