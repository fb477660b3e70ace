package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/giftworks/holiday-shop-backend/internal/catalog"
	"github.com/giftworks/holiday-shop-backend/internal/orders"
	"github.com/giftworks/holiday-shop-backend/pkg/config"
	"github.com/giftworks/holiday-shop-backend/pkg/db"
	"github.com/giftworks/holiday-shop-backend/pkg/db/models"
	"github.com/giftworks/holiday-shop-backend/pkg/enums"
	"github.com/giftworks/holiday-shop-backend/pkg/logger"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	smoke := flag.Bool("smoke", false, "place smoke-test orders after seeding the catalog")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to connect to database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	if err := seedCatalog(ctx, dbClient.DB()); err != nil {
		logg.Error(ctx, "catalog seed failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "catalog seeded")

	if *smoke {
		if err := placeSmokeOrders(ctx, cfg, logg, dbClient); err != nil {
			logg.Error(ctx, "smoke orders failed", err)
			os.Exit(1)
		}
		logg.Info(ctx, "smoke orders placed")
	}
}

// seedCatalog inserts any fixture product not already present, matching by
// name so re-runs are safe. Failures are collected so one bad row does not
// hide the rest.
func seedCatalog(ctx context.Context, gdb *gorm.DB) error {
	var errs error
	for _, product := range catalogFixture() {
		p := product
		err := gdb.WithContext(ctx).
			Where("name = ?", p.Name).
			FirstOrCreate(&p).Error
		errs = multierr.Append(errs, err)
	}
	return errs
}

func placeSmokeOrders(ctx context.Context, cfg *config.Config, logg *logger.Logger, dbClient *db.Client) error {
	catalogRepo := catalog.NewRepository(dbClient.DB())
	ordersRepo := orders.NewRepository(dbClient.DB())

	allocator := orders.NewNumberAllocator(
		enums.NumberPolicy(cfg.Storefront.NumberPolicy),
		cfg.Storefront.RandomPrefix,
		cfg.Storefront.SequentialPrefix,
	)
	svc, err := orders.NewService(orders.ServiceParams{
		Repo:           ordersRepo,
		Catalog:        catalogRepo,
		Tx:             dbClient,
		Allocator:      allocator,
		Logger:         logg,
		DefaultCountry: cfg.Storefront.DefaultCountry,
	})
	if err != nil {
		return err
	}

	choice1Pool, err := catalogRepo.ListByCategory(ctx, enums.ProductCategoryChoice1)
	if err != nil {
		return err
	}
	choice2Pool, err := catalogRepo.ListByCategory(ctx, enums.ProductCategoryChoice2)
	if err != nil {
		return err
	}

	shipping := orders.ShippingInput{
		Name:    "Test User",
		Address: "123 Test Street",
		City:    "Test City",
		State:   "CA",
		Zip:     "12345",
		Country: "USA",
	}

	emails := []string{
		"test1@stryker.com", "test2@stryker.com", "test3@stryker.com",
	}

	var errs error
	for i, email := range emails {
		if len(choice1Pool) == 0 || len(choice2Pool) == 0 {
			break
		}
		c1 := choice1Pool[i%len(choice1Pool)]
		c2 := choice2Pool[i%len(choice2Pool)]

		input := orders.SubmitOrderInput{
			Email:    email,
			Shipping: &shipping,
			Choice1:  &orders.Choice1Input{ProductID: c1.ID, Color: first(c1.AvailableColors), Size: first(c1.AvailableSizes)},
			Choice2:  smokeChoice2(c2),
		}
		_, err := svc.Submit(ctx, input)
		errs = multierr.Append(errs, err)
	}
	return errs
}

// smokeChoice2 picks a kit tag for a bundle product from its populated slot
// lists; plain products take their first variant.
func smokeChoice2(product models.Product) *orders.Choice2Input {
	if !product.HasMultipleItems {
		return &orders.Choice2Input{
			ProductID: product.ID,
			Color:     first(product.AvailableColors),
			Size:      first(product.AvailableSizes),
		}
	}

	input := &orders.Choice2Input{
		ProductID:        product.ID,
		HasMultipleItems: true,
		PoloColor:        first(product.PoloColors),
		PoloSize:         first(product.PoloSizes),
		CapColor:         first(product.CapColors),
		CapSize:          first(product.CapSizes),
		BeanieColor:      first(product.BeanieColors),
		TileColor:        first(product.AvailableColors),
	}

	switch {
	case len(product.PoloColors) > 0 && len(product.CapColors) > 0 && len(product.PoloSizes) == 0:
		input.KitType = orders.KitTechOrganizerPowerBank
	case len(product.PoloColors) > 0 && len(product.CapColors) > 0:
		input.KitType = orders.KitPoloCap
	case len(product.PoloColors) > 0 && len(product.BeanieColors) > 0:
		input.KitType = orders.KitPoloBeanie
	case len(product.CapColors) > 0:
		input.KitType = orders.KitAirtagCap
	case len(product.BeanieColors) > 0:
		input.KitType = orders.KitTileBeanie
	default:
		input.KitType = orders.KitTileEarbuds
	}
	return input
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
