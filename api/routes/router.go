package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giftworks/holiday-shop-backend/api/controllers"
	"github.com/giftworks/holiday-shop-backend/api/middleware"
	"github.com/giftworks/holiday-shop-backend/internal/catalog"
	"github.com/giftworks/holiday-shop-backend/internal/composer"
	"github.com/giftworks/holiday-shop-backend/internal/orders"
	"github.com/giftworks/holiday-shop-backend/internal/reporting"
	"github.com/giftworks/holiday-shop-backend/pkg/config"
	"github.com/giftworks/holiday-shop-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	cacheP controllers.Pinger,
	catalogRepo catalog.Repository,
	orderService orders.Service,
	wizardService composer.Service,
	reportingService reporting.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, cacheP))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/storefront", controllers.StorefrontInfo(cfg))
		r.Get("/products", controllers.ListProducts(catalogRepo, logg))
		r.Get("/products/{productId}", controllers.GetProduct(catalogRepo, logg))

		r.Route("/session", func(r chi.Router) {
			r.Get("/", controllers.GetSession(wizardService, logg))
			r.Post("/identity", controllers.SessionIdentity(wizardService, logg))
			r.Post("/choice1", controllers.SessionChoice1(wizardService, logg))
			r.Post("/choice2", controllers.SessionChoice2(wizardService, logg))
			r.Post("/shipping", controllers.SessionShipping(wizardService, logg))
			r.Post("/submit", controllers.SessionSubmit(wizardService, logg))
			r.Post("/reset", controllers.SessionReset(wizardService, logg))
		})

		r.Post("/orders", controllers.SubmitOrder(orderService, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.AdminGate(cfg.Storefront.AdminPassword, logg))
		r.Get("/orders", controllers.AdminListOrders(reportingService, logg))
		r.Get("/orders/summary", controllers.AdminOrdersSummary(reportingService, logg))
		r.Get("/orders/export", controllers.AdminOrdersExport(reportingService, logg))
	})

	return r
}
