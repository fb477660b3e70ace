package controllers

import (
	"net/http"

	"github.com/giftworks/holiday-shop-backend/api/responses"
	"github.com/giftworks/holiday-shop-backend/api/validators"
	"github.com/giftworks/holiday-shop-backend/internal/orders"
	pkgerrors "github.com/giftworks/holiday-shop-backend/pkg/errors"
	"github.com/giftworks/holiday-shop-backend/pkg/logger"
)

// SubmitOrder takes a fully composed order in one request. The wizard's
// gated submission goes through the session controller instead; this endpoint
// serves clients that assemble the payload themselves.
func SubmitOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload orders.SubmitOrderInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithEmail(ctx, orders.NormalizeEmail(payload.Email))
		}

		result, err := svc.Submit(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithOrderNumber(ctx, result.OrderNumber)
			logg.Info(ctx, "order.submitted")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
