package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/giftworks/holiday-shop-backend/api/responses"
	"github.com/giftworks/holiday-shop-backend/api/validators"
	"github.com/giftworks/holiday-shop-backend/internal/composer"
	"github.com/giftworks/holiday-shop-backend/internal/orders"
	"github.com/giftworks/holiday-shop-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

type identityRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type sessionView struct {
	SessionID string          `json:"session_id"`
	Step      composer.Step   `json:"step"`
	State     *composer.State `json:"state"`
}

// sessionID reads the client's wizard session, minting one when the request
// carries none.
func sessionID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(sessionIDHeader)); id != "" {
		return id
	}
	return uuid.NewString()
}

func view(state *composer.State) sessionView {
	return sessionView{
		SessionID: state.SessionID,
		Step:      state.CurrentStep(),
		State:     state,
	}
}

// GetSession returns the current snapshot so a returning client can resume
// where it left off.
func GetSession(svc composer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Resume(r.Context(), sessionID(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view(state))
	}
}

func SessionIdentity(svc composer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload identityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithEmail(ctx, orders.NormalizeEmail(payload.Email))
		}

		state, err := svc.SetEmail(ctx, sessionID(r), payload.Email)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, view(state))
	}
}

func SessionChoice1(svc composer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload orders.Choice1Input
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.SetChoice1(r.Context(), sessionID(r), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view(state))
	}
}

func SessionChoice2(svc composer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload orders.Choice2Input
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.SetChoice2(r.Context(), sessionID(r), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view(state))
	}
}

func SessionShipping(svc composer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload orders.ShippingInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.SetShipping(r.Context(), sessionID(r), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view(state))
	}
}

func SessionSubmit(svc composer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		result, err := svc.Submit(ctx, sessionID(r))
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

func SessionReset(svc composer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reset(r.Context(), sessionID(r)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "reset"})
	}
}
