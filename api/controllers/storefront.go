package controllers

import (
	"net/http"

	"github.com/giftworks/holiday-shop-backend/api/responses"
	"github.com/giftworks/holiday-shop-backend/pkg/config"
)

type storefrontView struct {
	Brand        string `json:"brand"`
	ContactEmail string `json:"contact_email,omitempty"`
	GateActive   bool   `json:"gate_active"`
}

// StorefrontInfo publishes the display settings the storefront client renders:
// the brand heading, the support contact, and whether the email allow-list is
// in effect.
func StorefrontInfo(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, storefrontView{
			Brand:        cfg.Storefront.Brand,
			ContactEmail: cfg.Storefront.AdminEmail,
			GateActive:   len(cfg.Storefront.AllowedEmails) > 0,
		})
	}
}
