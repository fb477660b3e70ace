package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/giftworks/holiday-shop-backend/api/responses"
	pkgerrors "github.com/giftworks/holiday-shop-backend/pkg/errors"
	"github.com/giftworks/holiday-shop-backend/pkg/logger"
)

const adminPasswordHeader = "X-Admin-Password"

// AdminGate guards the admin routes with the shared reporting password. This
// is a UX-level gate for a short-lived internal tool, not an auth system.
func AdminGate(password string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if password == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin password not configured"))
				return
			}

			supplied := r.Header.Get(adminPasswordHeader)
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(password)) != 1 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid admin password"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
