package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/giftworks/holiday-shop-backend/api/responses"
	"github.com/giftworks/holiday-shop-backend/internal/catalog"
	"github.com/giftworks/holiday-shop-backend/pkg/enums"
	pkgerrors "github.com/giftworks/holiday-shop-backend/pkg/errors"
	"github.com/giftworks/holiday-shop-backend/pkg/logger"
)

// ListProducts serves one catalog pool, selected by the category query param.
func ListProducts(repo catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := enums.ProductCategory(strings.TrimSpace(r.URL.Query().Get("category")))
		if !category.Valid() {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "category must be choice1 or choice2"))
			return
		}

		products, err := repo.ListByCategory(r.Context(), category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products"))
			return
		}

		responses.WriteSuccess(w, products)
	}
}

func GetProduct(repo catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := repo.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product"))
			return
		}

		responses.WriteSuccess(w, product)
	}
}
