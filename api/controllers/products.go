package controllers

import (
	"fmt"
	"net/http"

	"github.com/angelmondragon/storefront-api/api/responses"
	"github.com/angelmondragon/storefront-api/api/validators"
	"github.com/angelmondragon/storefront-api/internal/products"
	"github.com/angelmondragon/storefront-api/pkg/logger"
	"github.com/angelmondragon/storefront-api/pkg/metrics"
)

type createProductPayload struct {
	ProductName string `json:"product_name"`
}

// ListProducts returns the product/supplier/price listing, optionally narrowed
// by a case-insensitive ?name= substring. An empty name means no filter.
func ListProducts(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var filter products.ListingFilter
		if name := r.URL.Query().Get("name"); name != "" {
			filter.Name = &name
		}

		rows, err := svc.List(ctx, filter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func CreateProduct(svc products.Service, logg *logger.Logger, rec *metrics.MutationMetrics) http.HandlerFunc {
	const op = "products.create"
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithOperation(r.Context(), op)

		var payload createProductPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := svc.Create(ctx, products.CreateProductInput{ProductName: payload.ProductName})
		rec.Observe(op, err)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, fmt.Sprintf("New product %s has been created!", product.ProductName))
	}
}
