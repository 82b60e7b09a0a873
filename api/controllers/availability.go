package controllers

import (
	"net/http"

	"github.com/angelmondragon/storefront-api/api/responses"
	"github.com/angelmondragon/storefront-api/api/validators"
	"github.com/angelmondragon/storefront-api/internal/availability"
	"github.com/angelmondragon/storefront-api/pkg/logger"
	"github.com/angelmondragon/storefront-api/pkg/metrics"
)

type availabilityPayload struct {
	ProdID    validators.Scalar `json:"prod_id"`
	SuppID    validators.Scalar `json:"supp_id"`
	UnitPrice validators.Scalar `json:"unit_price"`
}

// updateAvailabilityPayload has no legacy wording to preserve, so the field
// rules run at decode time.
type updateAvailabilityPayload struct {
	ProdID    validators.Scalar `json:"prod_id" validate:"positive_int"`
	SuppID    validators.Scalar `json:"supp_id" validate:"positive_int"`
	UnitPrice validators.Scalar `json:"unit_price" validate:"positive_number"`
}

func CreateAvailability(svc availability.Service, logg *logger.Logger, rec *metrics.MutationMetrics) http.HandlerFunc {
	const op = "availability.create"
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithOperation(r.Context(), op)

		var payload availabilityPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		_, err := svc.Create(ctx, availability.AvailabilityInput{
			ProdID:    payload.ProdID.String(),
			SuppID:    payload.SuppID.String(),
			UnitPrice: payload.UnitPrice.String(),
		})
		rec.Observe(op, err)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "new product availability created!")
	}
}

func UpdateAvailability(svc availability.Service, logg *logger.Logger, rec *metrics.MutationMetrics) http.HandlerFunc {
	const op = "availability.update"
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithOperation(r.Context(), op)

		var payload updateAvailabilityPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		_, err := svc.UpdatePrice(ctx, availability.AvailabilityInput{
			ProdID:    payload.ProdID.String(),
			SuppID:    payload.SuppID.String(),
			UnitPrice: payload.UnitPrice.String(),
		})
		rec.Observe(op, err)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "product availability updated!")
	}
}
