package controllers

import (
	"net/http"

	"github.com/angelmondragon/storefront-api/api/responses"
	"github.com/angelmondragon/storefront-api/api/validators"
	"github.com/angelmondragon/storefront-api/internal/hotels"
	"github.com/angelmondragon/storefront-api/internal/suppliers"
	"github.com/angelmondragon/storefront-api/pkg/logger"
	"github.com/angelmondragon/storefront-api/pkg/metrics"
)

type createHotelPayload struct {
	Name     string            `json:"name" validate:"restricted_text=60"`
	Rooms    validators.Scalar `json:"rooms"`
	Postcode string            `json:"postcode" validate:"omitempty,restricted_text=10"`
}

func ListSuppliers(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rows, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func ListHotels(svc hotels.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rows, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func CreateHotel(svc hotels.Service, logg *logger.Logger, rec *metrics.MutationMetrics) http.HandlerFunc {
	const op = "hotels.create"
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithOperation(r.Context(), op)

		var payload createHotelPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		_, err := svc.Create(ctx, hotels.CreateHotelInput{
			Name:     payload.Name,
			Rooms:    payload.Rooms.String(),
			Postcode: payload.Postcode,
		})
		rec.Observe(op, err)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "Hotel created!")
	}
}
