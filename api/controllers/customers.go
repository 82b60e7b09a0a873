package controllers

import (
	"fmt"
	"net/http"

	"github.com/angelmondragon/storefront-api/api/responses"
	"github.com/angelmondragon/storefront-api/api/validators"
	"github.com/angelmondragon/storefront-api/internal/customers"
	"github.com/angelmondragon/storefront-api/pkg/logger"
	"github.com/angelmondragon/storefront-api/pkg/metrics"
)

type createCustomerPayload struct {
	ID      validators.Scalar `json:"id"`
	Name    string            `json:"name"`
	Address *string           `json:"address"`
	City    *string           `json:"city"`
	Country *string           `json:"country"`
}

type updateCustomerPayload struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

func badCustomerID(raw string) string {
	return fmt.Sprintf("Bad customer ID: %s", raw)
}

// ListCustomers returns every customer ordered by id.
func ListCustomers(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
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

func GetCustomer(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParseIDParam(r, "customerId", badCustomerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		customer, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, customer)
	}
}

func ListCustomerOrders(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParseIDParam(r, "customerId", badCustomerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		rows, err := svc.ListOrders(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func CreateCustomer(svc customers.Service, logg *logger.Logger, rec *metrics.MutationMetrics) http.HandlerFunc {
	const op = "customers.create"
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithOperation(r.Context(), op)

		var payload createCustomerPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		_, err := svc.Create(ctx, customers.CreateCustomerInput{
			ID:      payload.ID.String(),
			Name:    payload.Name,
			Address: payload.Address,
			City:    payload.City,
			Country: payload.Country,
		})
		rec.Observe(op, err)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "New customer data has been created!")
	}
}

// UpdateCustomer overwrites every column of the addressed customer; omitted
// optional fields become null.
func UpdateCustomer(svc customers.Service, logg *logger.Logger, rec *metrics.MutationMetrics) http.HandlerFunc {
	const op = "customers.update"
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithOperation(r.Context(), op)

		id, err := validators.ParseIDParam(r, "customerId", badCustomerID)
		if err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateCustomerPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		_, err = svc.Update(ctx, id, customers.UpdateCustomerInput{
			Name:    payload.Name,
			Address: payload.Address,
			City:    payload.City,
			Country: payload.Country,
		})
		rec.Observe(op, err)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, fmt.Sprintf("Customer %d updated!", id))
	}
}

func DeleteCustomer(svc customers.Service, logg *logger.Logger, rec *metrics.MutationMetrics) http.HandlerFunc {
	const op = "customers.delete"
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithOperation(r.Context(), op)

		id, err := validators.ParseIDParam(r, "customerId", badCustomerID)
		if err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		err = svc.Delete(ctx, id)
		rec.Observe(op, err)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, fmt.Sprintf("Customer %d deleted because they have no orders!", id))
	}
}
