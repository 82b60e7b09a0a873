package controllers

import (
	"fmt"
	"net/http"

	"github.com/angelmondragon/storefront-api/api/responses"
	"github.com/angelmondragon/storefront-api/api/validators"
	"github.com/angelmondragon/storefront-api/internal/orders"
	"github.com/angelmondragon/storefront-api/pkg/logger"
	"github.com/angelmondragon/storefront-api/pkg/metrics"
)

type createOrderPayload struct {
	OrderReference string `json:"order_reference" validate:"restricted_text=10"`
}

type addItemPayload struct {
	ProductID validators.Scalar `json:"product_id" validate:"positive_int"`
	Quantity  validators.Scalar `json:"quantity" validate:"positive_int"`
}

func invalidOrderID(string) string {
	return "Invalid order id"
}

// CreateCustomerOrder creates an order for the path customer; order_date is
// assigned by the server.
func CreateCustomerOrder(svc orders.Service, logg *logger.Logger, rec *metrics.MutationMetrics) http.HandlerFunc {
	const op = "orders.create"
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithOperation(r.Context(), op)

		customerID, err := validators.ParseIDParam(r, "customerId", badCustomerID)
		if err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload createOrderPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		_, err = svc.Create(ctx, customerID, orders.CreateOrderInput{OrderReference: payload.OrderReference})
		rec.Observe(op, err)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "customer order created!")
	}
}

func AddOrderItem(svc orders.Service, logg *logger.Logger, rec *metrics.MutationMetrics) http.HandlerFunc {
	const op = "orders.add_item"
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithOperation(r.Context(), op)

		orderID, err := validators.ParseIDParam(r, "orderId", invalidOrderID)
		if err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload addItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		_, err = svc.AddItem(ctx, orderID, orders.AddItemInput{
			ProductID: payload.ProductID.String(),
			Quantity:  payload.Quantity.String(),
		})
		rec.Observe(op, err)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "order item added!")
	}
}

// DeleteOrder removes the order and its items as one unit.
func DeleteOrder(svc orders.Service, logg *logger.Logger, rec *metrics.MutationMetrics) http.HandlerFunc {
	const op = "orders.delete"
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithOperation(r.Context(), op)

		orderID, err := validators.ParseIDParam(r, "orderId", invalidOrderID)
		if err != nil {
			rec.Observe(op, err)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Delete(ctx, orderID)
		rec.Observe(op, err)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = logg.WithField(ctx, "items_removed", result.ItemsRemoved)
		logg.Info(ctx, "order deleted")
		responses.WriteMessage(w, http.StatusOK, fmt.Sprintf("Order %d has been successfully deleted from the database !", orderID))
	}
}
