package orders

import "time"

type CreateOrderInput struct {
	OrderReference string
}

// AddItemInput carries raw request values; the service parses them.
type AddItemInput struct {
	ProductID string
	Quantity  string
}

type OrderDTO struct {
	ID             int64     `json:"id"`
	CustomerID     int64     `json:"customer_id"`
	OrderDate      time.Time `json:"order_date"`
	OrderReference string    `json:"order_reference"`
}

type OrderItemDTO struct {
	ID        int64 `json:"id"`
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// DeleteResult reports what a cascade removed.
type DeleteResult struct {
	OrderID      int64 `json:"order_id"`
	ItemsRemoved int64 `json:"items_removed"`
}
