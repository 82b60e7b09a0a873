package customers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-api/pkg/db/models"
)

// CustomerDTO is the read shape for a customer row.
type CustomerDTO struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

// OrderLineDTO is one joined order/product/supplier row of a customer.
type OrderLineDTO struct {
	CustomerName   string          `json:"Customer Name" gorm:"column:customer_name"`
	OrderReference string          `json:"order_reference" gorm:"column:order_reference"`
	OrderDate      time.Time       `json:"order_date" gorm:"column:order_date"`
	ProductName    string          `json:"product_name" gorm:"column:product_name"`
	SupplierName   string          `json:"supplier_name" gorm:"column:supplier_name"`
	UnitPrice      decimal.Decimal `json:"unit_price" gorm:"column:unit_price"`
	Quantity       int             `json:"quantity" gorm:"column:quantity"`
}

// CreateCustomerInput carries the raw request values; ID is validated as a
// positive integer by the service.
type CreateCustomerInput struct {
	ID      string
	Name    string
	Address *string
	City    *string
	Country *string
}

// UpdateCustomerInput overwrites every column; nil fields become NULL.
type UpdateCustomerInput struct {
	Name    string
	Address *string
	City    *string
	Country *string
}

func toDTO(m models.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      m.ID,
		Name:    m.Name,
		Address: m.Address,
		City:    m.City,
		Country: m.Country,
	}
}
