package products

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-api/pkg/db/models"
)

// ListingRowDTO is one product offered by one supplier.
type ListingRowDTO struct {
	ProductName  string          `json:"product_name" gorm:"column:product_name"`
	UnitPrice    decimal.Decimal `json:"unit_price" gorm:"column:unit_price"`
	SupplierName string          `json:"supplier_name" gorm:"column:supplier_name"`
}

type ProductDTO struct {
	ID          int64  `json:"id"`
	ProductName string `json:"product_name"`
}

type CreateProductInput struct {
	ProductName string
}

func toDTO(m models.Product) ProductDTO {
	return ProductDTO{ID: m.ID, ProductName: m.ProductName}
}
