package products

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-api/pkg/db/models"
)

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, name string) *models.Product {
	t.Helper()
	product := &models.Product{ProductName: name}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func mustCreateTestSupplier(t *testing.T, tx *gorm.DB, name string) *models.Supplier {
	t.Helper()
	supplier := &models.Supplier{SupplierName: name}
	if err := tx.Create(supplier).Error; err != nil {
		t.Fatalf("create supplier: %v", err)
	}
	return supplier
}

func mustCreateTestAvailability(t *testing.T, tx *gorm.DB, prodID, suppID int64, price string) {
	t.Helper()
	row := &models.ProductAvailability{ProdID: prodID, SuppID: suppID, UnitPrice: decimal.RequireFromString(price)}
	if err := tx.Omit("Product", "Supplier").Create(row).Error; err != nil {
		t.Fatalf("create availability: %v", err)
	}
}
