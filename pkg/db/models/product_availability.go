package models

import "github.com/shopspring/decimal"

// ProductAvailability prices a product from one supplier. The composite
// primary key keeps at most one row per (prod_id, supp_id).
type ProductAvailability struct {
	ProdID    int64           `gorm:"column:prod_id;primaryKey;autoIncrement:false"`
	SuppID    int64           `gorm:"column:supp_id;primaryKey;autoIncrement:false"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	Product   Product         `gorm:"foreignKey:ProdID;references:ID;constraint:OnDelete:RESTRICT"`
	Supplier  Supplier        `gorm:"foreignKey:SuppID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (ProductAvailability) TableName() string {
	return "product_availability"
}
