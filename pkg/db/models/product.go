package models

// Product is a catalog entry; product_name is unique.
type Product struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ProductName string `gorm:"column:product_name;type:varchar(60);not null;uniqueIndex:products_product_name_key"`
}

// Supplier provides products through ProductAvailability rows.
type Supplier struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	SupplierName string `gorm:"column:supplier_name;type:varchar(100);not null"`
}
