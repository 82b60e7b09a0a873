package models

import "time"

// Order belongs to a customer. Deleting a customer with orders is refused.
type Order struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID     int64     `gorm:"column:customer_id;not null;index"`
	OrderDate      time.Time `gorm:"column:order_date;not null"`
	OrderReference string    `gorm:"column:order_reference;type:varchar(10);not null"`
	Customer       Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:RESTRICT"`
}

// OrderItem is a line of an order. Items are removed together with their order.
type OrderItem struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   int64   `gorm:"column:order_id;not null;index"`
	ProductID int64   `gorm:"column:product_id;not null"`
	Quantity  int     `gorm:"column:quantity;not null"`
	Order     Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:RESTRICT"`
	Product   Product `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:RESTRICT"`
}
