package models

// Customer is keyed by a caller-supplied id; name is unique across customers.
type Customer struct {
	ID      int64   `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name    string  `gorm:"column:name;type:varchar(60);not null;uniqueIndex:customers_name_key"`
	Address *string `gorm:"column:address;type:varchar(120)"`
	City    *string `gorm:"column:city;type:varchar(60)"`
	Country *string `gorm:"column:country;type:varchar(60)"`
}
