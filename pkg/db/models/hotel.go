package models

type Hotel struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:name;type:varchar(60);not null;uniqueIndex:hotels_name_key"`
	Rooms    int    `gorm:"column:rooms;not null"`
	Postcode string `gorm:"column:postcode;type:varchar(10)"`
}
