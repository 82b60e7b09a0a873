package models

// All lists every model in dependency order for schema bootstrap.
func All() []any {
	return []any{
		&Customer{},
		&Product{},
		&Supplier{},
		&ProductAvailability{},
		&Order{},
		&OrderItem{},
		&Hotel{},
	}
}
