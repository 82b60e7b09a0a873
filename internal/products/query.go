package products

import "strings"

// The listing statement is assembled from these constants only. Caller input
// never reaches the SQL text; it travels in ListingQuery.Args.
const (
	listingSelect = `SELECT p.product_name, pa.unit_price, s.supplier_name
FROM products p
JOIN product_availability pa ON pa.prod_id = p.id
JOIN suppliers s ON s.id = pa.supp_id`
	listingNameFilter = `LOWER(p.product_name) LIKE ?`
	listingOrder      = `ORDER BY p.product_name, s.supplier_name`
)

// ListingFilter holds the optional request-scoped predicates.
type ListingFilter struct {
	Name *string
}

// ListingQuery is a fully bound statement ready for execution.
type ListingQuery struct {
	SQL  string
	Args []any
}

// ComposeListing builds a fresh query for one request. It allocates its own
// builder and argument slice, so concurrent requests never share state.
func ComposeListing(filter ListingFilter) ListingQuery {
	var sb strings.Builder
	sb.WriteString(listingSelect)

	var where []string
	args := []any{}
	if filter.Name != nil {
		where = append(where, listingNameFilter)
		args = append(args, "%"+strings.ToLower(*filter.Name)+"%")
	}
	if len(where) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	sb.WriteString("\n")
	sb.WriteString(listingOrder)

	return ListingQuery{SQL: sb.String(), Args: args}
}
