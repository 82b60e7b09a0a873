package customers

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/storefront-api/internal/repo"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
)

const customerOrdersQuery = `
SELECT c.name AS customer_name,
       o.order_reference,
       o.order_date,
       p.product_name,
       s.supplier_name,
       pa.unit_price,
       oi.quantity
FROM customers c
JOIN orders o ON o.customer_id = c.id
JOIN order_items oi ON oi.order_id = o.id
JOIN products p ON p.id = oi.product_id
JOIN product_availability pa ON pa.prod_id = oi.product_id
JOIN suppliers s ON s.id = pa.supp_id
WHERE c.id = ?
ORDER BY o.order_date, o.id, p.product_name, s.supplier_name
`

// Repository persists customers and answers the existence reads used by the
// invariant checks.
type Repository struct {
	base repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.base.Exists(ctx, &models.Customer{}, "id = ?", id)
}

func (r *Repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.base.Exists(ctx, &models.Customer{}, "name = ?", name)
}

func (r *Repository) HasOrders(ctx context.Context, id int64) (bool, error) {
	return r.base.Exists(ctx, &models.Order{}, "customer_id = ?", id)
}

func (r *Repository) Create(ctx context.Context, customer *models.Customer) error {
	return r.base.DB(ctx).Omit(clause.Associations).Create(customer).Error
}

// Update overwrites every mutable column and returns the affected row count.
func (r *Repository) Update(ctx context.Context, id int64, in UpdateCustomerInput) (int64, error) {
	res := r.base.DB(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":    in.Name,
			"address": in.Address,
			"city":    in.City,
			"country": in.Country,
		})
	return res.RowsAffected, res.Error
}

func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.base.DB(ctx).Where("id = ?", id).Delete(&models.Customer{})
	return res.RowsAffected, res.Error
}

func (r *Repository) List(ctx context.Context) ([]models.Customer, error) {
	var rows []models.Customer
	err := r.base.DB(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	var row models.Customer
	if err := r.base.DB(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) ListOrderLines(ctx context.Context, id int64) ([]OrderLineDTO, error) {
	rows := []OrderLineDTO{}
	err := r.base.DB(ctx).Raw(customerOrdersQuery, id).Scan(&rows).Error
	return rows, err
}
