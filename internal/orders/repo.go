package orders

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/storefront-api/internal/repo"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
)

type repository struct {
	base repo.Base
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: r.base.WithTx(tx)}
}

func (r *repository) ExistsByID(ctx context.Context, orderID int64) (bool, error) {
	return r.base.Exists(ctx, &models.Order{}, "id = ?", orderID)
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.base.DB(ctx).Omit(clause.Associations).Create(order).Error
}

func (r *repository) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	return r.base.DB(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *repository) DeleteOrderItems(ctx context.Context, orderID int64) (int64, error) {
	res := r.base.DB(ctx).Where("order_id = ?", orderID).Delete(&models.OrderItem{})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteOrder(ctx context.Context, orderID int64) (int64, error) {
	res := r.base.DB(ctx).Where("id = ?", orderID).Delete(&models.Order{})
	return res.RowsAffected, res.Error
}
