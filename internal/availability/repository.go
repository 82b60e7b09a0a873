package availability

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/storefront-api/internal/repo"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
)

type Repository struct {
	base repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: repo.NewBase(db)}
}

func (r *Repository) ExistsPair(ctx context.Context, prodID, suppID int64) (bool, error) {
	return r.base.Exists(ctx, &models.ProductAvailability{}, "prod_id = ? AND supp_id = ?", prodID, suppID)
}

// ProductAvailable reports whether any supplier offers the product.
func (r *Repository) ProductAvailable(ctx context.Context, prodID int64) (bool, error) {
	return r.base.Exists(ctx, &models.ProductAvailability{}, "prod_id = ?", prodID)
}

func (r *Repository) Create(ctx context.Context, row *models.ProductAvailability) error {
	return r.base.DB(ctx).Omit(clause.Associations).Create(row).Error
}

func (r *Repository) UpdatePrice(ctx context.Context, prodID, suppID int64, price decimal.Decimal) (int64, error) {
	res := r.base.DB(ctx).
		Model(&models.ProductAvailability{}).
		Where("prod_id = ? AND supp_id = ?", prodID, suppID).
		Update("unit_price", price)
	return res.RowsAffected, res.Error
}
