package products

import (
	"context"

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

func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.base.Exists(ctx, &models.Product{}, "id = ?", id)
}

func (r *Repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.base.Exists(ctx, &models.Product{}, "product_name = ?", name)
}

func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.base.DB(ctx).Omit(clause.Associations).Create(product).Error
}

// Listing executes a composed listing query.
func (r *Repository) Listing(ctx context.Context, q ListingQuery) ([]ListingRowDTO, error) {
	rows := []ListingRowDTO{}
	err := r.base.DB(ctx).Raw(q.SQL, q.Args...).Scan(&rows).Error
	return rows, err
}
