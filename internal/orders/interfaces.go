package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-api/pkg/db/models"
)

// Repository defines persistence operations for orders and their items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ExistsByID(ctx context.Context, orderID int64) (bool, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItem(ctx context.Context, item *models.OrderItem) error
	DeleteOrderItems(ctx context.Context, orderID int64) (int64, error)
	DeleteOrder(ctx context.Context, orderID int64) (int64, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type customerProbe interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type availabilityProbe interface {
	ProductAvailable(ctx context.Context, prodID int64) (bool, error)
}
