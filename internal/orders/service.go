package orders

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-api/internal/guard"
	"github.com/angelmondragon/storefront-api/pkg/db"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
	"github.com/angelmondragon/storefront-api/pkg/validation"
)

const (
	referenceMaxLen        = 10
	missingCustomerMessage = "This customer does not exist please checked the values in your order!"
	missingOrderMessage    = "Invalid order id"
)

// Service defines the guarded order mutations.
type Service interface {
	Create(ctx context.Context, customerID int64, in CreateOrderInput) (*OrderDTO, error)
	AddItem(ctx context.Context, orderID int64, in AddItemInput) (*OrderItemDTO, error)
	Delete(ctx context.Context, orderID int64) (*DeleteResult, error)
}

type service struct {
	repo         Repository
	tx           txRunner
	customers    customerProbe
	availability availabilityProbe
	now          func() time.Time
}

// Option customises a service at construction time.
type Option func(*service)

// WithClock overrides the source of order_date.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo Repository, tx txRunner, customers customerProbe, availability availabilityProbe, opts ...Option) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if customers == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	if availability == nil {
		return nil, fmt.Errorf("availability repository required")
	}
	s := &service{
		repo:         repo,
		tx:           tx,
		customers:    customers,
		availability: availability,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *service) Create(ctx context.Context, customerID int64, in CreateOrderInput) (*OrderDTO, error) {
	if err := validation.Text(referenceMaxLen).Check(in.OrderReference); err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "Invalid order reference %s", in.OrderReference)
	}

	err := guard.Enforce(ctx, guard.Exists("customer", customerID, missingCustomerMessage, s.customers.ExistsByID))
	if err != nil {
		return nil, db.TranslateReadError(err, "check order customer")
	}

	order := models.Order{
		CustomerID:     customerID,
		OrderDate:      s.now(),
		OrderReference: in.OrderReference,
	}
	if err := s.repo.CreateOrder(ctx, &order); err != nil {
		return nil, db.TranslateWriteError(err, "insert order", db.ConstraintMessages{ForeignKey: missingCustomerMessage})
	}
	return &OrderDTO{
		ID:             order.ID,
		CustomerID:     order.CustomerID,
		OrderDate:      order.OrderDate,
		OrderReference: order.OrderReference,
	}, nil
}

func (s *service) AddItem(ctx context.Context, orderID int64, in AddItemInput) (*OrderItemDTO, error) {
	productID, err := validation.ParsePositiveInt(in.ProductID)
	if err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "The product id %s should be a positive integer.", in.ProductID)
	}
	qty, err := validation.ParsePositiveInt(in.Quantity)
	if err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "The quantity %s should be a positive integer.", in.Quantity)
	}

	err = guard.Enforce(ctx,
		guard.Exists("order", orderID, fmt.Sprintf("Order %d does not exist", orderID), s.repo.ExistsByID),
		guard.Exists("product", productID, fmt.Sprintf("Product %d is not available from any supplier", productID), s.availability.ProductAvailable),
	)
	if err != nil {
		return nil, db.TranslateReadError(err, "check order item references")
	}

	item := models.OrderItem{OrderID: orderID, ProductID: productID, Quantity: int(qty)}
	if err := s.repo.CreateOrderItem(ctx, &item); err != nil {
		return nil, db.TranslateWriteError(err, "insert order item", db.ConstraintMessages{
			ForeignKey: fmt.Sprintf("Order %d or product %d does not exist", orderID, productID),
		})
	}
	return &OrderItemDTO{ID: item.ID, OrderID: orderID, ProductID: productID, Quantity: item.Quantity}, nil
}

// Delete removes the order's items and then the order as one transaction.
// A missing order rolls the unit back and reports NOT_FOUND.
func (s *service) Delete(ctx context.Context, orderID int64) (*DeleteResult, error) {
	result := &DeleteResult{OrderID: orderID}
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		removed, err := txRepo.DeleteOrderItems(ctx, orderID)
		if err != nil {
			return db.TranslateWriteError(err, "delete order items", db.ConstraintMessages{})
		}
		result.ItemsRemoved = removed

		affected, err := txRepo.DeleteOrder(ctx, orderID)
		if err != nil {
			return db.TranslateWriteError(err, "delete order", db.ConstraintMessages{})
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, missingOrderMessage)
		}
		return nil
	})
	if err != nil {
		return nil, db.TranslateWriteError(err, "commit order delete", db.ConstraintMessages{})
	}
	return result, nil
}
