package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/angelmondragon/storefront-api/internal/availability"
	"github.com/angelmondragon/storefront-api/internal/customers"
	"github.com/angelmondragon/storefront-api/pkg/db"
	"github.com/angelmondragon/storefront-api/pkg/db/dbtest"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
)

var fixedNow = time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)

type fixture struct {
	client  *db.Client
	conn    *gorm.DB
	product models.Product
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	client := dbtest.Open(t)
	conn := client.DB()

	require.NoError(t, conn.Create(&models.Customer{ID: 1, Name: "Alice"}).Error)
	product := models.Product{ProductName: "Tea"}
	supplier := models.Supplier{SupplierName: "Leaf Co"}
	require.NoError(t, conn.Create(&product).Error)
	require.NoError(t, conn.Create(&supplier).Error)
	require.NoError(t, conn.Omit("Product", "Supplier").Create(&models.ProductAvailability{
		ProdID: product.ID, SuppID: supplier.ID, UnitPrice: decimal.RequireFromString("3.00"),
	}).Error)

	return fixture{client: client, conn: conn, product: product}
}

func (f fixture) service(t *testing.T, repo Repository) Service {
	t.Helper()
	if repo == nil {
		repo = NewRepository(f.conn)
	}
	svc, err := NewService(repo, f.client, customers.NewRepository(f.conn), availability.NewRepository(f.conn), WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return svc
}

func (f fixture) seedOrderWithItems(t *testing.T, items int) int64 {
	t.Helper()
	order := models.Order{CustomerID: 1, OrderDate: fixedNow, OrderReference: "ORD1"}
	require.NoError(t, f.conn.Omit("Customer").Create(&order).Error)
	for i := 0; i < items; i++ {
		require.NoError(t, f.conn.Omit("Order", "Product").Create(&models.OrderItem{OrderID: order.ID, ProductID: f.product.ID, Quantity: i + 1}).Error)
	}
	return order.ID
}

func (f fixture) count(t *testing.T, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.conn.Model(model).Where(where, args...).Count(&n).Error)
	return n
}

func TestCreateOrder(t *testing.T) {
	f := newFixture(t)
	svc := f.service(t, nil)

	order, err := svc.Create(context.Background(), 1, CreateOrderInput{OrderReference: "ORD042"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, order.CustomerID)
	assert.True(t, order.OrderDate.Equal(fixedNow), "order_date is generated by the server")
	assert.EqualValues(t, 1, f.count(t, &models.Order{}, "customer_id = ?", 1))
}

func TestCreateOrderMissingCustomer(t *testing.T) {
	f := newFixture(t)
	svc := f.service(t, nil)

	_, err := svc.Create(context.Background(), 77, CreateOrderInput{OrderReference: "ORD1"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeReference, pkgerrors.CodeOf(err))
	assert.Equal(t, missingCustomerMessage, pkgerrors.As(err).Message())
	assert.Zero(t, f.count(t, &models.Order{}, "1 = 1"))
}

func TestCreateOrderValidatesReference(t *testing.T) {
	f := newFixture(t)
	svc := f.service(t, nil)

	_, err := svc.Create(context.Background(), 1, CreateOrderInput{OrderReference: "WAY-TOO-LONG-REF"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
}

func TestAddItem(t *testing.T) {
	f := newFixture(t)
	svc := f.service(t, nil)
	orderID := f.seedOrderWithItems(t, 0)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, orderID, AddItemInput{ProductID: "1", Quantity: "4"})
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)

	_, err = svc.AddItem(ctx, orderID+100, AddItemInput{ProductID: "1", Quantity: "1"})
	assert.Equal(t, pkgerrors.CodeReference, pkgerrors.CodeOf(err))

	_, err = svc.AddItem(ctx, orderID, AddItemInput{ProductID: "42", Quantity: "1"})
	assert.Equal(t, pkgerrors.CodeReference, pkgerrors.CodeOf(err))

	_, err = svc.AddItem(ctx, orderID, AddItemInput{ProductID: "1", Quantity: "0"})
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
}

func TestDeleteOrderCascades(t *testing.T) {
	f := newFixture(t)
	svc := f.service(t, nil)
	orderID := f.seedOrderWithItems(t, 3)

	res, err := svc.Delete(context.Background(), orderID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.ItemsRemoved)

	assert.Zero(t, f.count(t, &models.Order{}, "id = ?", orderID))
	assert.Zero(t, f.count(t, &models.OrderItem{}, "order_id = ?", orderID))
}

func TestDeleteMissingOrderIsNotFound(t *testing.T) {
	f := newFixture(t)
	svc := f.service(t, nil)

	_, err := svc.Delete(context.Background(), 12345)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.CodeOf(err))
	assert.Equal(t, "Invalid order id", pkgerrors.As(err).Message())
}

// failingRepo deletes items normally and then fails the parent delete, so the
// transaction must restore both.
type failingRepo struct {
	Repository
}

func (r failingRepo) WithTx(tx *gorm.DB) Repository {
	return failingRepo{Repository: r.Repository.WithTx(tx)}
}

func (r failingRepo) DeleteOrder(ctx context.Context, orderID int64) (int64, error) {
	return 0, errors.New("connection reset by peer")
}

func TestDeleteOrderRollsBackWhenParentDeleteFails(t *testing.T) {
	f := newFixture(t)
	svc := f.service(t, failingRepo{Repository: NewRepository(f.conn)})
	orderID := f.seedOrderWithItems(t, 2)

	_, err := svc.Delete(context.Background(), orderID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeInternal, pkgerrors.CodeOf(err))

	assert.EqualValues(t, 1, f.count(t, &models.Order{}, "id = ?", orderID), "order row must be restored")
	assert.EqualValues(t, 2, f.count(t, &models.OrderItem{}, "order_id = ?", orderID), "no orphaned deletes of items")
}

func TestNewServiceRequiresCollaborators(t *testing.T) {
	f := newFixture(t)
	_, err := NewService(nil, f.client, customers.NewRepository(f.conn), availability.NewRepository(f.conn))
	assert.Error(t, err)
	_, err = NewService(NewRepository(f.conn), nil, customers.NewRepository(f.conn), availability.NewRepository(f.conn))
	assert.Error(t, err)
}
