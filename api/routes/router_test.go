package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/storefront-api/pkg/config"
	"github.com/angelmondragon/storefront-api/pkg/db/dbtest"
	"github.com/angelmondragon/storefront-api/pkg/db/models"
	"github.com/angelmondragon/storefront-api/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Env: "test"},
		HTTP:    config.HTTPConfig{CORSAllowedOrigins: []string{"*"}},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

type apiClient struct {
	t       *testing.T
	handler http.Handler
}

func newAPI(t *testing.T) apiClient {
	t.Helper()
	conn := dbtest.Open(t)
	require.NoError(t, conn.DB().Create(&models.Supplier{SupplierName: "Leaf Co"}).Error)

	svcs, err := NewServices(conn)
	require.NoError(t, err)

	handler := NewRouter(testConfig(), logger.Nop(), svcs, conn, nil, prometheus.NewRegistry())
	return apiClient{t: t, handler: handler}
}

func (c apiClient) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func (c apiClient) expectMessage(method, path, body string, status int, message string) {
	c.t.Helper()
	rec := c.do(method, path, body)
	require.Equal(c.t, status, rec.Code, rec.Body.String())
	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(c.t, message, payload.Message)
}

func TestCustomerLifecycle(t *testing.T) {
	api := newAPI(t)

	api.expectMessage(http.MethodPost, "/customers", `{"id":1,"name":"Alice","city":"Paris","country":"France"}`,
		http.StatusOK, "New customer data has been created!")
	api.expectMessage(http.MethodPost, "/customers", `{"id":1,"name":"Alice","city":"Paris","country":"France"}`,
		http.StatusBadRequest, "FATAL ERROR: A customer with the same id 1 already exists!")
	api.expectMessage(http.MethodPost, "/customers", `{"id":"x","name":"Bob"}`,
		http.StatusBadRequest, "The customer id x should be a positive integer.")

	rec := api.do(http.MethodGet, "/customers/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Alice","address":null,"city":"Paris","country":"France"}`, rec.Body.String())

	api.expectMessage(http.MethodPut, "/customers/1", `{"name":"Alice","country":"Spain"}`, http.StatusOK, "Customer 1 updated!")
	rec = api.do(http.MethodGet, "/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Alice","address":null,"city":null,"country":"Spain"}]`, rec.Body.String())

	api.expectMessage(http.MethodPut, "/customers/42", `{"name":"Nobody"}`,
		http.StatusBadRequest, "This customer does not exist please check your data!")
	api.expectMessage(http.MethodGet, "/customers/abc", "", http.StatusBadRequest, "Bad customer ID: abc")
}

func TestOrderingFlow(t *testing.T) {
	api := newAPI(t)

	api.expectMessage(http.MethodPost, "/customers", `{"id":1,"name":"Alice"}`, http.StatusOK, "New customer data has been created!")
	api.expectMessage(http.MethodPost, "/products", `{"product_name":"Green Tea"}`, http.StatusOK, "New product Green Tea has been created!")
	api.expectMessage(http.MethodPost, "/products", `{"product_name":"Green Tea"}`, http.StatusBadRequest, "This product Green Tea already exists!")

	api.expectMessage(http.MethodPost, "/availability", `{"prod_id":1,"supp_id":1,"unit_price":2.5}`, http.StatusOK, "new product availability created!")
	api.expectMessage(http.MethodPost, "/availability", `{"prod_id":1,"supp_id":1,"unit_price":3}`, http.StatusBadRequest,
		"ALERT: The combination of Product id and Supplier id already exist please a put method update the values")
	api.expectMessage(http.MethodPost, "/availability", `{"prod_id":99,"supp_id":1,"unit_price":3}`, http.StatusBadRequest, "Product 99 does not exist")
	api.expectMessage(http.MethodPut, "/availability", `{"prod_id":1,"supp_id":1,"unit_price":"4.25"}`, http.StatusOK, "product availability updated!")

	rec := api.do(http.MethodGet, "/products?name=GREEN", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"product_name":"Green Tea","unit_price":"4.25","supplier_name":"Leaf Co"}]`, rec.Body.String())

	rec = api.do(http.MethodGet, "/products?name=coffee", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	api.expectMessage(http.MethodGet, "/products?name=tea%3Bdrop", "", http.StatusBadRequest, "Invalid product name tea;drop")

	api.expectMessage(http.MethodPost, "/customers/1/orders", `{"order_reference":"ORD-1"}`, http.StatusOK, "customer order created!")
	api.expectMessage(http.MethodPost, "/customers/99/orders", `{"order_reference":"ORD-2"}`, http.StatusBadRequest,
		"This customer does not exist please checked the values in your order!")
	api.expectMessage(http.MethodPost, "/customers/1/orders", `{"order_reference":"ORD;1"}`, http.StatusBadRequest,
		"order_reference may only contain letters, digits, spaces and dashes (max 10)")
	api.expectMessage(http.MethodPost, "/customers/1/orders", `{"order_reference":"ORD-1234567"}`, http.StatusBadRequest,
		"order_reference may only contain letters, digits, spaces and dashes (max 10)")
	api.expectMessage(http.MethodPost, "/orders/1/items", `{"product_id":1,"quantity":2}`, http.StatusOK, "order item added!")

	rec = api.do(http.MethodGet, "/customers/1/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var lines []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "Alice", lines[0]["Customer Name"])
	assert.Equal(t, "Green Tea", lines[0]["product_name"])

	api.expectMessage(http.MethodDelete, "/customers/1", "", http.StatusBadRequest, "This Customer 1 has existing orders and cannot be deleted")
	api.expectMessage(http.MethodDelete, "/orders/1", "", http.StatusOK, "Order 1 has been successfully deleted from the database !")
	api.expectMessage(http.MethodDelete, "/orders/1", "", http.StatusNotFound, "Invalid order id")
	api.expectMessage(http.MethodDelete, "/customers/1", "", http.StatusOK, "Customer 1 deleted because they have no orders!")
	api.expectMessage(http.MethodGet, "/customers/1", "", http.StatusNotFound, "Customer 1 not found")
}

func TestHotelsAndSuppliers(t *testing.T) {
	api := newAPI(t)

	api.expectMessage(http.MethodPost, "/hotels", `{"name":"Triple Point","rooms":10,"postcode":"CM194JS"}`, http.StatusOK, "Hotel created!")
	api.expectMessage(http.MethodPost, "/hotels", `{"name":"Triple Point","rooms":10,"postcode":"CM194JS"}`, http.StatusBadRequest,
		"An hotel with the same name already exists!")
	api.expectMessage(http.MethodPost, "/hotels", `{"name":"Other","rooms":-1,"postcode":"CM194JS"}`, http.StatusBadRequest,
		"The number of rooms should be a positive integer.")
	api.expectMessage(http.MethodPost, "/hotels", `{"name":"Bad;Name","rooms":3}`, http.StatusBadRequest,
		"name may only contain letters, digits, spaces and dashes (max 60)")
	api.expectMessage(http.MethodPost, "/hotels", `{"name":"Inn","rooms":3,"postcode":"ABCDEFGHIJK"}`, http.StatusBadRequest,
		"postcode may only contain letters, digits, spaces and dashes (max 10)")

	rec := api.do(http.MethodGet, "/hotels", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Triple Point")

	rec = api.do(http.MethodGet, "/suppliers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Leaf Co")
}

func TestOperationalEndpoints(t *testing.T) {
	api := newAPI(t)

	rec := api.do(http.MethodGet, "/health/live", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = api.do(http.MethodGet, "/health/ready", "")
	require.Equal(t, http.StatusOK, rec.Code)

	api.expectMessage(http.MethodGet, "/nowhere", "", http.StatusNotFound, "Not Found")

	api.expectMessage(http.MethodPost, "/products", `{"product_name":"Tea"}`, http.StatusOK, "New product Tea has been created!")
	rec = api.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `guarded_mutations_total{operation="products.create",outcome="allowed"} 1`)
	assert.Contains(t, body, "http_requests_total")
}
