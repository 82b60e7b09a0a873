package routes

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/storefront-api/api/controllers"
	"github.com/angelmondragon/storefront-api/api/middleware"
	"github.com/angelmondragon/storefront-api/api/responses"
	"github.com/angelmondragon/storefront-api/internal/availability"
	"github.com/angelmondragon/storefront-api/internal/customers"
	"github.com/angelmondragon/storefront-api/internal/hotels"
	"github.com/angelmondragon/storefront-api/internal/orders"
	"github.com/angelmondragon/storefront-api/internal/products"
	"github.com/angelmondragon/storefront-api/internal/suppliers"
	"github.com/angelmondragon/storefront-api/pkg/config"
	"github.com/angelmondragon/storefront-api/pkg/db"
	"github.com/angelmondragon/storefront-api/pkg/logger"
	"github.com/angelmondragon/storefront-api/pkg/metrics"
	"github.com/angelmondragon/storefront-api/pkg/redis"
)

// Services groups the domain services the router exposes.
type Services struct {
	Customers    customers.Service
	Products     products.Service
	Suppliers    suppliers.Service
	Availability availability.Service
	Orders       orders.Service
	Hotels       hotels.Service
}

// NewServices wires every repository and service onto one store connection.
func NewServices(conn *db.Client) (Services, error) {
	customerRepo := customers.NewRepository(conn.DB())
	productRepo := products.NewRepository(conn.DB())
	supplierRepo := suppliers.NewRepository(conn.DB())
	availabilityRepo := availability.NewRepository(conn.DB())

	var (
		svcs Services
		err  error
	)
	if svcs.Customers, err = customers.NewService(customerRepo); err != nil {
		return Services{}, fmt.Errorf("customers service: %w", err)
	}
	if svcs.Products, err = products.NewService(productRepo); err != nil {
		return Services{}, fmt.Errorf("products service: %w", err)
	}
	if svcs.Suppliers, err = suppliers.NewService(supplierRepo); err != nil {
		return Services{}, fmt.Errorf("suppliers service: %w", err)
	}
	if svcs.Availability, err = availability.NewService(availabilityRepo, productRepo, supplierRepo); err != nil {
		return Services{}, fmt.Errorf("availability service: %w", err)
	}
	if svcs.Orders, err = orders.NewService(orders.NewRepository(conn.DB()), conn, customerRepo, availabilityRepo); err != nil {
		return Services{}, fmt.Errorf("orders service: %w", err)
	}
	if svcs.Hotels, err = hotels.NewService(hotels.NewRepository(conn.DB())); err != nil {
		return Services{}, fmt.Errorf("hotels service: %w", err)
	}
	return svcs, nil
}

// NewRouter mounts every route. redisClient and reg are optional: without
// redis, Idempotency-Key headers are ignored; without a registry, metrics are
// neither collected nor exposed.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	svcs Services,
	dbP db.Pinger,
	redisClient *redis.Client,
	reg *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	var (
		httpMetrics     *metrics.HTTPMetrics
		mutationMetrics *metrics.MutationMetrics
	)
	if reg != nil {
		httpMetrics = metrics.NewHTTPMetrics(reg)
		mutationMetrics = metrics.NewMutationMetrics(reg)
	}

	readiness := map[string]controllers.Pinger{"database": dbP}
	var idempotencyStore redis.IdempotencyStore
	if redisClient != nil {
		idempotencyStore = redisClient
		readiness["redis"] = redisClient
	}
	idempotent := middleware.Idempotency(idempotencyStore, cfg.HTTP.IdempotencyTTL, logg)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.HTTP.CORSAllowedOrigins),
		middleware.Metrics(httpMetrics),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteMessage(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteMessage(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	if reg != nil && cfg.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	r.Route("/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(svcs.Products, logg))
		r.With(idempotent).Post("/", controllers.CreateProduct(svcs.Products, logg, mutationMetrics))
	})

	r.Get("/suppliers", controllers.ListSuppliers(svcs.Suppliers, logg))

	r.Route("/availability", func(r chi.Router) {
		r.With(idempotent).Post("/", controllers.CreateAvailability(svcs.Availability, logg, mutationMetrics))
		r.Put("/", controllers.UpdateAvailability(svcs.Availability, logg, mutationMetrics))
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", controllers.ListCustomers(svcs.Customers, logg))
		r.With(idempotent).Post("/", controllers.CreateCustomer(svcs.Customers, logg, mutationMetrics))

		r.Route("/{customerId}", func(r chi.Router) {
			r.Get("/", controllers.GetCustomer(svcs.Customers, logg))
			r.Put("/", controllers.UpdateCustomer(svcs.Customers, logg, mutationMetrics))
			r.Delete("/", controllers.DeleteCustomer(svcs.Customers, logg, mutationMetrics))
			r.Get("/orders", controllers.ListCustomerOrders(svcs.Customers, logg))
			r.With(idempotent).Post("/orders", controllers.CreateCustomerOrder(svcs.Orders, logg, mutationMetrics))
		})
	})

	r.Route("/orders/{orderId}", func(r chi.Router) {
		r.Delete("/", controllers.DeleteOrder(svcs.Orders, logg, mutationMetrics))
		r.With(idempotent).Post("/items", controllers.AddOrderItem(svcs.Orders, logg, mutationMetrics))
	})

	r.Route("/hotels", func(r chi.Router) {
		r.Get("/", controllers.ListHotels(svcs.Hotels, logg))
		r.With(idempotent).Post("/", controllers.CreateHotel(svcs.Hotels, logg, mutationMetrics))
	})

	return r
}
