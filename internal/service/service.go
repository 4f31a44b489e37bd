// Package service composes the pure engines into the higher-level views
// the outer layers consume. Services hold immutable snapshots of the
// seed data plus a logger and report cache; they carry no mutable state
// of their own.
package service

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mesmerizedfloppa/shop-analytics/internal/catalog"
	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
	"github.com/mesmerizedfloppa/shop-analytics/internal/lazy"
	"github.com/mesmerizedfloppa/shop-analytics/internal/logging"
	"github.com/mesmerizedfloppa/shop-analytics/internal/report"
)

var reportsGenerated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reports_generated_total",
		Help: "Reports produced, by kind",
	},
	[]string{"kind"},
)

// CatalogService answers category-scoped catalog queries.
type CatalogService struct {
	categories []domain.Category
	products   []domain.Product
	log        *slog.Logger
}

func NewCatalogService(categories []domain.Category, products []domain.Product) *CatalogService {
	return &CatalogService{
		categories: categories,
		products:   products,
		log:        logging.New("catalog"),
	}
}

// ProductsByCategory returns every product under rootID's subtree.
func (s *CatalogService) ProductsByCategory(rootID string) []domain.Product {
	out := catalog.CollectProducts(s.categories, s.products, rootID)
	s.log.Debug("products_by_category", "root", rootID, "count", len(out))
	return out
}

// CustomerTotal is one (user, spend) pair of a customer ranking.
type CustomerTotal struct {
	UserID string `json:"user_id"`
	Total  int64  `json:"total"`
}

// OrderService answers order-stream queries via the lazy producers.
type OrderService struct {
	orders []domain.Order
	log    *slog.Logger
}

func NewOrderService(orders []domain.Order) *OrderService {
	return &OrderService{orders: orders, log: logging.New("orders")}
}

// OrdersByDay collects the orders created on day ("YYYY-MM-DD").
func (s *OrderService) OrdersByDay(day string) []domain.Order {
	var out []domain.Order
	for o := range lazy.OrdersByDay(s.orders, day) {
		out = append(out, o)
	}
	return out
}

// TopCustomers ranks the k biggest spenders.
func (s *OrderService) TopCustomers(k int) []CustomerTotal {
	var out []CustomerTotal
	for uid, total := range lazy.TopCustomers(s.orders, k) {
		out = append(out, CustomerTotal{UserID: uid, Total: total})
	}
	return out
}

// DailyReport is the per-day sales digest.
type DailyReport struct {
	Orders       []domain.Order  `json:"orders"`
	TotalSales   int64           `json:"total_sales"`
	TopCustomers []CustomerTotal `json:"top_customers"`
}

// AnalyticsService is the reporting facade over the aggregation engine.
type AnalyticsService struct {
	orders   []domain.Order
	products []domain.Product
	users    []domain.User
	cache    *report.Cache
	log      *slog.Logger
}

func NewAnalyticsService(orders []domain.Order, products []domain.Product, users []domain.User, cache *report.Cache) *AnalyticsService {
	return &AnalyticsService{
		orders:   orders,
		products: products,
		users:    users,
		cache:    cache,
		log:      logging.New("analytics"),
	}
}

// Daily builds the daily digest for one day: the day's orders, their
// summed totals, and the overall top-3 customers.
func (s *AnalyticsService) Daily(day string) DailyReport {
	reportsGenerated.WithLabelValues("daily").Inc()

	orders := NewOrderService(s.orders)
	dayOrders := orders.OrdersByDay(day)

	var total int64
	for _, o := range dayOrders {
		total += o.Total
	}

	s.log.Info("daily_report", "day", day, "orders", len(dayOrders), "total", total)
	return DailyReport{
		Orders:       dayOrders,
		TotalSales:   total,
		TopCustomers: orders.TopCustomers(3),
	}
}

// Summary is the plain sales overview.
func (s *AnalyticsService) Summary() report.Summary {
	reportsGenerated.WithLabelValues("summary").Inc()
	return report.SalesSummary(s.orders)
}

// Bestsellers returns the top-k product ranking, served from the
// memoizing cache when one is configured.
func (s *AnalyticsService) Bestsellers(k int) []report.Bestseller {
	reportsGenerated.WithLabelValues("bestsellers").Inc()
	if s.cache != nil {
		return s.cache.TopProducts(s.orders, s.products, k)
	}
	return report.BestsellersReport(s.orders, s.products, k)
}

// TopCustomers returns the top-k customer ranking with order counts.
func (s *AnalyticsService) TopCustomers(k int) []report.TopCustomer {
	reportsGenerated.WithLabelValues("top_customers").Inc()
	return report.TopCustomersReport(s.orders, k)
}

// Retention reports repeat-purchase figures.
func (s *AnalyticsService) Retention() report.Retention {
	reportsGenerated.WithLabelValues("retention").Inc()
	return report.RetentionRate(s.orders)
}

// Comprehensive composes every standard metric into one report.
func (s *AnalyticsService) Comprehensive() report.Comprehensive {
	reportsGenerated.WithLabelValues("comprehensive").Inc()
	return report.ComprehensiveReport(s.orders, s.products, s.users)
}
