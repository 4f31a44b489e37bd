package report

import "github.com/mesmerizedfloppa/shop-analytics/internal/domain"

// Comprehensive packages every standard metric into one report. Pure
// composition of the other folds, no logic of its own.
type Comprehensive struct {
	Sales          Summary          `json:"sales"`
	Bestsellers    []Bestseller     `json:"bestsellers"`
	TopCustomers   []TopCustomer    `json:"top_customers"`
	Retention      Retention        `json:"retention"`
	HourlyPattern  []HourSales      `json:"hourly_pattern"`
	WeekdayPattern map[string]int64 `json:"weekday_pattern"`
}

// ComprehensiveReport composes the full analytics view with the default
// top-5 cuts for bestsellers and customers.
func ComprehensiveReport(orders []domain.Order, products []domain.Product, users []domain.User) Comprehensive {
	_ = users // reserved for segment cuts; no per-user enrichment yet

	return Comprehensive{
		Sales:          SalesSummary(orders),
		Bestsellers:    BestsellersReport(orders, products, 5),
		TopCustomers:   TopCustomersReport(orders, 5),
		Retention:      RetentionRate(orders),
		HourlyPattern:  SalesByHour(orders),
		WeekdayPattern: SalesByWeekday(orders),
	}
}
