// Package report implements the pure aggregation and reporting engine.
// Every function is a fold over immutable order/product/user slices:
// same input, same output, no shared state. Only orders with status
// "paid" count as revenue unless noted otherwise.
package report

import (
	"time"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

// Summary is the serializable sales overview.
type Summary struct {
	TotalOrders       int     `json:"total_orders"`
	PaidOrders        int     `json:"paid_orders"`
	RefundedOrders    int     `json:"refunded_orders"`
	CancelledOrders   int     `json:"cancelled_orders"`
	TotalRevenue      int64   `json:"total_revenue"`
	TotalRefunded     int64   `json:"total_refunded"`
	NetRevenue        int64   `json:"net_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// HourSales is one row of the hourly pattern, ordered by hour.
type HourSales struct {
	Hour  int   `json:"hour"`
	Total int64 `json:"total"`
}

// dayOf extracts the "YYYY-MM-DD" prefix of an ISO-8601-like timestamp.
func dayOf(ts string) string {
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}

// SalesByPeriod sums paid-order totals per day for days within
// [start, end], both inclusive, compared lexicographically on the
// "YYYY-MM-DD" prefix. Days without paid orders are absent from the
// result, not zero.
func SalesByPeriod(orders []domain.Order, start, end string) map[string]int64 {
	out := make(map[string]int64)
	for _, o := range orders {
		if o.Status != domain.StatusPaid {
			continue
		}
		day := dayOf(o.TS)
		if day < start || day > end {
			continue
		}
		out[day] += o.Total
	}
	return out
}

// AverageOrderValue is the mean total over paid orders, 0.0 when there
// are none.
func AverageOrderValue(orders []domain.Order) float64 {
	var sum int64
	var n int
	for _, o := range orders {
		if o.Status == domain.StatusPaid {
			sum += o.Total
			n++
		}
	}
	if n == 0 {
		return 0.0
	}
	return float64(sum) / float64(n)
}

// SalesSummary folds all orders into counts and revenue figures.
// net_revenue = total_revenue - total_refunded.
func SalesSummary(orders []domain.Order) Summary {
	s := Summary{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case domain.StatusPaid:
			s.PaidOrders++
			s.TotalRevenue += o.Total
		case domain.StatusRefunded:
			s.RefundedOrders++
			s.TotalRefunded += o.Total
		case domain.StatusCancelled:
			s.CancelledOrders++
		}
	}
	s.NetRevenue = s.TotalRevenue - s.TotalRefunded
	s.AverageOrderValue = AverageOrderValue(orders)
	return s
}

// SalesByHour sums paid-order totals per hour of day, reading the "HH"
// at positions 11-12 of the timestamp. Malformed timestamps are skipped;
// a bad record never aborts the aggregation. Rows come back sorted by
// hour ascending.
func SalesByHour(orders []domain.Order) []HourSales {
	totals := make(map[int]int64)
	for _, o := range orders {
		if o.Status != domain.StatusPaid {
			continue
		}
		if len(o.TS) < 13 {
			continue
		}
		h := o.TS[11:13]
		if h[0] < '0' || h[0] > '9' || h[1] < '0' || h[1] > '9' {
			continue
		}
		hour := int(h[0]-'0')*10 + int(h[1]-'0')
		totals[hour] += o.Total
	}

	out := make([]HourSales, 0, len(totals))
	for hour := 0; hour < 24; hour++ {
		if t, ok := totals[hour]; ok {
			out = append(out, HourSales{Hour: hour, Total: t})
		}
	}
	return out
}

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var tsLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTS(ts string) (time.Time, bool) {
	for _, layout := range tsLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SalesByWeekday sums paid-order totals per weekday name, Monday first
// (Mon..Sun). Timestamps that do not parse are skipped silently.
func SalesByWeekday(orders []domain.Order) map[string]int64 {
	out := make(map[string]int64)
	for _, o := range orders {
		if o.Status != domain.StatusPaid {
			continue
		}
		t, ok := parseTS(o.TS)
		if !ok {
			continue
		}
		// time.Weekday counts from Sunday; shift to Monday-first.
		name := weekdayNames[(int(t.Weekday())+6)%7]
		out[name] += o.Total
	}
	return out
}
