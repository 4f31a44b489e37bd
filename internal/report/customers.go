package report

import (
	"math"
	"sort"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

// TopCustomer is one ranked row of the top customers report. AvgOrder is
// floor(TotalSpent / OrderCount).
type TopCustomer struct {
	UserID     string `json:"user_id"`
	TotalSpent int64  `json:"total_spent"`
	OrderCount int    `json:"order_count"`
	AvgOrder   int64  `json:"avg_order"`
}

// Retention summarizes repeat-purchase behavior. Rate is a percentage in
// [0, 100].
type Retention struct {
	TotalCustomers     int     `json:"total_customers"`
	RepeatCustomers    int     `json:"repeat_customers"`
	RetentionRate      float64 `json:"retention_rate"`
	FirstTimeCustomers int     `json:"first_time_customers"`
}

// Abandonment approximates cart conversion. When no independent cart data
// exists, total carts falls back to completed orders, degenerating to 0%
// abandonment; this approximation is part of the contract.
type Abandonment struct {
	TotalCarts      int     `json:"total_carts"`
	CompletedOrders int     `json:"completed_orders"`
	AbandonmentRate float64 `json:"abandonment_rate"`
}

// CustomerLifetimeValue sums paid spend per user.
func CustomerLifetimeValue(orders []domain.Order) map[string]int64 {
	out := make(map[string]int64)
	for _, o := range orders {
		if o.Status == domain.StatusPaid {
			out[o.UserID] += o.Total
		}
	}
	return out
}

// TopCustomersReport ranks users by lifetime value descending, ties broken
// by first paid order seen, and keeps the top k.
func TopCustomersReport(orders []domain.Order, k int) []TopCustomer {
	spend := make(map[string]int64)
	count := make(map[string]int)
	var ranked []string
	for _, o := range orders {
		if o.Status != domain.StatusPaid {
			continue
		}
		if _, ok := spend[o.UserID]; !ok {
			ranked = append(ranked, o.UserID)
		}
		spend[o.UserID] += o.Total
		count[o.UserID]++
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return spend[ranked[i]] > spend[ranked[j]]
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}

	out := make([]TopCustomer, 0, len(ranked))
	for _, uid := range ranked {
		avg := int64(0)
		if count[uid] > 0 {
			avg = spend[uid] / int64(count[uid])
		}
		out = append(out, TopCustomer{
			UserID:     uid,
			TotalSpent: spend[uid],
			OrderCount: count[uid],
			AvgOrder:   avg,
		})
	}
	return out
}

// RetentionRate counts paid orders per user and reports the share of
// users with more than one.
func RetentionRate(orders []domain.Order) Retention {
	perUser := make(map[string]int)
	for _, o := range orders {
		if o.Status == domain.StatusPaid {
			perUser[o.UserID]++
		}
	}

	r := Retention{TotalCustomers: len(perUser)}
	for _, n := range perUser {
		if n > 1 {
			r.RepeatCustomers++
		}
	}
	if r.TotalCustomers > 0 {
		r.RetentionRate = float64(r.RepeatCustomers) / float64(r.TotalCustomers) * 100
	}
	r.FirstTimeCustomers = r.TotalCustomers - r.RepeatCustomers
	return r
}

// CartAbandonmentRate compares carts ever created against completed (paid)
// orders. The rate is rounded to two decimals.
func CartAbandonmentRate(carts []domain.Cart, orders []domain.Order) Abandonment {
	completed := 0
	for _, o := range orders {
		if o.Status == domain.StatusPaid {
			completed++
		}
	}

	totalCarts := len(carts)
	if totalCarts == 0 {
		totalCarts = completed
	}

	a := Abandonment{TotalCarts: totalCarts, CompletedOrders: completed}
	if totalCarts > 0 {
		rate := float64(totalCarts-completed) / float64(totalCarts) * 100
		a.AbandonmentRate = math.Round(rate*100) / 100
	}
	return a
}
