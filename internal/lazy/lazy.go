// Package lazy provides pull-based producers over order data. Each call
// returns a fresh, restartable sequence; iteration state is never shared
// between consumers and the source slice is read cooperatively.
package lazy

import (
	"iter"
	"sort"
	"strings"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

// OrdersByDay yields orders whose timestamp starts with day
// ("YYYY-MM-DD"), in input order. The sequence recomputes from scratch on
// every range.
func OrdersByDay(orders []domain.Order, day string) iter.Seq[domain.Order] {
	return func(yield func(domain.Order) bool) {
		for _, o := range orders {
			if !strings.HasPrefix(o.TS, day) {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}

// TopCustomers yields the k biggest spenders as (user_id, total) pairs,
// descending, ties by first order seen. The per-user totals map has to be
// materialized before anything can be yielded; past that point the
// sequence is lazy. Bounded by the number of distinct users, not orders.
func TopCustomers(orders []domain.Order, k int) iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		totals := make(map[string]int64)
		var order []string
		for _, o := range orders {
			if _, ok := totals[o.UserID]; !ok {
				order = append(order, o.UserID)
			}
			totals[o.UserID] += o.Total
		}

		sort.SliceStable(order, func(i, j int) bool {
			return totals[order[i]] > totals[order[j]]
		})
		if k < len(order) {
			order = order[:k]
		}

		for _, uid := range order {
			if !yield(uid, totals[uid]) {
				return
			}
		}
	}
}
