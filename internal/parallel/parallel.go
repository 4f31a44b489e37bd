// Package parallel runs the aggregation folds as fork-join batches: one
// goroutine per independent unit (a day, a user, a product, a batch of
// orders), a join barrier, then a purely local merge. Concurrency here is
// a throughput strategy only; every unit is a pure function of its slice
// of the input, so results match the sequential folds exactly. If any
// unit fails the whole batch is abandoned, mirroring checkout's
// all-or-nothing policy.
package parallel

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

// vipSpendThreshold is the paid spend above which a repeat customer is
// segmented as vip.
const vipSpendThreshold = 500_000

// SalesByDay computes paid sales totals for each requested day, one unit
// per day.
func SalesByDay(ctx context.Context, orders []domain.Order, days []string) (map[string]int64, error) {
	g, gctx := errgroup.WithContext(ctx)
	totals := make([]int64, len(days))

	for i, day := range days {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var sum int64
			for _, o := range orders {
				if o.Status == domain.StatusPaid && strings.HasPrefix(o.TS, day) {
					sum += o.Total
				}
			}
			totals[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(days))
	for i, day := range days {
		out[day] = totals[i]
	}
	return out, nil
}

// SalesByUser computes paid spend for each requested user, one unit per
// user.
func SalesByUser(ctx context.Context, orders []domain.Order, userIDs []string) (map[string]int64, error) {
	g, gctx := errgroup.WithContext(ctx)
	totals := make([]int64, len(userIDs))

	for i, uid := range userIDs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var sum int64
			for _, o := range orders {
				if o.Status == domain.StatusPaid && o.UserID == uid {
					sum += o.Total
				}
			}
			totals[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(userIDs))
	for i, uid := range userIDs {
		out[uid] = totals[i]
	}
	return out, nil
}

// Performance is the per-product sales analysis row.
type Performance struct {
	ProductID    string  `json:"product_id"`
	Title        string  `json:"title"`
	Price        int64   `json:"price"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      int64   `json:"revenue"`
	ROI          float64 `json:"roi"`
}

// ProductPerformance analyzes each product in its own unit and returns
// rows sorted by revenue descending (stable, so input order breaks ties).
func ProductPerformance(ctx context.Context, orders []domain.Order, products []domain.Product) ([]Performance, error) {
	g, gctx := errgroup.WithContext(ctx)
	rows := make([]Performance, len(products))

	for i, p := range products {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var qty int
			var revenue int64
			for _, o := range orders {
				if o.Status != domain.StatusPaid {
					continue
				}
				for _, it := range o.Items {
					if it.ProductID == p.ID {
						qty += it.Qty
						revenue += p.Price * int64(it.Qty)
						break
					}
				}
			}
			roi := 0.0
			if p.Price > 0 {
				roi = float64(revenue) / float64(p.Price)
			}
			rows[i] = Performance{
				ProductID:    p.ID,
				Title:        p.Title,
				Price:        p.Price,
				QuantitySold: qty,
				Revenue:      revenue,
				ROI:          roi,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	return rows, nil
}

// SegmentCustomers classifies each user in its own unit: inactive (no
// paid orders), one_time, vip (repeat spend above the threshold), or
// regular. The merge groups user ids per segment in input order.
func SegmentCustomers(ctx context.Context, orders []domain.Order, users []domain.User) (map[string][]string, error) {
	g, gctx := errgroup.WithContext(ctx)
	segments := make([]string, len(users))

	for i, u := range users {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var count int
			var spent int64
			for _, o := range orders {
				if o.Status == domain.StatusPaid && o.UserID == u.ID {
					count++
					spent += o.Total
				}
			}
			switch {
			case count == 0:
				segments[i] = "inactive"
			case count == 1:
				segments[i] = "one_time"
			case spent > vipSpendThreshold:
				segments[i] = "vip"
			default:
				segments[i] = "regular"
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]string)
	for i, u := range users {
		out[segments[i]] = append(out[segments[i]], u.ID)
	}
	return out, nil
}

// BatchSummary aggregates order statistics computed batch by batch.
type BatchSummary struct {
	TotalOrders      int   `json:"total_orders"`
	PaidOrders       int   `json:"paid_orders"`
	RefundedOrders   int   `json:"refunded_orders"`
	TotalRevenue     int64 `json:"total_revenue"`
	BatchesProcessed int   `json:"batches_processed"`
}

type batchStats struct {
	total, paid, refunded int
	revenue               int64
}

// BatchStats splits orders into fixed-size batches, folds each in its own
// unit, and sums the per-batch results after the join barrier.
func BatchStats(ctx context.Context, orders []domain.Order, batchSize int) (BatchSummary, error) {
	if batchSize <= 0 {
		batchSize = 10
	}

	var batches [][]domain.Order
	for i := 0; i < len(orders); i += batchSize {
		end := min(i+batchSize, len(orders))
		batches = append(batches, orders[i:end])
	}

	g, gctx := errgroup.WithContext(ctx)
	results := make([]batchStats, len(batches))

	for i, batch := range batches {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			st := batchStats{total: len(batch)}
			for _, o := range batch {
				switch o.Status {
				case domain.StatusPaid:
					st.paid++
					st.revenue += o.Total
				case domain.StatusRefunded:
					st.refunded++
				}
			}
			results[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchSummary{}, err
	}

	out := BatchSummary{BatchesProcessed: len(results)}
	for _, st := range results {
		out.TotalOrders += st.total
		out.PaidOrders += st.paid
		out.RefundedOrders += st.refunded
		out.TotalRevenue += st.revenue
	}
	return out, nil
}

// FilterOrders applies each predicate concurrently and returns one
// filtered slice per predicate, in predicate order.
func FilterOrders(ctx context.Context, orders []domain.Order, predicates []func(domain.Order) bool) ([][]domain.Order, error) {
	g, gctx := errgroup.WithContext(ctx)
	out := make([][]domain.Order, len(predicates))

	for i, pred := range predicates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var matched []domain.Order
			for _, o := range orders {
				if pred(o) {
					matched = append(matched, o)
				}
			}
			out[i] = matched
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
