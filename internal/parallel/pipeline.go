package parallel

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

// PipelineResult bundles every analysis the full pipeline runs.
type PipelineResult struct {
	SalesByDay       map[string]int64    `json:"sales_by_day"`
	SalesByUser      map[string]int64    `json:"sales_by_user"`
	TopProducts      []Performance       `json:"top_products"`
	CustomerSegments map[string][]string `json:"customer_segments"`
	BatchStatistics  BatchSummary        `json:"batch_statistics"`
}

// Pipeline runs all analyses concurrently over the same inputs: daily
// sales for the last 7 distinct days, spend for the first 20 users,
// performance for the first 30 products (top 10 kept), full segmentation,
// and batch statistics. One failing analysis abandons the whole run.
func Pipeline(ctx context.Context, orders []domain.Order, products []domain.Product, users []domain.User) (PipelineResult, error) {
	seen := make(map[string]bool)
	var days []string
	for _, o := range orders {
		if len(o.TS) < 10 {
			continue
		}
		day := o.TS[:10]
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Strings(days)
	if len(days) > 7 {
		days = days[len(days)-7:]
	}

	userIDs := make([]string, 0, min(20, len(users)))
	for _, u := range users[:min(20, len(users))] {
		userIDs = append(userIDs, u.ID)
	}
	prods := products[:min(30, len(products))]

	var res PipelineResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		byDay, err := SalesByDay(gctx, orders, days)
		res.SalesByDay = byDay
		return err
	})
	g.Go(func() error {
		byUser, err := SalesByUser(gctx, orders, userIDs)
		res.SalesByUser = byUser
		return err
	})
	g.Go(func() error {
		perf, err := ProductPerformance(gctx, orders, prods)
		if err != nil {
			return err
		}
		if len(perf) > 10 {
			perf = perf[:10]
		}
		res.TopProducts = perf
		return nil
	})
	g.Go(func() error {
		segments, err := SegmentCustomers(gctx, orders, users)
		res.CustomerSegments = segments
		return err
	})
	g.Go(func() error {
		stats, err := BatchStats(gctx, orders, 10)
		res.BatchStatistics = stats
		return err
	})

	if err := g.Wait(); err != nil {
		return PipelineResult{}, err
	}
	return res, nil
}
