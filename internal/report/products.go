package report

import (
	"sort"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

// Bestseller is one ranked row of the bestsellers report.
type Bestseller struct {
	ProductID    string `json:"product_id"`
	Title        string `json:"title"`
	Price        int64  `json:"price"`
	QuantitySold int    `json:"quantity_sold"`
	Revenue      int64  `json:"revenue"`
}

// StockAlert flags a product selling fast in the recent order window.
type StockAlert struct {
	ProductID   string `json:"product_id"`
	RecentSales int    `json:"recent_sales"`
}

// recentWindow is how many trailing orders LowStockAlert inspects.
const recentWindow = 20

// quantityByProduct folds paid-order line items into per-product sold
// quantities, remembering first-seen order so ties rank stably.
func quantityByProduct(orders []domain.Order) (map[string]int, []string) {
	qty := make(map[string]int)
	var seen []string
	for _, o := range orders {
		if o.Status != domain.StatusPaid {
			continue
		}
		for _, it := range o.Items {
			if _, ok := qty[it.ProductID]; !ok {
				seen = append(seen, it.ProductID)
			}
			qty[it.ProductID] += it.Qty
		}
	}
	return qty, seen
}

// BestsellersReport ranks product ids by total quantity sold across paid
// orders, descending, ties broken by first-seen order. The top k ids are
// then resolved against products; ids without a catalog record are
// dropped from the result rather than reported as unknown, so fewer than
// k rows may come back.
func BestsellersReport(orders []domain.Order, products []domain.Product, k int) []Bestseller {
	qty, ranked := quantityByProduct(orders)

	sort.SliceStable(ranked, func(i, j int) bool {
		return qty[ranked[i]] > qty[ranked[j]]
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]Bestseller, 0, len(ranked))
	for _, pid := range ranked {
		p, ok := byID[pid]
		if !ok {
			continue
		}
		out = append(out, Bestseller{
			ProductID:    pid,
			Title:        p.Title,
			Price:        p.Price,
			QuantitySold: qty[pid],
			Revenue:      int64(qty[pid]) * p.Price,
		})
	}
	return out
}

// LowStockAlert reports products whose quantity sold across the last 20
// orders of the input (a positional suffix, timestamps are not parsed)
// strictly exceeds threshold. Only paid orders in the window count.
// Rows keep first-seen order. The products slice is accepted for
// boundary-signature stability; alerts carry raw ids.
func LowStockAlert(products []domain.Product, orders []domain.Order, threshold int) []StockAlert {
	_ = products

	window := orders
	if len(window) > recentWindow {
		window = window[len(window)-recentWindow:]
	}

	qty, seen := quantityByProduct(window)

	var out []StockAlert
	for _, pid := range seen {
		if qty[pid] > threshold {
			out = append(out, StockAlert{ProductID: pid, RecentSales: qty[pid]})
		}
	}
	return out
}
