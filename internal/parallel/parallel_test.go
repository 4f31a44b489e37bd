package parallel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Title: "Phone", Price: 100_000, CategoryID: "c1"},
		{ID: "p2", Title: "Laptop", Price: 300_000, CategoryID: "c1"},
		{ID: "p3", Title: "Tablet", Price: 200_000, CategoryID: "c2"},
	}
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: "o1", UserID: "u1", Items: []domain.Item{{ProductID: "p1", Qty: 2}},
			Total: 200_000, TS: "2025-10-01T10:00:00", Status: domain.StatusPaid},
		{ID: "o2", UserID: "u2", Items: []domain.Item{{ProductID: "p2", Qty: 1}},
			Total: 300_000, TS: "2025-10-02T11:00:00", Status: domain.StatusPaid},
		{ID: "o3", UserID: "u1", Items: []domain.Item{{ProductID: "p1", Qty: 1}, {ProductID: "p3", Qty: 2}},
			Total: 500_000, TS: "2025-10-02T15:00:00", Status: domain.StatusPaid},
		{ID: "o4", UserID: "u3", Items: []domain.Item{{ProductID: "p3", Qty: 1}},
			Total: 200_000, TS: "2025-10-03T09:00:00", Status: domain.StatusRefunded},
	}
}

func sampleUsers() []domain.User {
	return []domain.User{
		{ID: "u1", Name: "Ann", Tier: "vip"},
		{ID: "u2", Name: "Bob", Tier: "regular"},
		{ID: "u3", Name: "Cid", Tier: "regular"},
		{ID: "u4", Name: "Dee", Tier: "regular"},
	}
}

func TestSalesByDay(t *testing.T) {
	got, err := SalesByDay(context.Background(), sampleOrders(), []string{"2025-10-01", "2025-10-02", "2025-10-03"})

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"2025-10-01": 200_000,
		"2025-10-02": 800_000,
		"2025-10-03": 0, // refunded only; requested days are present even at zero
	}, got)
}

func TestSalesByUser(t *testing.T) {
	got, err := SalesByUser(context.Background(), sampleOrders(), []string{"u1", "u2", "u3"})

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"u1": 700_000, "u2": 300_000, "u3": 0}, got)
}

func TestProductPerformance(t *testing.T) {
	rows, err := ProductPerformance(context.Background(), sampleOrders(), sampleProducts())

	require.NoError(t, err)
	require.Len(t, rows, 3)

	// p3: qty 2 (paid only), revenue 400k; p1: qty 3, revenue 300k; p2: qty 1, revenue 300k.
	assert.Equal(t, "p3", rows[0].ProductID)
	assert.Equal(t, int64(400_000), rows[0].Revenue)
	assert.Equal(t, 2, rows[0].QuantitySold)

	assert.Equal(t, "p1", rows[1].ProductID, "revenue ties keep input order")
	assert.Equal(t, "p2", rows[2].ProductID)

	assert.InDelta(t, 3.0, rows[1].ROI, 0.001)
}

func TestSegmentCustomers(t *testing.T) {
	got, err := SegmentCustomers(context.Background(), sampleOrders(), sampleUsers())

	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"vip":      {"u1"}, // 2 paid orders, 700k > threshold
		"one_time": {"u2"},
		"inactive": {"u3", "u4"}, // u3 only refunded
	}, got)
}

func TestBatchStats(t *testing.T) {
	got, err := BatchStats(context.Background(), sampleOrders(), 2)

	require.NoError(t, err)
	assert.Equal(t, BatchSummary{
		TotalOrders:      4,
		PaidOrders:       3,
		RefundedOrders:   1,
		TotalRevenue:     1_000_000,
		BatchesProcessed: 2,
	}, got)
}

func TestBatchStatsMatchesAnyBatchSize(t *testing.T) {
	whole, err := BatchStats(context.Background(), sampleOrders(), 100)
	require.NoError(t, err)

	tiny, err := BatchStats(context.Background(), sampleOrders(), 1)
	require.NoError(t, err)

	whole.BatchesProcessed = 0
	tiny.BatchesProcessed = 0
	assert.Equal(t, whole, tiny, "batch decomposition must not change the totals")
}

func TestFilterOrders(t *testing.T) {
	preds := []func(domain.Order) bool{
		func(o domain.Order) bool { return o.Status == domain.StatusPaid },
		func(o domain.Order) bool { return o.UserID == "u1" },
	}

	got, err := FilterOrders(context.Background(), sampleOrders(), preds)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0], 3)
	assert.Len(t, got[1], 2)
}

func TestCancelledContextAbandonsBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SalesByDay(ctx, sampleOrders(), []string{"2025-10-01"})
	assert.Error(t, err, "a cancelled run yields no partial results")
}

func TestPipeline(t *testing.T) {
	got, err := Pipeline(context.Background(), sampleOrders(), sampleProducts(), sampleUsers())

	require.NoError(t, err)

	wantDays, err := SalesByDay(context.Background(), sampleOrders(),
		[]string{"2025-10-01", "2025-10-02", "2025-10-03"})
	require.NoError(t, err)
	assert.Equal(t, wantDays, got.SalesByDay)

	assert.Equal(t, map[string]int64{"u1": 700_000, "u2": 300_000, "u3": 0, "u4": 0}, got.SalesByUser)
	require.NotEmpty(t, got.TopProducts)
	assert.Equal(t, "p3", got.TopProducts[0].ProductID)

	assert.Equal(t, map[string][]string{
		"vip":      {"u1"},
		"one_time": {"u2"},
		"inactive": {"u3", "u4"},
	}, got.CustomerSegments)

	assert.Equal(t, 4, got.BatchStatistics.TotalOrders)
	assert.Equal(t, int64(1_000_000), got.BatchStatistics.TotalRevenue)
}
