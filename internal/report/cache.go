package report

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mesmerizedfloppa/shop-analytics/internal/domain"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_cache_hits_total",
		Help: "Bestseller report cache hits",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_cache_misses_total",
		Help: "Bestseller report cache misses",
	})
)

// Cache memoizes BestsellersReport behind an LRU keyed by a content hash
// of the inputs. Correct because the report is a pure function of
// (orders, products, k): equal content always means an equal result.
// Hashing costs O(n) per call; a hit skips the aggregation entirely.
type Cache struct {
	mu  sync.Mutex
	lru *lru.Cache[[32]byte, []Bestseller]
}

// NewCache builds a cache holding up to size reports.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[[32]byte, []Bestseller](size)
	if err != nil {
		return nil, fmt.Errorf("report cache: %w", err)
	}
	return &Cache{lru: c}, nil
}

// cacheKey hashes every field the report depends on. Separator bytes keep
// adjacent variable-length fields from colliding.
func cacheKey(orders []domain.Order, products []domain.Product, k int) [32]byte {
	h := sha256.New()
	var buf [8]byte

	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	writeStr := func(s string) {
		writeInt(int64(len(s)))
		h.Write([]byte(s))
	}

	writeInt(int64(k))
	writeInt(int64(len(orders)))
	for _, o := range orders {
		writeStr(o.ID)
		writeStr(string(o.Status))
		writeInt(o.Total)
		writeInt(int64(len(o.Items)))
		for _, it := range o.Items {
			writeStr(it.ProductID)
			writeInt(int64(it.Qty))
		}
	}
	writeInt(int64(len(products)))
	for _, p := range products {
		writeStr(p.ID)
		writeStr(p.Title)
		writeInt(p.Price)
	}

	var key [32]byte
	h.Sum(key[:0])
	return key
}

// TopProducts is BestsellersReport with memoization. Callers get a fresh
// copy of the rows on every call so cached entries stay unaliased.
func (c *Cache) TopProducts(orders []domain.Order, products []domain.Product, k int) []Bestseller {
	key := cacheKey(orders, products, k)

	c.mu.Lock()
	cached, ok := c.lru.Get(key)
	c.mu.Unlock()
	if ok {
		cacheHits.Inc()
		out := make([]Bestseller, len(cached))
		copy(out, cached)
		return out
	}
	cacheMisses.Inc()

	rows := BestsellersReport(orders, products, k)

	c.mu.Lock()
	c.lru.Add(key, rows)
	c.mu.Unlock()

	out := make([]Bestseller, len(rows))
	copy(out, rows)
	return out
}

// Purge drops every cached report.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.lru.Purge()
	c.mu.Unlock()
}
