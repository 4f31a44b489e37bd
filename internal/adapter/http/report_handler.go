// Package http exposes the read-only report API consumed by dashboards.
// Handlers translate query parameters and hand off to the service layer;
// report payloads are served exactly as the engine produced them.
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mesmerizedfloppa/shop-analytics/internal/service"
)

type ReportHandler struct {
	analytics *service.AnalyticsService
	catalog   *service.CatalogService

	bestsellersK  int
	topCustomersK int
}

func NewReportHandler(analytics *service.AnalyticsService, catalog *service.CatalogService, bestsellersK, topCustomersK int) *ReportHandler {
	if bestsellersK <= 0 {
		bestsellersK = 5
	}
	if topCustomersK <= 0 {
		topCustomersK = 5
	}
	return &ReportHandler{
		analytics:     analytics,
		catalog:       catalog,
		bestsellersK:  bestsellersK,
		topCustomersK: topCustomersK,
	}
}

// kParam reads the ?k= query parameter, falling back to def.
func kParam(c *gin.Context, def int) int {
	raw := c.Query("k")
	if raw == "" {
		return def
	}
	k, err := strconv.Atoi(raw)
	if err != nil || k <= 0 {
		return def
	}
	return k
}

func (h *ReportHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Summary())
}

func (h *ReportHandler) Bestsellers(c *gin.Context) {
	rows := h.analytics.Bestsellers(kParam(c, h.bestsellersK))
	c.JSON(http.StatusOK, gin.H{"bestsellers": rows})
}

func (h *ReportHandler) TopCustomers(c *gin.Context) {
	rows := h.analytics.TopCustomers(kParam(c, h.topCustomersK))
	c.JSON(http.StatusOK, gin.H{"top_customers": rows})
}

func (h *ReportHandler) Retention(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Retention())
}

func (h *ReportHandler) Comprehensive(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Comprehensive())
}

// Daily serves the digest for one "YYYY-MM-DD" day.
func (h *ReportHandler) Daily(c *gin.Context) {
	day := c.Param("day")
	if len(day) != 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_day"})
		return
	}
	c.JSON(http.StatusOK, h.analytics.Daily(day))
}

// CategoryProducts serves every product in the category subtree.
func (h *ReportHandler) CategoryProducts(c *gin.Context) {
	products := h.catalog.ProductsByCategory(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"products": products})
}
