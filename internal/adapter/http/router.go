package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mesmerizedfloppa/shop-analytics/internal/adapter/http/middleware"
	"github.com/mesmerizedfloppa/shop-analytics/internal/logging"
)

func NewRouter(h *ReportHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/reports/summary", h.Summary)
		v1.GET("/reports/bestsellers", h.Bestsellers)
		v1.GET("/reports/top-customers", h.TopCustomers)
		v1.GET("/reports/retention", h.Retention)
		v1.GET("/reports/comprehensive", h.Comprehensive)
		v1.GET("/reports/daily/:day", h.Daily)
		v1.GET("/catalog/categories/:id/products", h.CategoryProducts)
	}

	return r
}
