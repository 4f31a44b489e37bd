package app

import (
	"github.com/gin-gonic/gin"

	"github.com/mesmerizedfloppa/shop-analytics/configs"
	httpadapter "github.com/mesmerizedfloppa/shop-analytics/internal/adapter/http"
	"github.com/mesmerizedfloppa/shop-analytics/internal/loader"
	"github.com/mesmerizedfloppa/shop-analytics/internal/logging"
	"github.com/mesmerizedfloppa/shop-analytics/internal/report"
	"github.com/mesmerizedfloppa/shop-analytics/internal/service"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, error) {
	// init logger
	l := logging.Init(cfg.App.Name, cfg.App.LogFile)

	// load immutable seed data (the input boundary)
	seed, err := loader.LoadSeed(cfg.Seed.Path)
	if err != nil {
		return nil, err
	}
	l.Info("seed loaded",
		"categories", len(seed.Categories),
		"products", len(seed.Products),
		"users", len(seed.Users),
		"orders", len(seed.Orders),
	)

	// memoizing report cache
	cache, err := report.NewCache(cfg.Reports.CacheSize)
	if err != nil {
		return nil, err
	}

	// services
	analytics := service.NewAnalyticsService(seed.Orders, seed.Products, seed.Users, cache)
	catalog := service.NewCatalogService(seed.Categories, seed.Products)

	// handlers + router + middleware
	h := httpadapter.NewReportHandler(analytics, catalog,
		cfg.Reports.BestsellersK, cfg.Reports.TopCustomersK)
	router := httpadapter.NewRouter(h)

	return &App{Router: router}, nil
}
