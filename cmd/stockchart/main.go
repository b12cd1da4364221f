package main

import (
	"go.uber.org/zap"

	"github.com/karthik9001/DataScience/api"
	"github.com/karthik9001/DataScience/feed"
	"github.com/karthik9001/DataScience/logging"
	"github.com/karthik9001/DataScience/pkg/config"
	"github.com/karthik9001/DataScience/pkg/metrics"
	"github.com/karthik9001/DataScience/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := logging.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer logger.Sync()

	catalog, err := feed.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		logger.Fatal("failed to load S&P 500 catalog", zap.Error(err))
	}

	var stockFeed feed.StockFeed
	switch cfg.StockProvider {
	case feed.StockProviderLocal:
		stockFeed = feed.NewLocalStockFeed(cfg.LocalDataDir)
	default:
		stockFeed = feed.NewYahooStockFeed(cfg.FetchTimeout)
	}

	svc := service.NewStockChartService(stockFeed, catalog, logger)
	handler := api.NewStockHandler(svc, logger, metrics.New("stockchart"))
	router := handler.SetupRoutes()

	logger.Info("starting stock chart server",
		zap.String("port", cfg.HTTPPort),
		zap.String("provider", cfg.StockProvider))
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
