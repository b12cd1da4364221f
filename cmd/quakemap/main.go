package main

import (
	"go.uber.org/zap"

	"github.com/karthik9001/DataScience/api"
	"github.com/karthik9001/DataScience/feed"
	"github.com/karthik9001/DataScience/logging"
	"github.com/karthik9001/DataScience/model"
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

	var quakeFeed feed.QuakeFeed
	switch cfg.QuakeProvider {
	case feed.QuakeProviderLocal:
		quakeFeed = feed.NewLocalQuakeFeed(cfg.LocalQuakeFile)
	default:
		quakeFeed = feed.NewUSGSQuakeFeed(cfg.FetchTimeout)
	}

	svc := service.NewQuakeMapService(quakeFeed, model.NorthAmerica, logger)
	handler := api.NewQuakeHandler(svc, logger, metrics.New("quakemap"))
	router := handler.SetupRoutes()

	logger.Info("starting earthquake map server",
		zap.String("port", cfg.HTTPPort),
		zap.String("provider", cfg.QuakeProvider))
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
