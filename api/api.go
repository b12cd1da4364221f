// Package api is the presentation layer: gin routers serving the
// selector pages and the rendered chart documents produced by the
// service package.
package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karthik9001/DataScience/chart"
	"github.com/karthik9001/DataScience/pkg/metrics"
)

const (
	DefaultTimeout      = 30 * time.Second
	RequestIDContextKey = "request_id"
	RequestIDHeaderKey  = "X-Request-ID"
)

// StockChartBuilder is the boundary the stock app exposes to this layer.
type StockChartBuilder interface {
	Symbols() []string
	Company(symbol string) (string, bool)
	BuildStockChart(ctx context.Context, ticker string, from, to time.Time, theme chart.Theme) chart.Document
}

// QuakeMapBuilder is the boundary the earthquake app exposes to this layer.
type QuakeMapBuilder interface {
	Places(ctx context.Context) []string
	BuildEarthquakeMap(ctx context.Context, region string, theme chart.Theme) chart.Document
}

// StockHandler serves the S&P 500 candlestick application.
type StockHandler struct {
	svc     StockChartBuilder
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewStockHandler(svc StockChartBuilder, logger *zap.Logger, m *metrics.Metrics) *StockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockHandler{svc: svc, logger: logger, metrics: m}
}

func (h *StockHandler) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestIDMiddleware())
	r.Use(zapLoggerMiddleware(h.logger))
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	if h.metrics != nil {
		r.Use(h.metrics.Middleware())
		r.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	r.GET("/", h.IndexPage)
	r.GET("/chart", h.Chart)
	r.GET("/healthz", healthCheck("sp500-candlestick"))
	return r
}

// QuakeHandler serves the earthquake map application.
type QuakeHandler struct {
	svc     QuakeMapBuilder
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewQuakeHandler(svc QuakeMapBuilder, logger *zap.Logger, m *metrics.Metrics) *QuakeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuakeHandler{svc: svc, logger: logger, metrics: m}
}

func (h *QuakeHandler) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestIDMiddleware())
	r.Use(zapLoggerMiddleware(h.logger))
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	if h.metrics != nil {
		r.Use(h.metrics.Middleware())
		r.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	r.GET("/", h.IndexPage)
	r.GET("/map", h.Map)
	r.GET("/healthz", healthCheck("earthquake-map"))
	return r
}
