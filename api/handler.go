package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karthik9001/DataScience/chart"
)

const dateLayout = "2006-01-02"

func themeFrom(c *gin.Context) chart.Theme {
	if c.Query("theme") == string(chart.ThemeNight) {
		return chart.ThemeNight
	}
	return chart.ThemeDay
}

// IndexPage serves the ticker/date selector around an embedded chart.
func (h *StockHandler) IndexPage(c *gin.Context) {
	now := time.Now().UTC()
	entries := make([]stockOption, 0, len(h.svc.Symbols()))
	for _, sym := range h.svc.Symbols() {
		name, _ := h.svc.Company(sym)
		entries = append(entries, stockOption{Symbol: sym, Label: name + " - " + sym})
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	err := stockIndexTmpl.Execute(c.Writer, stockIndexData{
		Options:  entries,
		Selected: c.DefaultQuery("ticker", "AAPL"),
		From:     now.AddDate(-5, 0, 0).Format(dateLayout),
		To:       now.Format(dateLayout),
	})
	if err != nil {
		h.logger.Error("index template failed", zap.Error(err))
	}
}

// Chart renders the candlestick document for one ticker.
func (h *StockHandler) Chart(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	ticker := c.DefaultQuery("ticker", "AAPL")
	from, _ := time.Parse(dateLayout, c.Query("from"))
	to, _ := time.Parse(dateLayout, c.Query("to"))

	doc := h.svc.BuildStockChart(ctx, ticker, from, to, themeFrom(c))
	renderDocument(c, doc, h.logger)
}

// IndexPage serves the region selector around an embedded map.
func (h *QuakeHandler) IndexPage(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	err := quakeIndexTmpl.Execute(c.Writer, quakeIndexData{
		Places:   h.svc.Places(ctx),
		Selected: c.Query("region"),
	})
	if err != nil {
		h.logger.Error("index template failed", zap.Error(err))
	}
}

// Map renders the earthquake map document.
func (h *QuakeHandler) Map(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	doc := h.svc.BuildEarthquakeMap(ctx, c.Query("region"), themeFrom(c))
	renderDocument(c, doc, h.logger)
}

func contextWithTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), DefaultTimeout)
}

func renderDocument(c *gin.Context, doc chart.Document, logger *zap.Logger) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := doc.Render(c.Writer); err != nil {
		logger.Error("document render failed", zap.Error(err))
	}
}
