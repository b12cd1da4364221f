// Package service wires the loader, normalizer and builder into the
// two functions the web layer consumes. A failed fetch or an empty
// dataset turns into a placeholder document, never an error page.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/karthik9001/DataScience/chart"
	"github.com/karthik9001/DataScience/feed"
	"github.com/karthik9001/DataScience/model"
	"github.com/karthik9001/DataScience/normalize"
)

// DefaultLookback matches the original five-year date-range default.
const DefaultLookback = 5 * 365 * 24 * time.Hour

type StockChartService struct {
	feed    feed.StockFeed
	catalog *feed.Catalog
	logger  *zap.Logger
}

func NewStockChartService(f feed.StockFeed, catalog *feed.Catalog, logger *zap.Logger) *StockChartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockChartService{feed: f, catalog: catalog, logger: logger}
}

// Symbols exposes the selectable tickers for the page form.
func (s *StockChartService) Symbols() []string {
	return s.catalog.Symbols()
}

// Company returns the display name for a ticker.
func (s *StockChartService) Company(symbol string) (string, bool) {
	return s.catalog.Company(symbol)
}

// BuildStockChart runs the full pipeline for one ticker and always
// returns a renderable document. Unknown tickers, unreachable sources
// and empty datasets all map to the no-data placeholder.
func (s *StockChartService) BuildStockChart(ctx context.Context, ticker string, from, to time.Time, theme chart.Theme) chart.Document {
	title := "S&P 500 Stock - Daily Candlestick Chart"

	company, ok := s.catalog.Company(ticker)
	if !ok {
		s.logger.Warn("unknown ticker requested", zap.String("ticker", ticker))
		return chart.NoData{Title: title, Detail: "unknown ticker " + ticker, Theme: theme}
	}

	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.Add(-DefaultLookback)
	}

	raw, err := s.feed.DownloadDailyBars(ctx, ticker, from, to)
	if err != nil {
		s.logger.Error("stock feed fetch failed", zap.String("ticker", ticker), zap.Error(err))
		return chart.NoData{Title: title, Detail: "source unavailable", Theme: theme}
	}

	bars, dropped, err := normalize.StockBars(raw)
	if dropped > 0 {
		s.logger.Info("dropped malformed bars",
			zap.String("ticker", ticker),
			zap.Int("dropped", dropped),
			zap.Int("kept", len(bars)))
	}
	if err != nil {
		if !errors.Is(err, normalize.ErrEmptyDataset) {
			s.logger.Error("normalization failed", zap.String("ticker", ticker), zap.Error(err))
		}
		return chart.NoData{Title: title, Detail: "no bars for " + ticker, Theme: theme}
	}

	return chart.Candlestick(&model.StockChart{
		MetaData: &model.MetaData{
			Symbol:        ticker,
			Company:       company,
			LastRefreshed: bars[len(bars)-1].Date,
			TimeZone:      "UTC",
		},
		Bars: bars,
	}, theme)
}
