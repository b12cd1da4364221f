package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// localStockFeed serves raw chart data from JSON files on disk, one
// file per symbol, in the same shape the Yahoo API returns. Used for
// development and for air-gapped deployments.
type localStockFeed struct {
	dir string
}

func NewLocalStockFeed(dir string) StockFeed {
	return &localStockFeed{dir: dir}
}

func (s *localStockFeed) DownloadDailyBars(_ context.Context, symbol string, _, _ time.Time) (*RawChart, error) {
	fileName := filepath.Join(s.dir, fmt.Sprintf("%s.json", symbol))
	data, err := os.ReadFile(fileName)
	if err != nil {
		zap.L().Error("local chart file unreadable", zap.String("file", fileName), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	var chart RawChart
	if err := json.Unmarshal(data, &chart); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrSourceUnavailable, fileName, err)
	}
	return &chart, nil
}

// localQuakeFeed serves a saved USGS GeoJSON document from disk.
type localQuakeFeed struct {
	path string
}

func NewLocalQuakeFeed(path string) QuakeFeed {
	return &localQuakeFeed{path: path}
}

func (s *localQuakeFeed) DownloadQuakes(_ context.Context) (*RawQuakeFeed, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		zap.L().Error("local quake file unreadable", zap.String("file", s.path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	var raw RawQuakeFeed
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrSourceUnavailable, s.path, err)
	}
	return &raw, nil
}
