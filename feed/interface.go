package feed

import (
	"context"
	"errors"
	"time"
)

const (
	StockProviderYahoo = "yahoo"
	StockProviderLocal = "local"

	QuakeProviderUSGS  = "usgs"
	QuakeProviderLocal = "local"
)

// ErrSourceUnavailable wraps every failure to reach or parse a data
// source. Callers render a "no data" state instead of failing the
// request.
var ErrSourceUnavailable = errors.New("data source unavailable")

// StockFeed downloads raw daily OHLCV data for a ticker. The returned
// chart keeps the source's optional fields as pointers so the
// normalizer can reject incomplete bars explicitly.
type StockFeed interface {
	DownloadDailyBars(ctx context.Context, symbol string, start, end time.Time) (*RawChart, error)
}

// QuakeFeed downloads the raw recent-earthquake feed.
type QuakeFeed interface {
	DownloadQuakes(ctx context.Context) (*RawQuakeFeed, error)
}

// RawChart mirrors the Yahoo Finance v8 chart response. Quote arrays
// carry nulls for market holidays, so every price decodes into a
// pointer.
type RawChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol           string `json:"symbol"`
				ExchangeTimezone string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// RawQuakeFeed mirrors the USGS GeoJSON summary feed: one feature per
// event, magnitude and time under properties, [lon, lat, depth] under
// geometry.
type RawQuakeFeed struct {
	Features []RawQuakeFeature `json:"features"`
}

type RawQuakeFeature struct {
	ID         string `json:"id"`
	Properties struct {
		Place string   `json:"place"`
		Mag   *float64 `json:"mag"`
		Time  *int64   `json:"time"` // epoch milliseconds
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}
