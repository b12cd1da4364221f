// Package normalize converts raw feed documents into ordered, typed
// record sequences. Individual malformed records are dropped and
// counted; an input with no usable records at all is reported as
// ErrEmptyDataset so callers can render an explicit no-data state.
package normalize

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/karthik9001/DataScience/feed"
	"github.com/karthik9001/DataScience/model"
)

// ErrEmptyDataset signals that zero valid records remained after
// normalization. Distinct from a partial drop, which only increments
// the dropped count.
var ErrEmptyDataset = errors.New("no data available")

// StockBars flattens a raw Yahoo chart document into chronologically
// ordered bars. It returns the bars, the number of records dropped for
// failing validation, and ErrEmptyDataset when nothing valid remains.
func StockBars(raw *feed.RawChart) ([]model.StockBar, int, error) {
	if raw == nil || len(raw.Chart.Result) == 0 {
		return nil, 0, ErrEmptyDataset
	}
	result := raw.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, 0, ErrEmptyDataset
	}
	quote := result.Indicators.Quote[0]

	dropped := 0
	byDate := make(map[time.Time]model.StockBar, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		bar, ok := barAt(quote.Open, quote.High, quote.Low, quote.Close, quote.Volume, i)
		if !ok {
			dropped++
			continue
		}
		bar.Date = time.Unix(ts, 0).UTC().Truncate(24 * time.Hour)
		if !bar.Valid() {
			dropped++
			continue
		}
		// Duplicate dates for the same ticker: last write wins.
		byDate[bar.Date] = bar
	}

	if len(byDate) == 0 {
		return nil, dropped, ErrEmptyDataset
	}
	bars := make([]model.StockBar, 0, len(byDate))
	for _, bar := range byDate {
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, dropped, nil
}

func barAt(open, high, low, close []*float64, volume []*int64, i int) (model.StockBar, bool) {
	o, ok1 := priceAt(open, i)
	h, ok2 := priceAt(high, i)
	l, ok3 := priceAt(low, i)
	c, ok4 := priceAt(close, i)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return model.StockBar{}, false
	}
	var v int64
	if i < len(volume) && volume[i] != nil {
		v = *volume[i]
	}
	return model.StockBar{Open: o, High: h, Low: l, Close: c, Volume: v}, true
}

// priceAt rejects missing entries and the NaN/zero placeholders Yahoo
// uses for market holidays.
func priceAt(prices []*float64, i int) (float64, bool) {
	if i >= len(prices) || prices[i] == nil {
		return 0, false
	}
	p := *prices[i]
	if math.IsNaN(p) || p <= 0 {
		return 0, false
	}
	return p, true
}
