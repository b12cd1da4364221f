package model

import "time"

// StockChart bundles the normalized bars for one ticker with the
// metadata the presentation layer needs to label the figure.
type StockChart struct {
	MetaData *MetaData  `json:"meta_data"`
	Bars     []StockBar `json:"bars"`
}

type MetaData struct {
	Symbol        string    `json:"symbol"`
	Company       string    `json:"company"`
	LastRefreshed time.Time `json:"last_refreshed"`
	TimeZone      string    `json:"time_zone"`
}

// StockBar represents one trading day for one ticker. Bars are value
// records: once the normalizer emits them they are never mutated.
type StockBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Up reports whether the bar closed at or above its open.
func (b StockBar) Up() bool {
	return b.Close >= b.Open
}

// Valid checks the OHLC ordering invariant and field ranges.
func (b StockBar) Valid() bool {
	if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
		return false
	}
	if b.Volume < 0 {
		return false
	}
	lo, hi := b.Open, b.Close
	if lo > hi {
		lo, hi = hi, lo
	}
	return b.Low <= lo && hi <= b.High
}
