package model

import "time"

// EarthquakeEvent represents one seismic event from the USGS feed.
// Like StockBar, events are read-only once normalized.
type EarthquakeEvent struct {
	ID        string    `json:"id"`
	Place     string    `json:"place"`
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Magnitude float64   `json:"magnitude"`
	Depth     float64   `json:"depth"` // kilometers
}

// Valid checks the coordinate and magnitude ranges.
func (e EarthquakeEvent) Valid() bool {
	if e.Latitude < -90 || e.Latitude > 90 {
		return false
	}
	if e.Longitude < -180 || e.Longitude > 180 {
		return false
	}
	if e.Magnitude < 0 {
		return false
	}
	return !e.Time.IsZero()
}

// Region is a latitude/longitude bounding box used to scope the map.
type Region struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}

// Contains reports whether the event falls inside the box.
func (r Region) Contains(e EarthquakeEvent) bool {
	return e.Latitude >= r.MinLatitude && e.Latitude <= r.MaxLatitude &&
		e.Longitude >= r.MinLongitude && e.Longitude <= r.MaxLongitude
}

// NorthAmerica is the bounding box the map application displays.
var NorthAmerica = Region{
	MinLatitude:  5,
	MaxLatitude:  83,
	MinLongitude: -180,
	MaxLongitude: -50,
}
