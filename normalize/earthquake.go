package normalize

import (
	"sort"
	"strings"
	"time"

	"github.com/karthik9001/DataScience/feed"
	"github.com/karthik9001/DataScience/model"
)

// Quakes converts raw USGS features inside the given region into
// events ordered most recent first. It returns the events, the number
// of features dropped for failing validation, and ErrEmptyDataset when
// nothing valid remains. Features outside the region are filtered, not
// counted as drops.
func Quakes(raw *feed.RawQuakeFeed, region model.Region) ([]model.EarthquakeEvent, int, error) {
	if raw == nil || len(raw.Features) == 0 {
		return nil, 0, ErrEmptyDataset
	}

	dropped := 0
	seen := make(map[string]bool, len(raw.Features))
	events := make([]model.EarthquakeEvent, 0, len(raw.Features))
	for _, f := range raw.Features {
		ev, ok := eventFrom(f)
		if !ok {
			dropped++
			continue
		}
		// Duplicate feature IDs: first occurrence wins.
		if ev.ID != "" && seen[ev.ID] {
			continue
		}
		seen[ev.ID] = true
		if !region.Contains(ev) {
			continue
		}
		events = append(events, ev)
	}

	if len(events) == 0 {
		return nil, dropped, ErrEmptyDataset
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Time.After(events[j].Time) })
	return events, dropped, nil
}

func eventFrom(f feed.RawQuakeFeature) (model.EarthquakeEvent, bool) {
	if f.Properties.Mag == nil || f.Properties.Time == nil {
		return model.EarthquakeEvent{}, false
	}
	if len(f.Geometry.Coordinates) < 3 {
		return model.EarthquakeEvent{}, false
	}
	ev := model.EarthquakeEvent{
		ID:        f.ID,
		Place:     f.Properties.Place,
		Time:      time.UnixMilli(*f.Properties.Time).UTC(),
		Longitude: f.Geometry.Coordinates[0],
		Latitude:  f.Geometry.Coordinates[1],
		Depth:     f.Geometry.Coordinates[2],
		Magnitude: *f.Properties.Mag,
	}
	return ev, ev.Valid()
}

// FilterByPlace keeps events whose place label contains the query,
// case-insensitively. An empty query keeps everything.
func FilterByPlace(events []model.EarthquakeEvent, query string) []model.EarthquakeEvent {
	if query == "" {
		return events
	}
	q := strings.ToLower(query)
	out := make([]model.EarthquakeEvent, 0, len(events))
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Place), q) {
			out = append(out, ev)
		}
	}
	return out
}
