package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/karthik9001/DataScience/chart"
	"github.com/karthik9001/DataScience/feed"
	"github.com/karthik9001/DataScience/model"
	"github.com/karthik9001/DataScience/normalize"
)

type QuakeMapService struct {
	feed   feed.QuakeFeed
	region model.Region
	logger *zap.Logger
}

func NewQuakeMapService(f feed.QuakeFeed, region model.Region, logger *zap.Logger) *QuakeMapService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuakeMapService{feed: f, region: region, logger: logger}
}

// Places lists the distinct place labels currently in the feed so the
// page can offer a region selector. Errors degrade to an empty list.
func (s *QuakeMapService) Places(ctx context.Context) []string {
	raw, err := s.feed.DownloadQuakes(ctx)
	if err != nil {
		s.logger.Warn("quake feed fetch failed while listing places", zap.Error(err))
		return nil
	}
	events, _, err := normalize.Quakes(raw, s.region)
	if err != nil {
		return nil
	}
	seen := make(map[string]bool, len(events))
	places := make([]string, 0, len(events))
	for _, ev := range events {
		if ev.Place == "" || seen[ev.Place] {
			continue
		}
		seen[ev.Place] = true
		places = append(places, ev.Place)
	}
	return places
}

// BuildEarthquakeMap runs the full pipeline and always returns a
// renderable document. An optional region query narrows the markers by
// place label, case-insensitively.
func (s *QuakeMapService) BuildEarthquakeMap(ctx context.Context, regionQuery string, theme chart.Theme) chart.Document {
	title := "Recent North America Earthquakes Tracker"

	raw, err := s.feed.DownloadQuakes(ctx)
	if err != nil {
		s.logger.Error("quake feed fetch failed", zap.Error(err))
		return chart.NoData{Title: title, Detail: "source unavailable", Theme: theme}
	}

	events, dropped, err := normalize.Quakes(raw, s.region)
	if dropped > 0 {
		s.logger.Info("dropped malformed quake features",
			zap.Int("dropped", dropped),
			zap.Int("kept", len(events)))
	}
	if err != nil {
		if !errors.Is(err, normalize.ErrEmptyDataset) {
			s.logger.Error("normalization failed", zap.Error(err))
		}
		return chart.NoData{Title: title, Theme: theme}
	}

	events = normalize.FilterByPlace(events, regionQuery)
	// A filter that matches nothing still renders a valid empty map.
	return chart.QuakeMap(events, theme)
}
