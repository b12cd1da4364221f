package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const usgsMonthlyFeedURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_month.geojson"

type usgsFeed struct {
	client *http.Client
	url    string
}

// NewUSGSQuakeFeed returns a QuakeFeed backed by the USGS monthly
// GeoJSON summary.
func NewUSGSQuakeFeed(timeout time.Duration) QuakeFeed {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &usgsFeed{
		client: &http.Client{Timeout: timeout},
		url:    usgsMonthlyFeedURL,
	}
}

// DownloadQuakes fetches the raw monthly earthquake feed.
func (u *usgsFeed) DownloadQuakes(ctx context.Context) (*RawQuakeFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var raw RawQuakeFeed
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrSourceUnavailable, err)
	}
	return &raw, nil
}
