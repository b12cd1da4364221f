package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYahooConstructURL(t *testing.T) {
	y := &yahooFeed{client: http.DefaultClient}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	u := y.constructURL("AAPL", start, end)
	assert.Contains(t, u, "/v8/finance/chart/AAPL")
	assert.Contains(t, u, "interval=1d")
	assert.Contains(t, u, "period1=1704067200")
	assert.Contains(t, u, "period2=1717200000")
}

func TestUSGSDownloadQuakes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features": [{
			"id": "ak1",
			"properties": {"place": "Alaska", "mag": 4.0, "time": 1717243200000},
			"geometry": {"coordinates": [-150.0, 61.0, 10.0]}
		}]}`))
	}))
	defer srv.Close()

	f := &usgsFeed{client: srv.Client(), url: srv.URL}
	raw, err := f.DownloadQuakes(context.Background())
	require.NoError(t, err)
	require.Len(t, raw.Features, 1)
	assert.Equal(t, "ak1", raw.Features[0].ID)
	require.NotNil(t, raw.Features[0].Properties.Mag)
	assert.Equal(t, 4.0, *raw.Features[0].Properties.Mag)
}

func TestUSGSDownloadQuakesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "offline", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := &usgsFeed{client: srv.Client(), url: srv.URL}
	_, err := f.DownloadQuakes(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestLocalStockFeed(t *testing.T) {
	dir := t.TempDir()
	doc := `{
		"chart": {
			"result": [{
				"meta": {"symbol": "AAPL"},
				"timestamp": [1704067200],
				"indicators": {"quote": [{
					"open": [100], "high": [105], "low": [99],
					"close": [102], "volume": [1000]
				}]}
			}],
			"error": null
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AAPL.json"), []byte(doc), 0o644))

	f := NewLocalStockFeed(dir)
	raw, err := f.DownloadDailyBars(context.Background(), "AAPL", time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, raw.Chart.Result, 1)
	assert.Equal(t, "AAPL", raw.Chart.Result[0].Meta.Symbol)

	_, err = f.DownloadDailyBars(context.Background(), "MSFT", time.Time{}, time.Time{})
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestLocalQuakeFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quakes.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"features": []}`), 0o644))

	f := NewLocalQuakeFeed(path)
	raw, err := f.DownloadQuakes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, raw.Features)

	missing := NewLocalQuakeFeed(filepath.Join(t.TempDir(), "nope.geojson"))
	_, err = missing.DownloadQuakes(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestYahooParseAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}}}`))
	}))
	defer srv.Close()

	y := &yahooFeed{client: srv.Client()}
	resp, err := y.makeHTTPRequest(context.Background(), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	_, err = y.parseResponse(resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.True(t, strings.Contains(err.Error(), "delisted"))
}
