package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik9001/DataScience/chart"
	"github.com/karthik9001/DataScience/model"
)

type fakeStockService struct {
	lastTicker string
	lastTheme  chart.Theme
}

func (f *fakeStockService) Symbols() []string { return []string{"AAPL", "MSFT"} }

func (f *fakeStockService) Company(symbol string) (string, bool) {
	names := map[string]string{"AAPL": "Apple Inc.", "MSFT": "Microsoft Corporation"}
	name, ok := names[symbol]
	return name, ok
}

func (f *fakeStockService) BuildStockChart(_ context.Context, ticker string, _, _ time.Time, theme chart.Theme) chart.Document {
	f.lastTicker = ticker
	f.lastTheme = theme
	if _, ok := f.Company(ticker); !ok {
		return chart.NoData{Title: "test", Detail: "unknown ticker"}
	}
	return chart.Candlestick(&model.StockChart{
		MetaData: &model.MetaData{Symbol: ticker, Company: "Apple Inc."},
		Bars: []model.StockBar{{
			Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Open: 100, High: 105, Low: 99, Close: 102, Volume: 1000,
		}},
	}, theme)
}

type fakeQuakeService struct{}

func (f *fakeQuakeService) Places(context.Context) []string {
	return []string{"Alaska Peninsula", "Southern California"}
}

func (f *fakeQuakeService) BuildEarthquakeMap(_ context.Context, region string, theme chart.Theme) chart.Document {
	return chart.QuakeMap(nil, theme)
}

func TestStockIndexPage(t *testing.T) {
	h := NewStockHandler(&fakeStockService{}, nil, nil)
	router := h.SetupRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Apple Inc. - AAPL")
	assert.Contains(t, body, "Microsoft Corporation - MSFT")
	assert.Contains(t, body, "Switch to Night Mode")
}

func TestStockChartEndpoint(t *testing.T) {
	svc := &fakeStockService{}
	router := NewStockHandler(svc, nil, nil).SetupRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chart?ticker=MSFT&theme=night", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MSFT", svc.lastTicker)
	assert.Equal(t, chart.ThemeNight, svc.lastTheme)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.NotEmpty(t, w.Body.String())
}

func TestStockChartUnknownTickerStillRenders(t *testing.T) {
	router := NewStockHandler(&fakeStockService{}, nil, nil).SetupRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chart?ticker=ZZZZ", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No data available")
}

func TestQuakeIndexAndMap(t *testing.T) {
	router := NewQuakeHandler(&fakeQuakeService{}, nil, nil).SetupRoutes()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alaska Peninsula")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/map?region=alaska", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	router := NewStockHandler(&fakeStockService{}, nil, nil).SetupRoutes()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "sp500-candlestick", body["service"])
}

func TestRequestIDHeader(t *testing.T) {
	router := NewStockHandler(&fakeStockService{}, nil, nil).SetupRoutes()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeaderKey))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeaderKey, "fixed-id")
	router.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeaderKey))
}
