package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	financeYahooURL = "https://query2.finance.yahoo.com/v8/finance/chart/%s?interval=1d"
	periodString    = "&period1=%d&period2=%d"
	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/91.0.4472.124"
)

type yahooFeed struct {
	client *http.Client
}

// NewYahooStockFeed returns a StockFeed backed by the public Yahoo
// Finance chart API.
func NewYahooStockFeed(timeout time.Duration) StockFeed {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &yahooFeed{client: &http.Client{Timeout: timeout}}
}

// DownloadDailyBars fetches raw daily OHLCV data for a ticker from Yahoo Finance.
func (y *yahooFeed) DownloadDailyBars(ctx context.Context, symbol string, start, end time.Time) (*RawChart, error) {
	resp, err := y.makeHTTPRequest(ctx, y.constructURL(symbol, start, end))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrSourceUnavailable, resp.StatusCode)
	}
	return y.parseResponse(resp)
}

func (y *yahooFeed) constructURL(symbol string, start, end time.Time) string {
	if end.IsZero() {
		end = time.Now().UTC()
	}
	u := fmt.Sprintf(financeYahooURL, url.PathEscape(symbol))
	u += fmt.Sprintf(periodString, start.Unix(), end.Unix())
	return u
}

func (y *yahooFeed) makeHTTPRequest(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return resp, nil
}

func (y *yahooFeed) parseResponse(resp *http.Response) (*RawChart, error) {
	var chart RawChart
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrSourceUnavailable, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: API error: %s", ErrSourceUnavailable, chart.Chart.Error.Description)
	}
	return &chart, nil
}
