package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/karthik9001/DataScience/model"
)

const (
	upColor       = "#00da3c"
	downColor     = "#ec0000"
	chartWidth    = "1200px"
	chartHeight   = "620px"
	maxVisibleBar = 120
)

// Candlestick builds a daily candlestick chart for one ticker. Each bar
// becomes exactly one kline item, laid out chronologically — the
// normalizer guarantees one bar per date. A zero-length series yields a
// valid empty frame.
func Candlestick(data *model.StockChart, theme Theme) Document {
	kline := charts.NewKLine()

	title := "S&P 500 Stock - Daily Candlestick Chart"
	subtitle := ""
	if data.MetaData != nil {
		subtitle = fmt.Sprintf("Stock Price for %s - %s", data.MetaData.Company, data.MetaData.Symbol)
	}
	kline.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
			Theme:     theme.echarts(),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
			Left:     "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "Date",
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Stock Price (USD)",
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: zoomStart(len(data.Bars)),
			End:   100,
		}),
	)

	x := make([]string, 0, len(data.Bars))
	y := make([]opts.KlineData, 0, len(data.Bars))
	for _, bar := range data.Bars {
		x = append(x, bar.Date.Format("2006-01-02"))
		// ECharts kline value order is [open, close, low, high].
		y = append(y, opts.KlineData{Value: [4]float64{bar.Open, bar.Close, bar.Low, bar.High}})
	}

	seriesName := "market data"
	if data.MetaData != nil && data.MetaData.Symbol != "" {
		seriesName = data.MetaData.Symbol
	}
	kline.SetXAxis(x).AddSeries(seriesName, y,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:        upColor,
			Color0:       downColor,
			BorderColor:  upColor,
			BorderColor0: downColor,
		}),
	)
	return kline
}

// zoomStart keeps long histories readable by opening the view on the
// most recent bars.
func zoomStart(bars int) float32 {
	if bars <= maxVisibleBar {
		return 0
	}
	return 100 - float32(maxVisibleBar)/float32(bars)*100
}
