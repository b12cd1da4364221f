package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/karthik9001/DataScience/model"
)

// viridisRamp colors markers by magnitude, low to high.
var viridisRamp = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}

// QuakeMap builds a geographic scatter of earthquake events. One marker
// per event at (longitude, latitude), colored as a monotonic function
// of magnitude, with place, magnitude, depth and UTC time in the
// tooltip. Zero events yield a valid empty map frame.
func QuakeMap(events []model.EarthquakeEvent, theme Theme) Document {
	geo := charts.NewGeo()

	maxMag := 10.0
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Recent North America Earthquakes Tracker",
			Width:     chartWidth,
			Height:    chartHeight,
			Theme:     theme.echarts(),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Recent North America Earthquakes Tracker",
			Subtitle: "Data: USGS monthly GeoJSON feed",
			Left:     "center",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map: "world",
			ItemStyle: &opts.ItemStyle{
				Color:       "rgb(243, 243, 243)",
				BorderColor: "rgb(217, 217, 217)",
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxMag),
			Text:       []string{"Magnitude", ""},
			InRange:    &opts.VisualMapInRange{Color: viridisRamp},
		}),
	)

	points := make([]opts.GeoData, 0, len(events))
	for _, ev := range events {
		points = append(points, opts.GeoData{
			Name: fmt.Sprintf("%s<br>Magnitude: %.1f<br>Depth: %.1f km<br>%s",
				ev.Place, ev.Magnitude, ev.Depth, ev.Time.Format("2006-01-02 15:04:05 UTC")),
			Value: []interface{}{ev.Longitude, ev.Latitude, ev.Magnitude},
		})
	}
	geo.AddSeries("earthquakes", types.ChartEffectScatter, points)
	return geo
}
