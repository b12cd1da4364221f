package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik9001/DataScience/model"
)

func TestQuakeMapRendersMarkers(t *testing.T) {
	events := []model.EarthquakeEvent{
		{
			ID:        "ak1",
			Place:     "63 km SE of Denali Park, Alaska",
			Time:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			Latitude:  63.1,
			Longitude: -150.9,
			Magnitude: 4.2,
			Depth:     88.3,
		},
		{
			ID:        "ca1",
			Place:     "Southern California",
			Time:      time.Date(2024, 6, 2, 3, 30, 0, 0, time.UTC),
			Latitude:  34.2,
			Longitude: -117.5,
			Magnitude: 2.1,
			Depth:     7.9,
		},
	}

	doc := QuakeMap(events, ThemeDay)
	require.NotNil(t, doc)

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	html := buf.String()

	assert.Contains(t, html, "Denali Park")
	assert.Contains(t, html, "Southern California")
	assert.Contains(t, html, "Magnitude: 4.2")
	assert.Contains(t, html, "Depth: 88.3 km")
}

func TestQuakeMapEmptyIsValidDocument(t *testing.T) {
	doc := QuakeMap(nil, ThemeNight)
	require.NotNil(t, doc)

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.NotEmpty(t, buf.String())
}

func TestNoDataPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	doc := NoData{Title: "Test Chart", Detail: "source unavailable", Theme: ThemeNight}
	require.NoError(t, doc.Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "No data available")
	assert.Contains(t, html, "source unavailable")
	assert.Contains(t, html, "night-mode")
}
