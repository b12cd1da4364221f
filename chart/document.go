// Package chart turns normalized record sequences into self-contained
// renderable HTML documents. Builders perform no I/O; every fetch and
// parse happens upstream in the feed and normalize packages.
package chart

import "io"

// Document is a fully self-contained renderable visualization,
// consumed by the web layer. Both go-echarts charts and the no-data
// placeholder satisfy it.
type Document interface {
	Render(w io.Writer) error
}

// Theme selects the page rendering mode.
type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

func (t Theme) echarts() string {
	if t == ThemeNight {
		return "dark"
	}
	return "white"
}
