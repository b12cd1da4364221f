package chart

import (
	"html/template"
	"io"
)

var noDataTmpl = template.Must(template.New("nodata").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title>
<style>
body.day-mode { background-color: white; color: black; }
body.night-mode { background-color: black; color: white; }
.nodata { text-align: center; margin-top: 15%; font-family: sans-serif; }
.nodata h2 { margin-bottom: 0.3em; }
.nodata p { color: #888; }
</style>
</head>
<body class="{{.BodyClass}}">
<div class="nodata">
<h2>{{.Title}}</h2>
<p>No data available{{if .Detail}}: {{.Detail}}{{end}}.</p>
</div>
</body>
</html>
`))

// NoData is the placeholder rendered when the pipeline has nothing to
// plot — either the source was unreachable or zero valid records
// remained after normalization.
type NoData struct {
	Title  string
	Detail string
	Theme  Theme
}

func (n NoData) Render(w io.Writer) error {
	bodyClass := "day-mode"
	if n.Theme == ThemeNight {
		bodyClass = "night-mode"
	}
	return noDataTmpl.Execute(w, struct {
		Title     string
		Detail    string
		BodyClass string
	}{n.Title, n.Detail, bodyClass})
}
