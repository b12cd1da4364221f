package api

import "html/template"

type stockOption struct {
	Symbol string
	Label  string
}

type stockIndexData struct {
	Options  []stockOption
	Selected string
	From     string
	To       string
}

type quakeIndexData struct {
	Places   []string
	Selected string
}

const pageStyle = `
.center-text { text-align: center; }
body.day-mode { background-color: white; color: black; }
body.night-mode { background-color: black; color: white; }
.btn-toggle {
  position: fixed; top: 10px; right: 10px; padding: 10px;
  background-color: #f0f0f0; border: none; cursor: pointer; border-radius: 5px;
}
.btn-toggle.night-mode { background-color: #303030; color: white; }
.controls { text-align: center; margin: 1em; }
iframe.figure { display: block; margin: 0 auto; border: none; width: 1240px; height: 680px; }
`

const toggleScript = `
function toggleMode() {
  const body = document.body;
  const button = document.getElementById('mode-toggle-btn');
  const isNightMode = body.classList.toggle('night-mode');
  button.innerText = isNightMode ? 'Switch to Day Mode' : 'Switch to Night Mode';
  button.classList.toggle('night-mode', isNightMode);
  reloadFigure();
}
function themeParam() {
  return document.body.classList.contains('night-mode') ? 'night' : 'day';
}
`

var stockIndexTmpl = template.Must(template.New("stock-index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>S&amp;P 500 Stock - Daily Candlestick Chart</title>
<style>` + pageStyle + `</style>
<script>` + toggleScript + `
function reloadFigure() {
  const ticker = document.getElementById('ticker').value;
  const from = document.getElementById('from').value;
  const to = document.getElementById('to').value;
  document.getElementById('figure').src =
    '/chart?ticker=' + encodeURIComponent(ticker) +
    '&from=' + from + '&to=' + to + '&theme=' + themeParam();
}
</script>
</head>
<body class="day-mode">
<button id="mode-toggle-btn" class="btn-toggle" onclick="toggleMode()">Switch to Night Mode</button>
<h2 class="center-text">S&amp;P 500 Stock - Daily Candlestick Chart</h2>
<h6 class="center-text">This chart shows the market's open, high, low, and close prices for the day.</h6>
<h6 class="center-text">This is supported by Yahoo! Finance's API.</h6>
<div class="controls">
<label for="ticker">Select Stock Ticker:</label>
<select id="ticker" onchange="reloadFigure()">
{{- range .Options}}
<option value="{{.Symbol}}"{{if eq .Symbol $.Selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
<label for="from">Select Date Range:</label>
<input type="date" id="from" value="{{.From}}" onchange="reloadFigure()">
<input type="date" id="to" value="{{.To}}" onchange="reloadFigure()">
</div>
<iframe id="figure" class="figure" src="/chart?ticker={{.Selected}}&from={{.From}}&to={{.To}}"></iframe>
</body>
</html>
`))

var quakeIndexTmpl = template.Must(template.New("quake-index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Recent North America Earthquakes Tracker</title>
<style>` + pageStyle + `</style>
<script>` + toggleScript + `
function reloadFigure() {
  const region = document.getElementById('region').value;
  document.getElementById('figure').src =
    '/map?region=' + encodeURIComponent(region) + '&theme=' + themeParam();
}
</script>
</head>
<body class="day-mode">
<button id="mode-toggle-btn" class="btn-toggle" onclick="toggleMode()">Switch to Night Mode</button>
<h2 class="center-text">Recent North America Earthquakes Tracker</h2>
<h6 class="center-text">This is supported by USGS API.</h6>
<div class="controls">
<label for="region">Select Region:</label>
<select id="region" onchange="reloadFigure()">
<option value="">All regions</option>
{{- range .Places}}
<option value="{{.}}"{{if eq . $.Selected}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
</div>
<iframe id="figure" class="figure" src="/map?region={{.Selected}}"></iframe>
</body>
</html>
`))
