package dashboard

import "html/template"

// Column picks one flat-row key for display.
type Column struct {
	Key   string
	Label string
}

type page struct {
	Title    string
	Season   int
	Years    []int
	Columns  []Column
	Rows     []map[string]any
	ChartURL string
	Warning  string
	Live     bool
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} - F1 Analytics</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #111; }
nav a { margin-right: 1em; }
table { border-collapse: collapse; margin-top: 1em; }
th, td { border: 1px solid #999; padding: 4px 10px; text-align: left; }
th { background: #eee; }
.warning { background: #fff3cd; border: 1px solid #d4b106; padding: 1em; margin-top: 1em; }
.nodata { color: #666; margin-top: 1em; }
img.chart { margin-top: 1em; border: 1px solid #ccc; }
</style>
</head>
<body>
<nav>
<a href="/">Seasons</a>
<a href="/standings/drivers">Drivers</a>
<a href="/standings/teams">Constructors</a>
<a href="/calendar">Calendar</a>
</nav>
<h1>{{.Title}}</h1>
{{if .Years}}
<form method="get">
<label>Season:
<select name="season" onchange="this.form.submit()">
{{$season := .Season}}
{{range .Years}}<option value="{{.}}"{{if eq . $season}} selected{{end}}>{{.}}</option>
{{end}}
</select>
</label>
</form>
{{end}}
{{if .Warning}}
<div class="warning">{{.Warning}}</div>
{{else if not .Rows}}
<p class="nodata">No data to display.</p>
{{else}}
<table>
<tr>{{range .Columns}}<th>{{.Label}}</th>{{end}}</tr>
{{$columns := .Columns}}
{{range .Rows}}
{{$row := .}}
<tr>{{range $columns}}<td>{{index $row .Key}}</td>{{end}}</tr>
{{end}}
</table>
{{end}}
{{if .ChartURL}}
<img class="chart" src="{{.ChartURL}}" alt="chart">
{{end}}
{{if .Live}}
<p id="live-note">live updates off</p>
<script>
(function() {
  var note = document.getElementById("live-note");
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws/standings");
  ws.onopen = function() { note.textContent = "live updates on"; };
  ws.onmessage = function() { location.reload(); };
  ws.onclose = function() { note.textContent = "live updates off"; };
})();
</script>
{{end}}
</body>
</html>
`))
