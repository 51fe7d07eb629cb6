package mcp

import (
	_ "embed"
	"strings"
)

// plotlyURL must match the version the dashboard page loads.
const plotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

//go:embed ui/chart.html
var chartTemplate string

//go:embed ui/styles.css
var chartStyles string

//go:embed ui/app.js
var chartApp string

var chartHTML = buildChartHTML()

func buildChartHTML() string {
	r := strings.NewReplacer(
		"{{STYLES}}", chartStyles,
		"{{PLOTLY_URL}}", plotlyURL,
		"{{APP}}", chartApp,
	)
	return r.Replace(chartTemplate)
}
