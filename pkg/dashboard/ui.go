package dashboard

import (
	_ "embed"
	"strings"

	"github.com/rhobs/launch-dash/pkg/layout"
)

const plotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

//go:embed ui/index.html
var indexTemplate string

//go:embed ui/styles.css
var indexStyles string

//go:embed ui/app.js
var indexApp string

var indexHTML = buildIndexHTML()

func buildIndexHTML() string {
	r := strings.NewReplacer(
		"{{TITLE}}", layout.Title,
		"{{PLOTLY_URL}}", plotlyURL,
		"{{STYLES}}", indexStyles,
		"{{APP}}", indexApp,
	)
	return r.Replace(indexTemplate)
}
