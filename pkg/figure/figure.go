package figure

import (
	"fmt"
	"strings"
)

// Trace types understood by the browser charting library.
const (
	TraceTypePie     = "pie"
	TraceTypeScatter = "scatter"
)

// Figure is a chart specification in the JSON shape Plotly.js accepts for
// Plotly.react(element, figure.data, figure.layout).
type Figure struct {
	Data   []Trace `json:"data" jsonschema:"description=Chart traces; one per pie or per scatter color group"`
	Layout Layout  `json:"layout" jsonschema:"description=Chart layout including the title and axis labels"`
}

// Trace is one series of a figure. Pie traces use Labels/Values; scatter
// traces use X/Y.
type Trace struct {
	Type          string     `json:"type" jsonschema:"description=Trace type (pie or scatter)"`
	Name          string     `json:"name,omitempty" jsonschema:"description=Legend name of the trace"`
	Labels        []string   `json:"labels,omitempty" jsonschema:"description=Pie slice labels"`
	Values        []float64  `json:"values,omitempty" jsonschema:"description=Pie slice values"`
	X             []float64  `json:"x,omitempty" jsonschema:"description=Scatter x values"`
	Y             []float64  `json:"y,omitempty" jsonschema:"description=Scatter y values"`
	Mode          string     `json:"mode,omitempty" jsonschema:"description=Scatter drawing mode"`
	CustomData    [][]string `json:"customdata,omitempty" jsonschema:"description=Per-point hover columns"`
	HoverTemplate string     `json:"hovertemplate,omitempty" jsonschema:"description=Hover label template"`
	Marker        *Marker    `json:"marker,omitempty" jsonschema:"description=Marker styling"`
	LegendGroup   string     `json:"legendgroup,omitempty" jsonschema:"description=Legend group of the trace"`
}

// Marker styles scatter points.
type Marker struct {
	Color  string `json:"color,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// Layout holds figure-level settings.
type Layout struct {
	Title  Title   `json:"title"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
}

// Title is a Plotly title object.
type Title struct {
	Text string `json:"text"`
}

// Axis configures a cartesian axis.
type Axis struct {
	Title Title `json:"title"`
}

// Legend configures the legend box.
type Legend struct {
	Title Title `json:"title"`
}

// Palette is the qualitative color sequence assigned to scatter groups in
// order. It matches Plotly's default colorway.
var Palette = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Pie builds a single-trace pie figure. names and values must be the same
// length.
func Pie(title string, names []string, values []float64) Figure {
	return Figure{
		Data: []Trace{{
			Type:   TraceTypePie,
			Labels: names,
			Values: values,
		}},
		Layout: Layout{Title: Title{Text: title}},
	}
}

// Point is one scatter point with the columns shown on hover.
type Point struct {
	X     float64
	Y     float64
	Hover []string
}

// Group is a set of scatter points sharing a color.
type Group struct {
	Name   string
	Points []Point
}

// ScatterOptions describe axis and hover labelling of a scatter figure.
type ScatterOptions struct {
	Title       string
	XLabel      string
	YLabel      string
	ColorLabel  string
	HoverLabels []string
}

// Scatter builds a marker-only scatter figure with one trace per group.
func Scatter(opts ScatterOptions, groups []Group) Figure {
	fig := Figure{
		Data: make([]Trace, 0, len(groups)),
		Layout: Layout{
			Title: Title{Text: opts.Title},
			XAxis: &Axis{Title: Title{Text: opts.XLabel}},
			YAxis: &Axis{Title: Title{Text: opts.YLabel}},
		},
	}
	if opts.ColorLabel != "" {
		fig.Layout.Legend = &Legend{Title: Title{Text: opts.ColorLabel}}
	}

	template := hoverTemplate(opts)
	for i, g := range groups {
		trace := Trace{
			Type:          TraceTypeScatter,
			Name:          g.Name,
			Mode:          "markers",
			LegendGroup:   g.Name,
			X:             make([]float64, 0, len(g.Points)),
			Y:             make([]float64, 0, len(g.Points)),
			HoverTemplate: template,
			Marker: &Marker{
				Color:  Palette[i%len(Palette)],
				Symbol: "circle",
			},
		}
		for _, p := range g.Points {
			trace.X = append(trace.X, p.X)
			trace.Y = append(trace.Y, p.Y)
			if len(opts.HoverLabels) > 0 {
				trace.CustomData = append(trace.CustomData, p.Hover)
			}
		}
		fig.Data = append(fig.Data, trace)
	}

	return fig
}

// hoverTemplate mirrors the hover label plotly express generates:
// color group, x, y, then each hover column from customdata.
func hoverTemplate(opts ScatterOptions) string {
	var lines []string
	if opts.ColorLabel != "" {
		lines = append(lines, fmt.Sprintf("%s=%%{fullData.name}", opts.ColorLabel))
	}
	lines = append(lines,
		fmt.Sprintf("%s=%%{x}", opts.XLabel),
		fmt.Sprintf("%s=%%{y}", opts.YLabel),
	)
	for i, label := range opts.HoverLabels {
		lines = append(lines, fmt.Sprintf("%s=%%{customdata[%d]}", label, i))
	}
	return strings.Join(lines, "<br>") + "<extra></extra>"
}

// IsEmpty reports whether the figure has no plottable values.
func (f Figure) IsEmpty() bool {
	for _, t := range f.Data {
		if len(t.Values) > 0 || len(t.X) > 0 {
			return false
		}
	}
	return true
}
