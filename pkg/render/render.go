// Package render draws figures as static PNG images.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rhobs/launch-dash/pkg/figure"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 500

	// NoDataLabel labels the placeholder slice drawn for empty figures.
	NoDataLabel = "No data"
)

// ErrMixedTraces is returned for figures combining pie and scatter traces.
var ErrMixedTraces = errors.New("figure mixes pie and scatter traces")

// PNG writes fig to w as a PNG image. Non-positive dimensions fall back to
// DefaultWidth and DefaultHeight.
func PNG(fig figure.Figure, w io.Writer, width, height int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	if fig.IsEmpty() {
		return placeholder(fig.Layout.Title.Text, w, width, height)
	}

	kind := fig.Data[0].Type
	for _, trace := range fig.Data[1:] {
		if trace.Type != kind {
			return ErrMixedTraces
		}
	}

	switch kind {
	case figure.TraceTypePie:
		return pie(fig, w, width, height)
	case figure.TraceTypeScatter:
		return scatter(fig, w, width, height)
	default:
		return fmt.Errorf("unsupported trace type %q", kind)
	}
}

func pie(fig figure.Figure, w io.Writer, width, height int) error {
	trace := fig.Data[0]
	values := make([]chart.Value, 0, len(trace.Values))
	for i, v := range trace.Values {
		if v <= 0 {
			continue
		}
		label := ""
		if i < len(trace.Labels) {
			label = trace.Labels[i]
		}
		values = append(values, chart.Value{
			Value: v,
			Label: fmt.Sprintf("%s (%g)", label, v),
			Style: chart.Style{FillColor: color(i)},
		})
	}
	if len(values) == 0 {
		return placeholder(fig.Layout.Title.Text, w, width, height)
	}

	pc := chart.PieChart{
		Title:  fig.Layout.Title.Text,
		Width:  width,
		Height: height,
		Values: values,
	}
	if err := pc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render pie chart: %w", err)
	}
	return nil
}

func scatter(fig figure.Figure, w io.Writer, width, height int) error {
	series := make([]chart.Series, 0, len(fig.Data))
	xMin, xMax := math.Inf(1), math.Inf(-1)
	for i, trace := range fig.Data {
		if len(trace.X) == 0 {
			continue
		}
		col := color(i)
		if trace.Marker != nil && trace.Marker.Color != "" {
			col = drawing.ColorFromHex(strings.TrimPrefix(trace.Marker.Color, "#"))
		}
		for _, x := range trace.X {
			xMin = math.Min(xMin, x)
			xMax = math.Max(xMax, x)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    trace.Name,
			XValues: trace.X,
			YValues: trace.Y,
			Style:   pointStyle(col),
		})
	}
	if len(series) == 0 {
		return placeholder(fig.Layout.Title.Text, w, width, height)
	}

	// go-chart rejects zero-width ranges.
	if xMin == xMax {
		xMin, xMax = xMin-500, xMax+500
	}

	ch := chart.Chart{
		Title:      fig.Layout.Title.Text,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  axisTitle(fig.Layout.XAxis),
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  axisTitle(fig.Layout.YAxis),
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{
				{Value: -0.25, Label: ""},
				{Value: 0, Label: "0"},
				{Value: 1, Label: "1"},
				{Value: 1.25, Label: ""},
			},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render scatter chart: %w", err)
	}
	return nil
}

func placeholder(title string, w io.Writer, width, height int) error {
	pc := chart.PieChart{
		Title:  title,
		Width:  width,
		Height: height,
		Values: []chart.Value{{
			Value: 1,
			Label: NoDataLabel,
			Style: chart.Style{FillColor: drawing.ColorFromHex("e5e5e5")},
		}},
	}
	if err := pc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render placeholder chart: %w", err)
	}
	return nil
}

// pointStyle renders points only, with no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

func color(i int) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(figure.Palette[i%len(figure.Palette)], "#"))
}

func axisTitle(a *figure.Axis) string {
	if a == nil {
		return ""
	}
	return a.Title.Text
}
