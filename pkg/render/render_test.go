package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rhobs/launch-dash/pkg/callbacks"
	"github.com/rhobs/launch-dash/pkg/dataset/datasettest"
	"github.com/rhobs/launch-dash/pkg/figure"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestPNG(t *testing.T) {
	ds := datasettest.Sample(t)

	pieAll, err := callbacks.SuccessPie(ds, callbacks.AllSites)
	if err != nil {
		t.Fatalf("failed to build pie: %v", err)
	}
	scatterAll, err := callbacks.PayloadScatter(ds, callbacks.AllSites, 0, 10000)
	if err != nil {
		t.Fatalf("failed to build scatter: %v", err)
	}
	scatterOne, err := callbacks.PayloadScatter(ds, "CCAFS SLC-40", 9000, 10000)
	if err != nil {
		t.Fatalf("failed to build scatter: %v", err)
	}
	scatterNone, err := callbacks.PayloadScatter(ds, "KSC LC-39A", 6000, 7000)
	if err != nil {
		t.Fatalf("failed to build scatter: %v", err)
	}

	tests := []struct {
		name string
		fig  figure.Figure
	}{
		{name: "pie", fig: pieAll},
		{name: "scatter", fig: scatterAll},
		{name: "single point scatter", fig: scatterOne},
		{name: "empty scatter", fig: scatterNone},
		{name: "all zero pie", fig: figure.Pie("zero", []string{"a"}, []float64{0})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := PNG(tt.fig, &buf, 400, 300); err != nil {
				t.Fatalf("render failed: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
				t.Errorf("output is not a PNG image")
			}
		})
	}
}

func TestPNGErrors(t *testing.T) {
	mixed := figure.Figure{Data: []figure.Trace{
		{Type: figure.TraceTypePie, Labels: []string{"a"}, Values: []float64{1}},
		{Type: figure.TraceTypeScatter, X: []float64{1}, Y: []float64{1}},
	}}
	if err := PNG(mixed, &bytes.Buffer{}, 0, 0); !errors.Is(err, ErrMixedTraces) {
		t.Errorf("expected ErrMixedTraces, got %v", err)
	}

	unknown := figure.Figure{Data: []figure.Trace{{Type: "bar", X: []float64{1}}}}
	if err := PNG(unknown, &bytes.Buffer{}, 0, 0); err == nil {
		t.Error("expected error for unsupported trace type")
	}
}
