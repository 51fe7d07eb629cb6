package layout

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rhobs/launch-dash/pkg/callbacks"
	"github.com/rhobs/launch-dash/pkg/dataset/datasettest"
)

func TestBuild(t *testing.T) {
	ds := datasettest.Sample(t)
	root := Build(ds, Options{})

	wantTypes := []string{TypeH1, TypeDropdown, TypeBr, TypeDiv, TypeBr, TypeP, TypeRangeSlider, TypeBr, TypeDiv}
	gotTypes := make([]string, 0, len(root.Children))
	for _, c := range root.Children {
		gotTypes = append(gotTypes, c.Type)
	}
	if !slices.Equal(gotTypes, wantTypes) {
		t.Fatalf("child types = %v, want %v", gotTypes, wantTypes)
	}

	title := root.Children[0]
	if title.Props["children"] != Title {
		t.Errorf("unexpected title %v", title.Props["children"])
	}

	dropdown, ok := root.Find(callbacks.SiteDropdownID)
	if !ok {
		t.Fatal("site dropdown not found")
	}
	if dropdown.Props["value"] != callbacks.AllSites {
		t.Errorf("dropdown value = %v, want ALL", dropdown.Props["value"])
	}
	if opts, _ := dropdown.Props["options"].([]SiteOption); len(opts) != 5 {
		t.Errorf("expected default site options, got %v", dropdown.Props["options"])
	}

	slider, ok := root.Find(callbacks.PayloadSliderID)
	if !ok {
		t.Fatal("payload slider not found")
	}
	value, _ := slider.Props["value"].([]float64)
	if !slices.Equal(value, []float64{0, 9600}) {
		t.Errorf("slider value = %v, want [0 9600]", value)
	}
	if slider.Props["step"] != SliderStep {
		t.Errorf("slider step = %v", slider.Props["step"])
	}

	for _, id := range []string{callbacks.SuccessPieChartID, callbacks.PayloadScatterChartID} {
		graph, ok := root.Find(id)
		if !ok || graph.Type != TypeGraph {
			t.Errorf("graph %s not found", id)
		}
	}

	if _, ok := root.Find("does-not-exist"); ok {
		t.Error("expected lookup of unknown ID to fail")
	}
}

func TestBuildJSON(t *testing.T) {
	root := Build(datasettest.Sample(t), Options{SiteOptions: []SiteOption{{Label: "Only", Value: "KSC LC-39A"}}})

	data, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, want := range []string{
		`"id":"site-dropdown"`,
		`"options":[{"label":"Only","value":"KSC LC-39A"}]`,
		`"marks":{"0":"0","10000":"10000","2500":"2500","5000":"5000","7500":"7500"}`,
		`"textAlign":"center"`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected layout JSON to contain %s", want)
		}
	}
}

func TestSiteOptionsFromDataset(t *testing.T) {
	opts := SiteOptionsFromDataset(datasettest.Sample(t))

	if len(opts) != 5 {
		t.Fatalf("expected 5 options, got %d", len(opts))
	}
	if opts[0].Value != callbacks.AllSites || opts[0].Label != "All Sites" {
		t.Errorf("unexpected first option %+v", opts[0])
	}
	if !slices.Equal(opts, DefaultSiteOptions()) {
		t.Errorf("options derived from the sample should match the defaults, got %+v", opts)
	}
}

func TestLoadSiteOptions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []SiteOption
		wantErr bool
	}{
		{
			name: "valid file",
			content: `sites:
  - label: All Sites
    value: ALL
  - value: KSC LC-39A
`,
			want: []SiteOption{
				{Label: "All Sites", Value: "ALL"},
				{Label: "KSC LC-39A", Value: "KSC LC-39A"},
			},
		},
		{
			name:    "empty value",
			content: "sites:\n  - label: Nowhere\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			content: "sites: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sites.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}

			got, err := LoadSiteOptions(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	t.Run("empty path", func(t *testing.T) {
		got, err := LoadSiteOptions("")
		if err != nil || got != nil {
			t.Errorf("expected nil options and no error, got %v, %v", got, err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadSiteOptions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestValidateSiteOptions(t *testing.T) {
	ds := datasettest.Sample(t)

	if err := ValidateSiteOptions(ds, DefaultSiteOptions()); err != nil {
		t.Errorf("default options should validate: %v", err)
	}

	err := ValidateSiteOptions(ds, []SiteOption{{Value: "ALL"}, {Value: "Boca Chica"}, {Value: "Kwajalein"}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "Boca Chica") || !strings.Contains(err.Error(), "Kwajalein") {
		t.Errorf("expected both unknown sites in error, got %q", err.Error())
	}
}
