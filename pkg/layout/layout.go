package layout

import (
	"strconv"

	"github.com/rhobs/launch-dash/pkg/callbacks"
	"github.com/rhobs/launch-dash/pkg/dataset"
)

// Component types understood by the browser renderer.
const (
	TypeDiv         = "Div"
	TypeH1          = "H1"
	TypeP           = "P"
	TypeBr          = "Br"
	TypeDropdown    = "Dropdown"
	TypeRangeSlider = "RangeSlider"
	TypeGraph       = "Graph"
)

const (
	Title            = "SpaceX Launch Records Dashboard"
	TitleColor       = "#503D36"
	TitleFontSize    = 40
	SitePlaceholder  = "Select a Launch Site here"
	PayloadRangeText = "Payload range (Kg):"

	SliderMin  = 0
	SliderMax  = 10000
	SliderStep = 1000
)

// SliderMarks are the labelled positions of the payload slider.
var SliderMarks = []int{0, 2500, 5000, 7500, 10000}

// Component is one node of the declarative widget tree.
type Component struct {
	Type     string         `json:"type" jsonschema:"description=Widget type (Div, H1, P, Br, Dropdown, RangeSlider, Graph)"`
	ID       string         `json:"id,omitempty" jsonschema:"description=Component ID referenced by callbacks"`
	Props    map[string]any `json:"props,omitempty" jsonschema:"description=Widget properties such as value, options or style"`
	Children []Component    `json:"children,omitempty" jsonschema:"description=Nested components in render order"`
}

// Find returns the first component in the tree with the given ID.
func (c Component) Find(id string) (Component, bool) {
	if c.ID == id {
		return c, true
	}
	for _, child := range c.Children {
		if found, ok := child.Find(id); ok {
			return found, true
		}
	}
	return Component{}, false
}

// Options controls the parts of the layout that vary between deployments.
type Options struct {
	// SiteOptions populates the site dropdown. DefaultSiteOptions is used when empty.
	SiteOptions []SiteOption
}

// Build returns the dashboard layout for ds. The slider's initial value is
// the dataset's payload extent.
func Build(ds *dataset.Dataset, opts Options) Component {
	siteOptions := opts.SiteOptions
	if len(siteOptions) == 0 {
		siteOptions = DefaultSiteOptions()
	}

	marks := make(map[string]string, len(SliderMarks))
	for _, m := range SliderMarks {
		marks[strconv.Itoa(m)] = strconv.Itoa(m)
	}

	return Component{
		Type: TypeDiv,
		Children: []Component{
			{
				Type: TypeH1,
				Props: map[string]any{
					"children": Title,
					"style": map[string]any{
						"textAlign": "center",
						"color":     TitleColor,
						"font-size": TitleFontSize,
					},
				},
			},
			{
				Type: TypeDropdown,
				ID:   callbacks.SiteDropdownID,
				Props: map[string]any{
					"options":     siteOptions,
					"value":       callbacks.AllSites,
					"placeholder": SitePlaceholder,
					"searchable":  true,
				},
			},
			{Type: TypeBr},
			{
				Type: TypeDiv,
				Children: []Component{
					{Type: TypeGraph, ID: callbacks.SuccessPieChartID},
				},
			},
			{Type: TypeBr},
			{Type: TypeP, Props: map[string]any{"children": PayloadRangeText}},
			{
				Type: TypeRangeSlider,
				ID:   callbacks.PayloadSliderID,
				Props: map[string]any{
					"min":   SliderMin,
					"max":   SliderMax,
					"step":  SliderStep,
					"marks": marks,
					"value": []float64{ds.PayloadMin, ds.PayloadMax},
				},
			},
			{Type: TypeBr},
			{
				Type: TypeDiv,
				Children: []Component{
					{Type: TypeGraph, ID: callbacks.PayloadScatterChartID},
				},
			},
		},
	}
}
