package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rhobs/launch-dash/pkg/callbacks"
	"github.com/rhobs/launch-dash/pkg/dataset"
)

// SiteOption is one entry of the site dropdown.
type SiteOption struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// SiteOptionsConfig represents the YAML structure of a site options file.
type SiteOptionsConfig struct {
	Sites []SiteOption `yaml:"sites"`
}

// DefaultSiteOptions returns the built-in dropdown entries.
func DefaultSiteOptions() []SiteOption {
	return []SiteOption{
		{Label: "All Sites", Value: callbacks.AllSites},
		{Label: "CCAFS LC-40", Value: "CCAFS LC-40"},
		{Label: "CCAFS SLC-40", Value: "CCAFS SLC-40"},
		{Label: "KSC LC-39A", Value: "KSC LC-39A"},
		{Label: "VAFB SLC-4E", Value: "VAFB SLC-4E"},
	}
}

// SiteOptionsFromDataset returns an "All Sites" entry followed by one entry
// per distinct site in ds.
func SiteOptionsFromDataset(ds *dataset.Dataset) []SiteOption {
	sites := ds.Sites()
	opts := make([]SiteOption, 0, len(sites)+1)
	opts = append(opts, SiteOption{Label: "All Sites", Value: callbacks.AllSites})
	for _, site := range sites {
		opts = append(opts, SiteOption{Label: site, Value: site})
	}
	return opts
}

// LoadSiteOptions loads dropdown entries from a YAML file. An empty path
// yields no options.
func LoadSiteOptions(filePath string) ([]SiteOption, error) {
	if filePath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read site options file: %w", err)
	}

	var config SiteOptionsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse site options YAML: %w", err)
	}

	for i, opt := range config.Sites {
		if opt.Value == "" {
			return nil, fmt.Errorf("site option %d has an empty value", i)
		}
		if opt.Label == "" {
			config.Sites[i].Label = opt.Value
		}
	}

	return config.Sites, nil
}

// ValidateSiteOptions checks that every non-ALL option names a site of ds.
func ValidateSiteOptions(ds *dataset.Dataset, opts []SiteOption) error {
	var errs []error
	for _, opt := range opts {
		if opt.Value == callbacks.AllSites || ds.HasSite(opt.Value) {
			continue
		}
		errs = append(errs, fmt.Errorf("site option %q is not in the dataset", opt.Value))
	}
	return errors.Join(errs...)
}
