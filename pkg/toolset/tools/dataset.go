package tools

import (
	"log/slog"
	"sync"

	"github.com/containers/kubernetes-mcp-server/pkg/api"

	"github.com/rhobs/launch-dash/pkg/dataset"
	"github.com/rhobs/launch-dash/pkg/layout"
	toolsetconfig "github.com/rhobs/launch-dash/pkg/toolset/config"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

// TestDatasetKey is used to inject a dataset in tests.
const TestDatasetKey ContextKey = "testDataset"

type datasetCache struct {
	mu       sync.Mutex
	datasets map[string]*dataset.Dataset
}

var cache = &datasetCache{datasets: map[string]*dataset.Dataset{}}

// load returns the dataset for path, reading it on first use.
func (c *datasetCache) load(path string) (*dataset.Dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ds, ok := c.datasets[path]; ok {
		return ds, nil
	}

	ds, err := dataset.LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("Cached launch dataset", "path", path)
	c.datasets[path] = ds
	return ds, nil
}

// getConfig retrieves the launch-dash toolset configuration from params.
func getConfig(params api.ToolHandlerParams) *toolsetconfig.Config {
	if params.BaseConfig != nil {
		if cfg, ok := params.GetToolsetConfig(toolsetconfig.ToolsetName); ok {
			if dashCfg, ok := cfg.(*toolsetconfig.Config); ok {
				return dashCfg
			}
		}
	}
	// Return default config if not found
	return &toolsetconfig.Config{}
}

// getDataset returns the dataset configured for the toolset.
func getDataset(params api.ToolHandlerParams) (*dataset.Dataset, error) {
	if params.Context != nil {
		if ds, ok := params.Context.Value(TestDatasetKey).(*dataset.Dataset); ok {
			return ds, nil
		}
	}

	return cache.load(getConfig(params).GetDatasetPath())
}

// getSiteOptions loads the site options from the configured sites_file.
// Without one it returns nil and every dataset site is listed.
func getSiteOptions(params api.ToolHandlerParams) ([]layout.SiteOption, error) {
	return layout.LoadSiteOptions(getConfig(params).SitesFile)
}
