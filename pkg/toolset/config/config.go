package config

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/containers/kubernetes-mcp-server/pkg/api"
	serverconfig "github.com/containers/kubernetes-mcp-server/pkg/config"

	"github.com/rhobs/launch-dash/pkg/layout"
)

// ToolsetName is the name the configuration is registered under.
const ToolsetName = "launch-dash"

// DefaultDatasetPath is used when dataset_path is not configured.
const DefaultDatasetPath = "spacex_launch_dash.csv"

// Config holds launch-dash toolset configuration
type Config struct {
	// DatasetPath is the launch records CSV file.
	// Default: "spacex_launch_dash.csv"
	DatasetPath string `toml:"dataset_path,omitempty"`

	// SitesFile is an optional YAML file listing the launch site options.
	// When set, list_launch_sites reports only these sites, with their labels.
	SitesFile string `toml:"sites_file,omitempty"`
}

var _ api.ExtendedConfig = (*Config)(nil)

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if _, err := layout.LoadSiteOptions(c.SitesFile); err != nil {
		return fmt.Errorf("invalid sites_file configuration: %w", err)
	}
	return nil
}

// GetDatasetPath returns the configured dataset path or the default.
func (c *Config) GetDatasetPath() string {
	if c.DatasetPath == "" {
		return DefaultDatasetPath
	}
	return c.DatasetPath
}

func launchDashToolsetParser(_ context.Context, primitive toml.Primitive, md toml.MetaData) (api.ExtendedConfig, error) {
	var cfg Config
	if err := md.PrimitiveDecode(primitive, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func init() {
	serverconfig.RegisterToolsetConfig(ToolsetName, launchDashToolsetParser)
}
