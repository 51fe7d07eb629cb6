// Package config loads the launch-dash server configuration file.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/prometheus/common/promslog"

	"github.com/rhobs/launch-dash/pkg/k8s"
)

const (
	// DefaultPort is used when the PORT environment variable is unset.
	DefaultPort = "8050"
	// DefaultDatasetPath is the launch records CSV read when no source is configured.
	DefaultDatasetPath = "spacex_launch_dash.csv"
	DefaultLogLevel    = "info"
)

// Config holds the server settings. Every field can also be set by a
// command line flag of the same name.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `toml:"listen"`
	// Dataset is the launch records CSV file.
	Dataset string `toml:"dataset"`
	// DatasetConfigMap reads the CSV from a ConfigMap instead of Dataset,
	// formatted as namespace/name[:key].
	DatasetConfigMap string `toml:"dataset_configmap"`
	// AuthMode selects the Kubernetes credentials for DatasetConfigMap.
	AuthMode string `toml:"auth_mode"`
	// SitesFile is an optional YAML file overriding the site dropdown options.
	SitesFile string `toml:"sites_file"`
	LogLevel  string `toml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen:   DefaultListenAddr(os.Getenv),
		Dataset:  DefaultDatasetPath,
		AuthMode: string(k8s.AuthModeKubeConfig),
		LogLevel: DefaultLogLevel,
	}
}

// DefaultListenAddr binds all interfaces on $PORT.
func DefaultListenAddr(getenv func(string) string) string {
	port := getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	return net.JoinHostPort("0.0.0.0", port)
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c Config) Validate() error {
	var errs []error

	if _, _, err := net.SplitHostPort(c.Listen); err != nil {
		errs = append(errs, fmt.Errorf("invalid listen address %q: %w", c.Listen, err))
	}

	if c.DatasetConfigMap != "" {
		if _, err := k8s.ParseConfigMapRef(c.DatasetConfigMap); err != nil {
			errs = append(errs, err)
		}
	} else if c.Dataset == "" {
		errs = append(errs, errors.New("either dataset or dataset_configmap must be set"))
	}

	if _, err := k8s.ParseAuthMode(c.AuthMode); err != nil {
		errs = append(errs, err)
	}

	if err := promslog.NewLevel().Set(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level: %w", err))
	}

	return errors.Join(errs...)
}
