package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/common/promslog"

	"github.com/rhobs/launch-dash/pkg/config"
	"github.com/rhobs/launch-dash/pkg/dashboard"
	"github.com/rhobs/launch-dash/pkg/dataset"
	"github.com/rhobs/launch-dash/pkg/k8s"
	"github.com/rhobs/launch-dash/pkg/layout"
	"github.com/rhobs/launch-dash/pkg/mcp"
	"github.com/rhobs/launch-dash/pkg/metrics"
)

func main() {
	defaults := config.Default()

	// Parse command line flags
	var configFile = flag.String("config", "", "Path to a TOML config file. Flags set on the command line take precedence")
	var listen = flag.String("listen", defaults.Listen, "Listen address for HTTP mode (defaults to 0.0.0.0:$PORT, PORT defaults to 8050)")
	var datasetPath = flag.String("dataset", defaults.Dataset, "Path to the launch records CSV")
	var datasetConfigMap = flag.String("dataset-configmap", "", "Read the launch records CSV from a ConfigMap: namespace/name[:key]")
	var authMode = flag.String("auth-mode", defaults.AuthMode, "Kubernetes authentication for --dataset-configmap: kubeconfig or serviceaccount")
	var sitesFile = flag.String("sites-file", "", "Path to a YAML file listing the site dropdown options")
	var logLevel = flag.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
	var stdio = flag.Bool("stdio", false, "Serve MCP over stdio instead of HTTP")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			cfg.Listen = *listen
		case "dataset":
			cfg.Dataset = *datasetPath
		case "dataset-configmap":
			cfg.DatasetConfigMap = *datasetConfigMap
		case "auth-mode":
			cfg.AuthMode = *authMode
		case "sites-file":
			cfg.SitesFile = *sitesFile
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Configure slog with specified log level
	configureLogging(cfg.LogLevel)

	ctx := context.Background()

	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	siteOptions, err := resolveSiteOptions(ds, cfg.SitesFile)
	if err != nil {
		log.Fatalf("Invalid site options: %v", err)
	}

	m := metrics.New()
	m.SetDataset(ds.Len(), ds.PayloadMin, ds.PayloadMax)

	dash := dashboard.New(ds, dashboard.Options{
		Layout:   layout.Options{SiteOptions: siteOptions},
		Observer: m,
	})

	// Create MCP server
	mcpServer, err := mcp.NewMCPServer(mcp.LaunchDashOptions{Dataset: ds, SiteOptions: siteOptions})
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	slog.Info("Starting server", "records", ds.Len(), "payloadMin", ds.PayloadMin, "payloadMax", ds.PayloadMax, "stdio", *stdio)

	// Choose server mode based on flags
	if *stdio {
		stdioServer := server.NewStdioServer(mcpServer)
		if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	if err := mcp.Serve(ctx, mcpServer, dash, m, cfg.Listen); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}

// loadDataset reads the launch records from the configured ConfigMap or file.
func loadDataset(ctx context.Context, cfg config.Config) (*dataset.Dataset, error) {
	if cfg.DatasetConfigMap == "" {
		return dataset.LoadFile(cfg.Dataset)
	}

	ref, err := k8s.ParseConfigMapRef(cfg.DatasetConfigMap)
	if err != nil {
		return nil, err
	}
	mode, err := k8s.ParseAuthMode(cfg.AuthMode)
	if err != nil {
		return nil, err
	}

	client, err := k8s.GetKubeClient(mode)
	if err != nil {
		return nil, err
	}
	return k8s.LoadDataset(ctx, client, ref)
}

// resolveSiteOptions loads the dropdown entries from sitesFile. Without a
// file the built-in entries are used, unless they name sites missing from
// ds, in which case the entries are derived from ds.
func resolveSiteOptions(ds *dataset.Dataset, sitesFile string) ([]layout.SiteOption, error) {
	opts, err := layout.LoadSiteOptions(sitesFile)
	if err != nil {
		return nil, err
	}

	if opts != nil {
		if err := layout.ValidateSiteOptions(ds, opts); err != nil {
			return nil, fmt.Errorf("%s: %w", sitesFile, err)
		}
		return opts, nil
	}

	opts = layout.DefaultSiteOptions()
	if err := layout.ValidateSiteOptions(ds, opts); err != nil {
		slog.Warn("Built-in site options do not match the dataset, deriving them from the records", "err", err)
		return layout.SiteOptionsFromDataset(ds), nil
	}
	return opts, nil
}

// configureLogging sets up the slog logger with the specified log level
func configureLogging(levelStr string) {
	level := promslog.NewLevel()
	err := level.Set(levelStr)
	if err != nil {
		log.Fatal(err.Error())
	}

	format := promslog.NewFormat()
	err = format.Set("logfmt")
	if err != nil {
		log.Fatal(err.Error())
	}

	logger := promslog.New(&promslog.Config{
		Level:  level,
		Format: format,
		Style:  promslog.GoKitStyle,
	})
	slog.SetDefault(logger)
}
