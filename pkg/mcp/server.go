package mcp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rhobs/launch-dash/pkg/dashboard"
	"github.com/rhobs/launch-dash/pkg/dataset"
	"github.com/rhobs/launch-dash/pkg/layout"
	"github.com/rhobs/launch-dash/pkg/metrics"
	"github.com/rhobs/launch-dash/pkg/tools"
)

// LaunchDashOptions contains configuration options for the MCP server
type LaunchDashOptions struct {
	Dataset *dataset.Dataset
	// SiteOptions lists the sites reported by list_launch_sites.
	// Empty means every site of Dataset.
	SiteOptions []layout.SiteOption
}

const (
	mcpEndpoint            = "/mcp"
	healthEndpoint         = "/health"
	metricsEndpoint        = "/metrics"
	serverName             = "launch-dash"
	serverVersion          = "1.0.0"
	defaultShutdownTimeout = 10 * time.Second

	dashboardResourceURI  = "ui://launch-dashboard"
	dashboardResourceMIME = "text/html;profile=mcp-app"
)

func NewMCPServer(opts LaunchDashOptions) (*server.MCPServer, error) {
	if opts.Dataset == nil {
		return nil, errors.New("a dataset is required")
	}

	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithLogging(),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions(tools.ServerPrompt),
	)

	if err := SetupTools(mcpServer, opts); err != nil {
		return nil, err
	}

	// Register UI resources for MCP Apps
	mcpServer.AddResource(
		mcp.Resource{
			URI:         dashboardResourceURI,
			Name:        "Launch Dashboard Chart",
			Description: "Interactive Plotly view for the launch success pie and payload scatter charts",
			MIMEType:    dashboardResourceMIME,
		},
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      dashboardResourceURI,
					MIMEType: dashboardResourceMIME,
					Text:     chartHTML,
				},
			}, nil
		},
	)

	return mcpServer, nil
}

func SetupTools(mcpServer *server.MCPServer, opts LaunchDashOptions) error {
	mcpServer.AddTool(CreateListLaunchSitesTool(), ListLaunchSitesHandler(opts))
	mcpServer.AddTool(CreateGetPayloadRangeTool(), GetPayloadRangeHandler(opts))
	mcpServer.AddTool(CreateGetSuccessPieChartTool(), SuccessPieChartHandler(opts))
	mcpServer.AddTool(CreateGetPayloadScatterChartTool(), PayloadScatterChartHandler(opts))
	mcpServer.AddTool(CreateQueryLaunchesTool(), QueryLaunchesHandler(opts))

	return nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Incoming request", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)
		slog.Debug("Request headers", "headers", r.Header)
		if r.ContentLength > 0 {
			slog.Info("Request content length", "content_length", r.ContentLength)
		}
		next.ServeHTTP(w, r)
	})
}

// NewHandler builds the HTTP handler serving the MCP endpoint, the health
// and metrics endpoints and the dashboard. m may be nil.
func NewHandler(mcpServer *server.MCPServer, dash *dashboard.Dashboard, m *metrics.Metrics, httpServer *http.Server) http.Handler {
	mux := http.NewServeMux()

	streamableHTTPServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStreamableHTTPServer(httpServer),
		server.WithStateLess(true),
	)
	mux.Handle(mcpEndpoint, streamableHTTPServer)

	mux.HandleFunc(healthEndpoint, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if m != nil {
		mux.Handle(metricsEndpoint, m.Handler())
	}

	if dash != nil {
		dash.Register(mux)
	}

	return loggingMiddleware(mux)
}

func Serve(ctx context.Context, mcpServer *server.MCPServer, dash *dashboard.Dashboard, m *metrics.Metrics, listenAddr string) error {
	httpServer := &http.Server{
		Addr:              listenAddr,
		ReadHeaderTimeout: 10 * time.Second,
	}
	httpServer.Handler = NewHandler(mcpServer, dash, m, httpServer)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "listen_addr", listenAddr, "mcp_endpoint", mcpEndpoint, "dashboard", "/")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-sigChan:
		slog.Warn("Received signal, initiating graceful shutdown", "signal", sig)
		cancel()
	case <-ctx.Done():
		slog.Warn("Context cancelled, initiating graceful shutdown")
	case err := <-serverErr:
		slog.Error("HTTP server error", "error", err)
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer shutdownCancel()

	slog.Info("Shutting down HTTP server gracefully")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
		return err
	}

	slog.Info("HTTP server shutdown complete")
	return nil
}
