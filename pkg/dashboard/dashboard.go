// Package dashboard serves the launch records dashboard to browsers.
package dashboard

import (
	"net/http"

	"github.com/rhobs/launch-dash/pkg/callbacks"
	"github.com/rhobs/launch-dash/pkg/dataset"
	"github.com/rhobs/launch-dash/pkg/layout"
)

const (
	indexEndpoint        = "/"
	layoutEndpoint       = "/_dash-layout"
	dependenciesEndpoint = "/_dash-dependencies"
	updateEndpoint       = "/_dash-update-component"
	figureEndpoint       = "/_dash-figure/"

	maxUpdateBodyBytes = 1 << 20
	maxFigureSize      = 4096
)

// Options configures a Dashboard.
type Options struct {
	Layout   layout.Options
	Observer callbacks.Observer
}

// Dashboard binds a dataset, its layout and the callbacks recomputing the
// charts.
type Dashboard struct {
	ds         *dataset.Dataset
	layout     layout.Component
	dispatcher *callbacks.Dispatcher
}

// New builds the layout and callbacks for ds.
func New(ds *dataset.Dataset, opts Options) *Dashboard {
	var dispatcherOpts []callbacks.Option
	if opts.Observer != nil {
		dispatcherOpts = append(dispatcherOpts, callbacks.WithObserver(opts.Observer))
	}

	return &Dashboard{
		ds:         ds,
		layout:     layout.Build(ds, opts.Layout),
		dispatcher: callbacks.NewDispatcher(ds, dispatcherOpts...),
	}
}

// Layout returns the component tree served to browsers.
func (d *Dashboard) Layout() layout.Component {
	return d.layout
}

// Dispatcher returns the callback dispatcher.
func (d *Dashboard) Dispatcher() *callbacks.Dispatcher {
	return d.dispatcher
}

// Register mounts the dashboard routes on mux.
func (d *Dashboard) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET "+indexEndpoint+"{$}", d.handleIndex)
	mux.HandleFunc("GET "+layoutEndpoint, d.handleLayout)
	mux.HandleFunc("GET "+dependenciesEndpoint, d.handleDependencies)
	mux.HandleFunc("POST "+updateEndpoint, d.handleUpdate)
	mux.HandleFunc("GET "+figureEndpoint+"{file}", d.handleFigure)
}

// Handler returns a mux serving only the dashboard routes.
func (d *Dashboard) Handler() http.Handler {
	mux := http.NewServeMux()
	d.Register(mux)
	return mux
}
