package callbacks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rhobs/launch-dash/pkg/dataset"
)

// Component IDs and properties wired by the default callbacks.
const (
	SiteDropdownID        = "site-dropdown"
	PayloadSliderID       = "payload-slider"
	SuccessPieChartID     = "success-pie-chart"
	PayloadScatterChartID = "success-payload-scatter-chart"

	PropertyValue  = "value"
	PropertyFigure = "figure"
)

var (
	// ErrUnknownOutput is returned when no callback produces the requested output.
	ErrUnknownOutput = errors.New("unknown callback output")
	// ErrMissingInput is returned when an update request lacks a watched input.
	ErrMissingInput = errors.New("missing callback input")
)

// unknownOutputLabel replaces unregistered outputs reported to the Observer.
const unknownOutputLabel = "unknown"

// Dependency addresses one property of one layout component.
type Dependency struct {
	ID       string `json:"id"`
	Property string `json:"property"`
}

// String renders the dependency as "<id>.<property>".
func (d Dependency) String() string {
	return d.ID + "." + d.Property
}

// ParseDependency splits "<id>.<property>" at the last dot.
func ParseDependency(s string) (Dependency, error) {
	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 {
		return Dependency{}, fmt.Errorf("invalid dependency %q: expected <id>.<property>", s)
	}
	return Dependency{ID: s[:i], Property: s[i+1:]}, nil
}

// Func computes an output value from input values given in the order of
// Callback.Inputs.
type Func func(ctx context.Context, inputs []any) (any, error)

// Callback recomputes one output whenever any of its inputs changes.
type Callback struct {
	Output Dependency   `json:"output"`
	Inputs []Dependency `json:"inputs"`
	Fn     Func         `json:"-"`
}

// Observer is notified after every dispatched callback.
type Observer interface {
	ObserveCallback(output string, duration time.Duration, err error)
}

// InputValue is the current value of a watched component property.
type InputValue struct {
	ID       string `json:"id"`
	Property string `json:"property"`
	Value    any    `json:"value"`
}

// UpdateRequest asks for one output to be recomputed.
type UpdateRequest struct {
	Output         string       `json:"output"`
	Inputs         []InputValue `json:"inputs"`
	ChangedPropIDs []string     `json:"changedPropIds,omitempty"`
}

// UpdateResponse carries the recomputed property keyed by component ID.
type UpdateResponse struct {
	Response map[string]map[string]any `json:"response"`
	Multi    bool                      `json:"multi"`
}

// Dispatcher routes update requests to registered callbacks.
type Dispatcher struct {
	callbacks []Callback
	byOutput  map[string]int
	observer  Observer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithObserver reports every dispatch to o.
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) {
		d.observer = o
	}
}

// NewDispatcher returns a dispatcher with the two dashboard callbacks bound
// to ds.
func NewDispatcher(ds *dataset.Dataset, opts ...Option) *Dispatcher {
	d := &Dispatcher{byOutput: make(map[string]int)}
	for _, opt := range opts {
		opt(d)
	}

	d.Register(Callback{
		Output: Dependency{ID: SuccessPieChartID, Property: PropertyFigure},
		Inputs: []Dependency{{ID: SiteDropdownID, Property: PropertyValue}},
		Fn: func(_ context.Context, inputs []any) (any, error) {
			site, err := siteValue(inputs[0])
			if err != nil {
				return nil, err
			}
			return SuccessPie(ds, site)
		},
	})
	d.Register(Callback{
		Output: Dependency{ID: PayloadScatterChartID, Property: PropertyFigure},
		Inputs: []Dependency{
			{ID: SiteDropdownID, Property: PropertyValue},
			{ID: PayloadSliderID, Property: PropertyValue},
		},
		Fn: func(_ context.Context, inputs []any) (any, error) {
			site, err := siteValue(inputs[0])
			if err != nil {
				return nil, err
			}
			low, high, err := RangeValue(inputs[1])
			if err != nil {
				return nil, err
			}
			return PayloadScatter(ds, site, low, high)
		},
	})

	return d
}

// Register adds a callback, replacing any callback for the same output.
func (d *Dispatcher) Register(cb Callback) {
	key := cb.Output.String()
	if i, ok := d.byOutput[key]; ok {
		d.callbacks[i] = cb
		return
	}
	d.byOutput[key] = len(d.callbacks)
	d.callbacks = append(d.callbacks, cb)
}

// Callbacks returns the registered callbacks in registration order.
func (d *Dispatcher) Callbacks() []Callback {
	out := make([]Callback, len(d.callbacks))
	copy(out, d.callbacks)
	return out
}

// Dispatch runs the callback producing req.Output with the supplied input
// values.
func (d *Dispatcher) Dispatch(ctx context.Context, req UpdateRequest) (*UpdateResponse, error) {
	start := time.Now()
	resp, err := d.dispatch(ctx, req)
	if d.observer != nil {
		output := req.Output
		if errors.Is(err, ErrUnknownOutput) {
			output = unknownOutputLabel
		}
		d.observer.ObserveCallback(output, time.Since(start), err)
	}
	return resp, err
}

func (d *Dispatcher) dispatch(ctx context.Context, req UpdateRequest) (*UpdateResponse, error) {
	output, err := ParseDependency(req.Output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownOutput, err)
	}

	i, ok := d.byOutput[output.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOutput, req.Output)
	}
	cb := d.callbacks[i]

	values := make(map[Dependency]any, len(req.Inputs))
	for _, in := range req.Inputs {
		values[Dependency{ID: in.ID, Property: in.Property}] = in.Value
	}

	args := make([]any, len(cb.Inputs))
	for j, dep := range cb.Inputs {
		v, ok := values[dep]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, dep)
		}
		args[j] = v
	}

	slog.Debug("Dispatching callback", "output", req.Output, "changed", req.ChangedPropIDs)

	value, err := cb.Fn(ctx, args)
	if err != nil {
		return nil, err
	}

	return &UpdateResponse{
		Response: map[string]map[string]any{
			output.ID: {output.Property: value},
		},
		Multi: true,
	}, nil
}

// IsInputError reports whether err was caused by the request rather than
// by the server.
func IsInputError(err error) bool {
	return errors.Is(err, ErrUnknownSite) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrUnknownOutput) ||
		errors.Is(err, ErrMissingInput)
}

func siteValue(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return AllSites, nil
	case string:
		return s, nil
	default:
		return "", fmt.Errorf("%w: site must be a string, got %T", ErrUnknownSite, v)
	}
}

// RangeValue decodes a range slider value: a two element list of numbers.
func RangeValue(v any) (float64, float64, error) {
	var bounds []float64
	switch r := v.(type) {
	case []float64:
		bounds = r
	case []any:
		for _, item := range r {
			f, ok := toFloat(item)
			if !ok {
				return 0, 0, fmt.Errorf("%w: bound %v is not a number", ErrInvalidRange, item)
			}
			bounds = append(bounds, f)
		}
	default:
		return 0, 0, fmt.Errorf("%w: expected [low, high], got %T", ErrInvalidRange, v)
	}

	if len(bounds) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 bounds, got %d", ErrInvalidRange, len(bounds))
	}
	return NormalizeRange(bounds[0], bounds[1])
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
