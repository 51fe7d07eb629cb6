package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/rhobs/launch-dash/pkg/callbacks"
	"github.com/rhobs/launch-dash/pkg/figure"
	"github.com/rhobs/launch-dash/pkg/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

// dependency is the wire shape of one callback in the dependency graph.
type dependency struct {
	Output string                 `json:"output"`
	Inputs []callbacks.Dependency `json:"inputs"`
}

func (d *Dashboard) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

func (d *Dashboard) handleLayout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, d.layout)
}

func (d *Dashboard) handleDependencies(w http.ResponseWriter, _ *http.Request) {
	cbs := d.dispatcher.Callbacks()
	deps := make([]dependency, 0, len(cbs))
	for _, cb := range cbs {
		deps = append(deps, dependency{Output: cb.Output.String(), Inputs: cb.Inputs})
	}
	writeJSON(w, http.StatusOK, deps)
}

func (d *Dashboard) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req callbacks.UpdateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("failed to decode update request: %w", err))
		return
	}

	resp, err := d.dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		writeDispatchError(w, req.Output, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (d *Dashboard) handleFigure(w http.ResponseWriter, r *http.Request) {
	id, ok := strings.CutSuffix(r.PathValue("file"), ".png")
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("figures are only available as .png"))
		return
	}

	query := r.URL.Query()
	low, high := d.ds.PayloadMin, d.ds.PayloadMax
	var errs []error
	if v := query.Get("low"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid low %q", v))
		}
		low = f
	}
	if v := query.Get("high"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid high %q", v))
		}
		high = f
	}
	width, err := optionalInt(query.Get("width"))
	if err != nil {
		errs = append(errs, err)
	}
	height, err := optionalInt(query.Get("height"))
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errors.Join(errs...))
		return
	}

	site := query.Get("site")
	output := callbacks.Dependency{ID: id, Property: callbacks.PropertyFigure}
	resp, err := d.dispatcher.Dispatch(r.Context(), callbacks.UpdateRequest{
		Output: output.String(),
		Inputs: []callbacks.InputValue{
			{ID: callbacks.SiteDropdownID, Property: callbacks.PropertyValue, Value: site},
			{ID: callbacks.PayloadSliderID, Property: callbacks.PropertyValue, Value: []float64{low, high}},
		},
	})
	if err != nil {
		writeDispatchError(w, output.String(), err)
		return
	}

	fig, ok := resp.Response[output.ID][output.Property].(figure.Figure)
	if !ok {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("output %s did not produce a figure", output))
		return
	}

	var buf bytes.Buffer
	if err := render.PNG(fig, &buf, width, height); err != nil {
		slog.Error("Failed to render figure", "output", output.String(), "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

func optionalInt(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid size %q", v)
	}
	if n > maxFigureSize {
		return 0, fmt.Errorf("size %d exceeds the maximum of %d", n, maxFigureSize)
	}
	return n, nil
}

func writeDispatchError(w http.ResponseWriter, output string, err error) {
	if callbacks.IsInputError(err) {
		slog.Debug("Rejected callback request", "output", output, "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	slog.Error("Callback failed", "output", output, "error", err)
	writeError(w, http.StatusInternalServerError, err)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to marshal response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to marshal response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
