package dashboard

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rhobs/launch-dash/pkg/callbacks"
	"github.com/rhobs/launch-dash/pkg/dataset/datasettest"
	"github.com/rhobs/launch-dash/pkg/figure"
)

type countingObserver struct {
	calls int
}

func (c *countingObserver) ObserveCallback(string, time.Duration, error) {
	c.calls++
}

func newTestServer(t *testing.T) (*httptest.Server, *countingObserver) {
	t.Helper()
	obs := &countingObserver{}
	dash := New(datasettest.Sample(t), Options{Observer: obs})
	srv := httptest.NewServer(dash.Handler())
	t.Cleanup(srv.Close)
	return srv, obs
}

func TestIndex(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"<title>SpaceX Launch Records Dashboard</title>", plotlyURL, "_dash-update-component", "datalist", "placeholder"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("expected index page to contain %q", want)
		}
	}
	if strings.Contains(string(body), "{{") {
		t.Error("index page has unreplaced placeholders")
	}

	resp, err = http.Get(srv.URL + "/unknown")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status for unknown path = %d, want 404", resp.StatusCode)
	}
}

func TestLayoutAndDependencies(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + layoutEndpoint)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"id":"payload-slider"`) || !strings.Contains(string(body), `"value":[0,9600]`) {
		t.Errorf("unexpected layout %s", body)
	}

	resp, err = http.Get(srv.URL + dependenciesEndpoint)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var deps []dependency
	if err := json.NewDecoder(resp.Body).Decode(&deps); err != nil {
		t.Fatalf("failed to decode dependencies: %v", err)
	}
	if len(deps) != 2 {
		t.Fatalf("expected 2 dependencies, got %d", len(deps))
	}
	if deps[1].Output != "success-payload-scatter-chart.figure" || len(deps[1].Inputs) != 2 {
		t.Errorf("unexpected scatter dependency %+v", deps[1])
	}
}

func TestUpdateComponent(t *testing.T) {
	srv, obs := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantTitle  string
		wantError  string
	}{
		{
			name:       "pie for one site",
			body:       `{"output":"success-pie-chart.figure","inputs":[{"id":"site-dropdown","property":"value","value":"VAFB SLC-4E"}]}`,
			wantStatus: http.StatusOK,
			wantTitle:  "Success vs. Failure for VAFB SLC-4E",
		},
		{
			name: "scatter for all sites",
			body: `{"output":"success-payload-scatter-chart.figure","inputs":[` +
				`{"id":"site-dropdown","property":"value","value":"ALL"},` +
				`{"id":"payload-slider","property":"value","value":[2500,7500]}]}`,
			wantStatus: http.StatusOK,
			wantTitle:  "Payload vs. Outcome for All Sites",
		},
		{
			name:       "unknown site",
			body:       `{"output":"success-pie-chart.figure","inputs":[{"id":"site-dropdown","property":"value","value":"VAFB"}]}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "unknown launch site",
		},
		{
			name:       "cleared dropdown",
			body:       `{"output":"success-pie-chart.figure","inputs":[{"id":"site-dropdown","property":"value","value":""}]}`,
			wantStatus: http.StatusOK,
			wantTitle:  "Total Successful Launches by Site",
		},
		{
			name:       "lowercase all",
			body:       `{"output":"success-pie-chart.figure","inputs":[{"id":"site-dropdown","property":"value","value":"all"}]}`,
			wantStatus: http.StatusBadRequest,
			wantError:  `did you mean "ALL"?`,
		},
		{
			name:       "unknown output",
			body:       `{"output":"nothing.figure","inputs":[]}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "unknown callback output",
		},
		{
			name:       "malformed body",
			body:       `{"output":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "failed to decode update request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+updateEndpoint, "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			if tt.wantError != "" {
				var errResp errorResponse
				if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
					t.Fatalf("failed to decode error: %v", err)
				}
				if !strings.Contains(errResp.Error, tt.wantError) {
					t.Errorf("error = %q, want it to contain %q", errResp.Error, tt.wantError)
				}
				return
			}

			var body struct {
				Response map[string]map[string]figure.Figure `json:"response"`
				Multi    bool                                `json:"multi"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			var got string
			for _, props := range body.Response {
				got = props[callbacks.PropertyFigure].Layout.Title.Text
			}
			if got != tt.wantTitle {
				t.Errorf("title = %q, want %q", got, tt.wantTitle)
			}
		})
	}

	if obs.calls != 6 {
		t.Errorf("observer saw %d dispatches, want 6", obs.calls)
	}
}

func TestUpdateComponentMethod(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + updateEndpoint)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestFigurePNG(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "pie", path: "/_dash-figure/success-pie-chart.png", wantStatus: http.StatusOK},
		{name: "scatter with range", path: "/_dash-figure/success-payload-scatter-chart.png?site=KSC%20LC-39A&low=2000&high=6000&width=300&height=200", wantStatus: http.StatusOK},
		{name: "empty scatter", path: "/_dash-figure/success-payload-scatter-chart.png?low=6000&high=7000", wantStatus: http.StatusOK},
		{name: "largest size", path: "/_dash-figure/success-pie-chart.png?width=4096&height=400", wantStatus: http.StatusOK},
		{name: "oversized width", path: "/_dash-figure/success-pie-chart.png?width=100000&height=100000", wantStatus: http.StatusBadRequest},
		{name: "oversized height", path: "/_dash-figure/success-payload-scatter-chart.png?height=4097", wantStatus: http.StatusBadRequest},
		{name: "bad bound", path: "/_dash-figure/success-payload-scatter-chart.png?low=heavy", wantStatus: http.StatusBadRequest},
		{name: "unknown site", path: "/_dash-figure/success-pie-chart.png?site=Mars", wantStatus: http.StatusBadRequest},
		{name: "unknown output", path: "/_dash-figure/landing-chart.png", wantStatus: http.StatusBadRequest},
		{name: "not png", path: "/_dash-figure/success-pie-chart.svg", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				body, _ := io.ReadAll(resp.Body)
				t.Fatalf("status = %d, want %d: %s", resp.StatusCode, tt.wantStatus, body)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
				t.Errorf("content type = %q, want image/png", ct)
			}
			body, _ := io.ReadAll(resp.Body)
			if !bytes.HasPrefix(body, []byte("\x89PNG")) {
				t.Error("body is not a PNG image")
			}
		})
	}
}

func TestWriteJSONMarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"low": math.NaN()})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Error == "" {
		t.Errorf("expected JSON error body, got %q (%v)", rec.Body.String(), err)
	}
}
