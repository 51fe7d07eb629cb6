package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Column headers of the launch records CSV.
const (
	ColumnFlightNumber           = "Flight Number"
	ColumnLaunchSite             = "Launch Site"
	ColumnClass                  = "class"
	ColumnPayloadMass            = "Payload Mass (kg)"
	ColumnBoosterVersion         = "Booster Version"
	ColumnBoosterVersionCategory = "Booster Version Category"
)

// Launch outcome values of the class column.
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// ErrNoRecords is returned when a CSV source has a header but no launches.
var ErrNoRecords = errors.New("no launch records")

// Launch is a single row of the launch records table.
type Launch struct {
	FlightNumber           int     `json:"flightNumber,omitempty"`
	LaunchSite             string  `json:"launchSite"`
	Class                  int     `json:"class"`
	PayloadMass            float64 `json:"payloadMass"`
	BoosterVersion         string  `json:"boosterVersion,omitempty"`
	BoosterVersionCategory string  `json:"boosterVersionCategory,omitempty"`
}

// Dataset is the in-memory launch table. It is never mutated after Load,
// so it can be shared between concurrent requests.
type Dataset struct {
	launches   []Launch
	PayloadMin float64
	PayloadMax float64
}

// New builds a Dataset from already parsed launches.
func New(launches []Launch) (*Dataset, error) {
	if len(launches) == 0 {
		return nil, ErrNoRecords
	}

	for i, l := range launches {
		if math.IsNaN(l.PayloadMass) || math.IsInf(l.PayloadMass, 0) {
			return nil, fmt.Errorf("launch %d: payload mass %v is not finite", i, l.PayloadMass)
		}
	}

	ds := &Dataset{launches: slices.Clone(launches)}
	payloads := lo.Map(ds.launches, func(l Launch, _ int) float64 { return l.PayloadMass })
	ds.PayloadMin = lo.Min(payloads)
	ds.PayloadMax = lo.Max(payloads)
	return ds, nil
}

// LoadFile reads a launch records CSV from disk.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}

	slog.Info("Loaded launch dataset", "path", path, "records", ds.Len(),
		"payloadMin", ds.PayloadMin, "payloadMax", ds.PayloadMax)
	return ds, nil
}

// Load parses a launch records CSV. Columns are located by header name, so
// column order and extra columns do not matter.
func Load(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var launches []Launch
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		launch, err := cols.parse(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		launches = append(launches, launch)
	}

	return New(launches)
}

// columnIndex maps the known columns to their position in a CSV record.
// Optional columns that are absent are -1.
type columnIndex struct {
	flightNumber    int
	launchSite      int
	class           int
	payloadMass     int
	boosterVersion  int
	boosterCategory int
}

func resolveColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		// Excel exports prepend a BOM to the first header cell.
		name = strings.TrimPrefix(name, "\ufeff")
		positions[strings.TrimSpace(name)] = i
	}

	lookup := func(name string) int {
		if i, ok := positions[name]; ok {
			return i
		}
		return -1
	}

	cols := columnIndex{
		flightNumber:    lookup(ColumnFlightNumber),
		launchSite:      lookup(ColumnLaunchSite),
		class:           lookup(ColumnClass),
		payloadMass:     lookup(ColumnPayloadMass),
		boosterVersion:  lookup(ColumnBoosterVersion),
		boosterCategory: lookup(ColumnBoosterVersionCategory),
	}

	var missing []string
	if cols.launchSite < 0 {
		missing = append(missing, ColumnLaunchSite)
	}
	if cols.class < 0 {
		missing = append(missing, ColumnClass)
	}
	if cols.payloadMass < 0 {
		missing = append(missing, ColumnPayloadMass)
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

func (c columnIndex) parse(record []string) (Launch, error) {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	launch := Launch{
		LaunchSite:             field(c.launchSite),
		BoosterVersion:         field(c.boosterVersion),
		BoosterVersionCategory: field(c.boosterCategory),
	}
	if launch.LaunchSite == "" {
		return Launch{}, fmt.Errorf("empty %q value", ColumnLaunchSite)
	}

	class, err := strconv.ParseFloat(field(c.class), 64)
	if err != nil {
		return Launch{}, fmt.Errorf("invalid %q value %q: %w", ColumnClass, field(c.class), err)
	}
	if class != ClassFailure && class != ClassSuccess {
		return Launch{}, fmt.Errorf("invalid %q value %q: must be 0 or 1", ColumnClass, field(c.class))
	}
	launch.Class = int(class)

	launch.PayloadMass, err = strconv.ParseFloat(field(c.payloadMass), 64)
	if err != nil {
		return Launch{}, fmt.Errorf("invalid %q value %q: %w", ColumnPayloadMass, field(c.payloadMass), err)
	}
	if math.IsNaN(launch.PayloadMass) || math.IsInf(launch.PayloadMass, 0) {
		return Launch{}, fmt.Errorf("invalid %q value %q: must be finite", ColumnPayloadMass, field(c.payloadMass))
	}

	if raw := field(c.flightNumber); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Launch{}, fmt.Errorf("invalid %q value %q: %w", ColumnFlightNumber, raw, err)
		}
		launch.FlightNumber = n
	}

	return launch, nil
}

// Launches returns a copy of all launch records in file order.
func (d *Dataset) Launches() []Launch {
	return slices.Clone(d.launches)
}

// Len returns the number of launch records.
func (d *Dataset) Len() int {
	return len(d.launches)
}

// Sites returns the distinct launch sites, sorted.
func (d *Dataset) Sites() []string {
	sites := lo.Uniq(lo.Map(d.launches, func(l Launch, _ int) string { return l.LaunchSite }))
	slices.Sort(sites)
	return sites
}

// HasSite reports whether any launch was recorded at site.
func (d *Dataset) HasSite(site string) bool {
	return lo.ContainsBy(d.launches, func(l Launch) bool { return l.LaunchSite == site })
}

// BoosterCategories returns the distinct booster version categories, sorted.
func (d *Dataset) BoosterCategories() []string {
	categories := lo.Uniq(lo.FilterMap(d.launches, func(l Launch, _ int) (string, bool) {
		return l.BoosterVersionCategory, l.BoosterVersionCategory != ""
	}))
	slices.Sort(categories)
	return categories
}
