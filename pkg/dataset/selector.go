package dataset

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/prometheus/prometheus/model/labels"
	"github.com/prometheus/prometheus/promql/parser"
)

// Label names accepted in launch selectors.
const (
	LabelLaunchSite             = "launch_site"
	LabelClass                  = "class"
	LabelBoosterVersion         = "booster_version"
	LabelBoosterVersionCategory = "booster_version_category"
	LabelFlightNumber           = "flight_number"
)

var selectorLabels = []string{
	LabelLaunchSite,
	LabelClass,
	LabelBoosterVersion,
	LabelBoosterVersionCategory,
	LabelFlightNumber,
}

// SelectorLabels returns the label names accepted in launch selectors.
func SelectorLabels() []string {
	return slices.Clone(selectorLabels)
}

// Labels returns the launch as a label set usable with Prometheus matchers.
func (l Launch) Labels() labels.Labels {
	return labels.FromStrings(
		LabelLaunchSite, l.LaunchSite,
		LabelClass, strconv.Itoa(l.Class),
		LabelBoosterVersion, l.BoosterVersion,
		LabelBoosterVersionCategory, l.BoosterVersionCategory,
		LabelFlightNumber, strconv.Itoa(l.FlightNumber),
	)
}

// ParseSelector parses a series-selector style launch query such as
// {launch_site="KSC LC-39A", booster_version_category=~"B.*"}.
// Metric names are not meaningful for launches and are rejected.
func ParseSelector(selector string) ([]*labels.Matcher, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, fmt.Errorf("selector must not be empty")
	}

	matchers, err := parser.ParseMetricSelector(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid launch selector %q: %w", selector, err)
	}

	for _, m := range matchers {
		if m.Name == labels.MetricName {
			return nil, fmt.Errorf("launch selectors do not support metric names, got %q", m.Value)
		}
		if !slices.Contains(selectorLabels, m.Name) {
			return nil, fmt.Errorf("unknown launch label %q (valid labels: %s)", m.Name, strings.Join(selectorLabels, ", "))
		}
	}

	return matchers, nil
}

// ByMatchers keeps launches whose labels satisfy all matchers.
func ByMatchers(matchers []*labels.Matcher) Predicate {
	return func(l Launch) bool {
		lbls := l.Labels()
		for _, m := range matchers {
			if !m.Matches(lbls.Get(m.Name)) {
				return false
			}
		}
		return true
	}
}

// Select runs a parsed selector against the dataset.
func (d *Dataset) Select(matchers []*labels.Matcher) []Launch {
	return d.Filter(ByMatchers(matchers))
}
