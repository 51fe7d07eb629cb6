package callbacks

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/rhobs/launch-dash/pkg/dataset"
	"github.com/rhobs/launch-dash/pkg/figure"
)

// AllSites is the dropdown value selecting every launch site.
const AllSites = "ALL"

var (
	// ErrUnknownSite is returned for a site value that is neither AllSites nor
	// present in the dataset.
	ErrUnknownSite = errors.New("unknown launch site")
	// ErrInvalidRange is returned for a payload range that is not two finite numbers.
	ErrInvalidRange = errors.New("invalid payload range")
)

// maxSuggestionDistance bounds the edit distance of "did you mean" hints.
const maxSuggestionDistance = 4

// NormalizeSite maps an empty selection to AllSites and checks that any
// other value names a site of the dataset. Matching is case sensitive.
func NormalizeSite(ds *dataset.Dataset, site string) (string, error) {
	site = strings.TrimSpace(site)
	if site == "" || site == AllSites {
		return AllSites, nil
	}
	if ds.HasSite(site) {
		return site, nil
	}

	if suggestion := suggestSite(append([]string{AllSites}, ds.Sites()...), site); suggestion != "" {
		return "", fmt.Errorf("%w %q, did you mean %q?", ErrUnknownSite, site, suggestion)
	}
	return "", fmt.Errorf("%w %q (valid sites: %s, %s)", ErrUnknownSite, site, AllSites, strings.Join(ds.Sites(), ", "))
}

func suggestSite(sites []string, site string) string {
	best, bestDistance := "", maxSuggestionDistance+1
	for _, candidate := range sites {
		d := levenshtein.ComputeDistance(strings.ToUpper(candidate), strings.ToUpper(site))
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best
}

// NormalizeRange validates a payload range, swapping the bounds when they
// arrive reversed.
func NormalizeRange(low, high float64) (float64, float64, error) {
	for _, v := range []float64{low, high} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, fmt.Errorf("%w: bounds must be finite numbers, got [%v, %v]", ErrInvalidRange, low, high)
		}
	}
	if low > high {
		low, high = high, low
	}
	return low, high, nil
}

// SuccessPie builds the launch success pie chart. For AllSites it shows the
// share of successful launches per site; for a single site it shows that
// site's success and failure counts.
func SuccessPie(ds *dataset.Dataset, site string) (figure.Figure, error) {
	site, err := NormalizeSite(ds, site)
	if err != nil {
		return figure.Figure{}, err
	}

	if site == AllSites {
		counts := dataset.CountBySite(ds.Filter(dataset.Successful()))
		names, values := countColumns(counts, nil)
		return figure.Pie("Total Successful Launches by Site", names, values), nil
	}

	counts := dataset.CountByClass(ds.Filter(dataset.BySite(site)))
	names, values := countColumns(counts, map[string]string{
		"1": "Success",
		"0": "Failure",
	})
	return figure.Pie(fmt.Sprintf("Success vs. Failure for %s", site), names, values), nil
}

func countColumns(counts []dataset.Count, rename map[string]string) ([]string, []float64) {
	names := make([]string, 0, len(counts))
	values := make([]float64, 0, len(counts))
	for _, c := range counts {
		name := c.Key
		if renamed, ok := rename[c.Key]; ok {
			name = renamed
		}
		names = append(names, name)
		values = append(values, float64(c.Count))
	}
	return names, values
}

// PayloadScatter builds the payload mass versus outcome scatter chart for
// launches with payload in [low, high], optionally restricted to one site.
// Points are colored by booster version category.
func PayloadScatter(ds *dataset.Dataset, site string, low, high float64) (figure.Figure, error) {
	site, err := NormalizeSite(ds, site)
	if err != nil {
		return figure.Figure{}, err
	}
	low, high, err = NormalizeRange(low, high)
	if err != nil {
		return figure.Figure{}, err
	}

	predicates := []dataset.Predicate{dataset.InPayloadRange(low, high)}
	title := "Payload vs. Outcome for All Sites"
	if site != AllSites {
		predicates = append(predicates, dataset.BySite(site))
		title = fmt.Sprintf("Payload vs. Outcome for %s", site)
	}

	categories, byCategory := dataset.GroupByBoosterCategory(ds.Filter(predicates...))
	groups := make([]figure.Group, 0, len(categories))
	for _, category := range categories {
		launches := byCategory[category]
		g := figure.Group{Name: category, Points: make([]figure.Point, 0, len(launches))}
		for _, l := range launches {
			g.Points = append(g.Points, figure.Point{
				X:     l.PayloadMass,
				Y:     float64(l.Class),
				Hover: []string{l.LaunchSite, l.BoosterVersion},
			})
		}
		groups = append(groups, g)
	}

	return figure.Scatter(figure.ScatterOptions{
		Title:       title,
		XLabel:      dataset.ColumnPayloadMass,
		YLabel:      dataset.ColumnClass,
		ColorLabel:  dataset.ColumnBoosterVersionCategory,
		HoverLabels: []string{dataset.ColumnLaunchSite, dataset.ColumnBoosterVersion},
	}, groups), nil
}
