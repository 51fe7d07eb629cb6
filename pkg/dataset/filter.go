package dataset

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// Predicate selects launches from a table.
type Predicate func(Launch) bool

// BySite keeps launches recorded at site.
func BySite(site string) Predicate {
	return func(l Launch) bool {
		return l.LaunchSite == site
	}
}

// InPayloadRange keeps launches whose payload mass lies in [low, high].
func InPayloadRange(low, high float64) Predicate {
	return func(l Launch) bool {
		return l.PayloadMass >= low && l.PayloadMass <= high
	}
}

// Successful keeps launches with class 1.
func Successful() Predicate {
	return func(l Launch) bool {
		return l.Class == ClassSuccess
	}
}

// Filter returns the launches matching every predicate, in file order.
func (d *Dataset) Filter(predicates ...Predicate) []Launch {
	return Filter(d.launches, predicates...)
}

// Filter applies predicates to an arbitrary launch slice.
func Filter(launches []Launch, predicates ...Predicate) []Launch {
	return lo.Filter(launches, func(l Launch, _ int) bool {
		for _, p := range predicates {
			if !p(l) {
				return false
			}
		}
		return true
	})
}

// Count is one row of a group-and-count aggregation.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// CountBy groups launches by key and counts each group. Rows are sorted by
// key; empty groups never appear.
func CountBy(launches []Launch, key func(Launch) string) []Count {
	counts := lo.CountValuesBy(launches, key)

	rows := make([]Count, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, Count{Key: k, Count: n})
	}
	slices.SortFunc(rows, func(a, b Count) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return rows
}

// CountBySite counts launches per launch site.
func CountBySite(launches []Launch) []Count {
	return CountBy(launches, func(l Launch) string { return l.LaunchSite })
}

// CountByClass counts launches per outcome. Keys are the raw class values
// "0" and "1".
func CountByClass(launches []Launch) []Count {
	return CountBy(launches, func(l Launch) string { return strconv.Itoa(l.Class) })
}

// GroupByBoosterCategory splits launches by booster version category,
// preserving file order inside each group. Categories are returned in
// order of first appearance.
func GroupByBoosterCategory(launches []Launch) ([]string, map[string][]Launch) {
	category := func(l Launch) string { return l.BoosterVersionCategory }
	keys := lo.Uniq(lo.Map(launches, func(l Launch, _ int) string { return category(l) }))
	return keys, lo.GroupBy(launches, category)
}
