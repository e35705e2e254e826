// Package filter applies dashboard selections to article views.
// Every function is pure: a view in, a new view out, input order preserved.
package filter

import (
	"time"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

// Apply keeps the articles passing every active facet of sel. Within the
// keyword and location facets any selected value is enough.
func Apply(view []model.Article, sel model.Selection) []model.Article {
	out := make([]model.Article, 0, len(view))

	keywords := toSet(sel.Keywords)
	locations := toSet(sel.Locations)

	for _, a := range view {
		if sel.HasDateRange() && !InRange(a.Date, *sel.Start, *sel.End) {
			continue
		}
		if len(keywords) > 0 && !intersects(a.Keywords, keywords) {
			continue
		}
		if len(locations) > 0 && !intersects(a.Locations, locations) {
			continue
		}
		out = append(out, a)
	}

	return out
}

// ByDate keeps articles dated within [start, end], both ends inclusive.
func ByDate(view []model.Article, start, end time.Time) []model.Article {
	return Apply(view, model.Selection{Start: &start, End: &end})
}

// ByKeywords keeps articles tagged with at least one of keywords.
func ByKeywords(view []model.Article, keywords []string) []model.Article {
	return Apply(view, model.Selection{Keywords: keywords})
}

// ByLocations keeps articles mentioning at least one of locations.
func ByLocations(view []model.Article, locations []string) []model.Article {
	return Apply(view, model.Selection{Locations: locations})
}

// InRange reports start <= t <= end.
func InRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func intersects(values []string, set map[string]struct{}) bool {
	for _, v := range values {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}
