package dashboard

import (
	"math/rand"
	"sort"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/entity"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

const (
	UnknownLocation     = "Unknown Loc"
	UnknownOrganization = "Unknown Org"
	HierarchyRoot       = "Monde"

	hierarchyPairLimit = 1000
	hierarchyTopLocs   = 20
	hierarchyFanout    = 2

	cloudMinSize = 12.0
	cloudMaxSize = 60.0
	cloudSeed    = 42
)

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Timeline counts articles per calendar day, oldest first.
func Timeline(view []model.Article) []DayCount {
	counts := make(map[string]int)
	for _, a := range view {
		counts[a.Date.UTC().Format(model.DayLayout)]++
	}

	out := make([]DayCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DayCount{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// CloudWord is one keyword of the word cloud. Size scales linearly with the
// count between 12 and 60; X and Y are stable pseudo-random positions in
// [0, 100).
type CloudWord struct {
	Word  string  `json:"word"`
	Count int     `json:"count"`
	Size  float64 `json:"size"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func WordCloud(view []model.Article, n int) []CloudWord {
	top := entity.Top(view, model.Keywords, n)
	if len(top) == 0 {
		return []CloudWord{}
	}

	maxCount := float64(top[0].Count)
	rng := rand.New(rand.NewSource(cloudSeed))
	xs := make([]float64, len(top))
	ys := make([]float64, len(top))
	for i := range xs {
		xs[i] = rng.Float64() * 100
	}
	for i := range ys {
		ys[i] = rng.Float64() * 100
	}

	out := make([]CloudWord, len(top))
	for i, c := range top {
		out[i] = CloudWord{
			Word:  c.Value,
			Count: c.Count,
			Size:  cloudMinSize + float64(c.Count)/maxCount*(cloudMaxSize-cloudMinSize),
			X:     xs[i],
			Y:     ys[i],
		}
	}
	return out
}

// HierarchyEdge is one location/organization leaf of the sunburst rooted at
// HierarchyRoot.
type HierarchyEdge struct {
	Location     string `json:"location"`
	Organization string `json:"organization"`
	Count        int    `json:"count"`
}

// Hierarchy pairs the first two locations of each article with its first two
// organizations. Missing sides are filled with UnknownLocation and
// UnknownOrganization. Past 1000 pairs only the 20 most frequent locations
// are kept.
func Hierarchy(view []model.Article) []HierarchyEdge {
	type pair struct{ loc, org string }

	var pairs []pair
	for _, a := range view {
		locs := headOr(a.Locations, hierarchyFanout, UnknownLocation)
		orgs := headOr(a.Organizations, hierarchyFanout, UnknownOrganization)
		for _, l := range locs {
			for _, o := range orgs {
				pairs = append(pairs, pair{l, o})
			}
		}
	}

	if len(pairs) > hierarchyPairLimit {
		locs := make([]string, len(pairs))
		for i, p := range pairs {
			locs[i] = p.loc
		}
		keep := make(map[string]bool)
		for _, c := range topOf(locs, hierarchyTopLocs) {
			keep[c.Value] = true
		}
		kept := pairs[:0]
		for _, p := range pairs {
			if keep[p.loc] {
				kept = append(kept, p)
			}
		}
		pairs = kept
	}

	counts := make(map[pair]int)
	for _, p := range pairs {
		counts[p]++
	}
	out := make([]HierarchyEdge, 0, len(counts))
	for p, n := range counts {
		out = append(out, HierarchyEdge{Location: p.loc, Organization: p.org, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Location != out[j].Location {
			return out[i].Location < out[j].Location
		}
		return out[i].Organization < out[j].Organization
	})
	return out
}

func headOr(values []string, n int, fallback string) []string {
	if len(values) == 0 {
		return []string{fallback}
	}
	if len(values) > n {
		return values[:n]
	}
	return values
}

func topOf(values []string, n int) []entity.Count {
	counts := entity.Frequencies(values)
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
