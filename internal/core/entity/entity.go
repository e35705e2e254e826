// Package entity explodes multi-valued entity columns and ranks their values.
package entity

import (
	"sort"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

// Count is one leaderboard row.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Explode flattens col across the view. Values are not deduplicated; an
// unknown column yields an empty slice.
func Explode(view []model.Article, col model.Column) []string {
	out := []string{}
	for _, a := range view {
		out = append(out, a.Entities(col)...)
	}
	return out
}

// Frequencies counts values by descending frequency. Ties keep the order in
// which the values were first encountered.
func Frequencies(values []string) []Count {
	index := make(map[string]int)
	counts := []Count{}
	for _, v := range values {
		if i, ok := index[v]; ok {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, Count{Value: v, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Top returns the n most frequent values of col within the view. n <= 0 returns all.
func Top(view []model.Article, col model.Column, n int) []Count {
	counts := Frequencies(Explode(view, col))
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// Labels returns the values of a leaderboard in rank order.
func Labels(counts []Count) []string {
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = c.Value
	}
	return out
}

// Mode returns the most frequent value not listed in exclude. Ties resolve to
// the smallest value in byte order. ok is false when no value remains.
func Mode(values []string, exclude []string) (mode string, ok bool) {
	skip := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		skip[e] = struct{}{}
	}

	freq := make(map[string]int)
	for _, v := range values {
		if _, excluded := skip[v]; excluded {
			continue
		}
		freq[v]++
	}

	best := 0
	for v, n := range freq {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, best > 0
}
