// Package cooccurrence counts how often the most frequent entities of a
// column appear together in the same article.
package cooccurrence

import (
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/entity"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

// DefaultTopN matches the keyword heatmap size.
const DefaultTopN = 25

// Matrix is a dense symmetric count matrix indexed by Labels. Counts[i][j]
// is the number of articles containing both Labels[i] and Labels[j].
type Matrix struct {
	Labels []string `json:"labels"`
	Counts [][]int  `json:"counts"`
	index  map[string]int
}

// Compute builds the matrix for the topN most frequent values of col in the
// view. Each article contributes at most once per pair; self pairs are ignored.
func Compute(view []model.Article, col model.Column, topN int) *Matrix {
	if topN <= 0 {
		topN = DefaultTopN
	}

	labels := entity.Labels(entity.Top(view, col, topN))
	m := newMatrix(labels)

	for _, a := range view {
		restricted := m.restrict(a.Entities(col))
		for i := 0; i < len(restricted); i++ {
			for j := i + 1; j < len(restricted); j++ {
				x, y := restricted[i], restricted[j]
				m.Counts[x][y]++
				m.Counts[y][x]++
			}
		}
	}

	return m
}

func newMatrix(labels []string) *Matrix {
	m := &Matrix{
		Labels: labels,
		Counts: make([][]int, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		m.Counts[i] = make([]int, len(labels))
		m.index[l] = i
	}
	return m
}

// restrict keeps the entities that belong to the matrix, in their original
// order, as matrix indices. Repeated tags are kept once.
func (m *Matrix) restrict(entities []string) []int {
	var out []int
	seen := make(map[int]struct{}, len(entities))
	for _, e := range entities {
		i, ok := m.index[e]
		if !ok {
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	return out
}

// Size is the number of labels.
func (m *Matrix) Size() int {
	return len(m.Labels)
}

// At returns the count for a pair of labels, 0 when either is absent.
func (m *Matrix) At(a, b string) int {
	i, ok := m.index[a]
	if !ok {
		return 0
	}
	j, ok := m.index[b]
	if !ok {
		return 0
	}
	return m.Counts[i][j]
}

// Pair is one non-zero off-diagonal cell.
type Pair struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// Pairs lists the upper-triangle cells with a positive count, in label order.
func (m *Matrix) Pairs() []Pair {
	var out []Pair
	for i := range m.Labels {
		for j := i + 1; j < len(m.Labels); j++ {
			if n := m.Counts[i][j]; n > 0 {
				out = append(out, Pair{A: m.Labels[i], B: m.Labels[j], Count: n})
			}
		}
	}
	return out
}
