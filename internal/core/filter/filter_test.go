package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

func day(d int) time.Time {
	return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func fixture() []model.Article {
	return []model.Article{
		{Title: "a1", Date: day(1), Keywords: []string{"Santé"}, Locations: []string{"Paris"}},
		{Title: "a2", Date: day(2), Keywords: []string{"Santé", "Politique"}, Locations: []string{"Dakar"}},
		{Title: "a3", Date: day(3), Keywords: []string{"Sport"}, Locations: []string{"Paris", "Berlin"}},
		{Title: "a4", Date: day(4), Keywords: []string{}, Locations: []string{}},
	}
}

func titles(view []model.Article) []string {
	out := []string{}
	for _, a := range view {
		out = append(out, a.Title)
	}
	return out
}

func TestApplyNoConstraints(t *testing.T) {
	got := Apply(fixture(), model.Selection{})
	assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, titles(got))
}

func TestApplyFacetOrSemantics(t *testing.T) {
	view := []model.Article{{Title: "ab", Keywords: []string{"A", "B"}}}

	assert.Len(t, ByKeywords(view, []string{"B", "C"}), 1)
	assert.Empty(t, ByKeywords(view, []string{"C", "D"}))
}

func TestApplyDateInclusive(t *testing.T) {
	got := ByDate(fixture(), day(2), day(3))
	assert.Equal(t, []string{"a2", "a3"}, titles(got))

	// a single bound is ignored
	got = Apply(fixture(), model.Selection{Start: ptr(day(3))})
	assert.Len(t, got, 4)

	// inverted bounds give nothing, not an error
	assert.Empty(t, ByDate(fixture(), day(4), day(1)))
}

func TestApplyConjunction(t *testing.T) {
	sel := model.Selection{
		Keywords:  []string{"Santé", "Sport"},
		Locations: []string{"Paris"},
	}
	assert.Equal(t, []string{"a1", "a3"}, titles(Apply(fixture(), sel)))

	// any facet without a match empties the result
	sel.Locations = []string{"Tokyo"}
	assert.Empty(t, Apply(fixture(), sel))
}

func TestApplyIsSubsequenceAndPure(t *testing.T) {
	view := fixture()
	sels := []model.Selection{
		{},
		{Keywords: []string{"Santé"}},
		{Locations: []string{"Paris", "Dakar"}},
		{Start: ptr(day(1)), End: ptr(day(2)), Keywords: []string{"Politique"}},
		{Keywords: []string{"absent"}},
	}

	for _, sel := range sels {
		got := Apply(view, sel)

		// order-preserving subsequence
		i := 0
		for _, a := range got {
			for i < len(view) && view[i].Title != a.Title {
				i++
			}
			require.Less(t, i, len(view), "%s not found in order", a.Title)
			i++
		}

		assert.Equal(t, got, Apply(view, sel))
	}
	assert.Equal(t, fixture(), view)
}

func TestEndToEndScenario(t *testing.T) {
	view := []model.Article{
		{Title: "j1", Date: day(1), Keywords: []string{"Santé"}},
		{Title: "j2", Date: day(2), Keywords: []string{"Économie"}},
		{Title: "j3", Date: day(3), Keywords: []string{"Santé"}},
	}
	start, end, err := model.DayRange("2023-01-01", "2023-01-02")
	require.NoError(t, err)

	got := Apply(view, model.Selection{Start: start, End: end, Keywords: []string{"Santé"}})
	assert.Equal(t, []string{"j1"}, titles(got))
	assert.Len(t, got, 1)
}
