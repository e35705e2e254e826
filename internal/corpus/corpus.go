// Package corpus holds the in-memory, read-only table of articles.
package corpus

import (
	"slices"
	"time"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

// Corpus is loaded once per process and never mutated afterwards. Every
// accessor hands out fresh slices so callers cannot reorder the source.
type Corpus struct {
	articles []model.Article
	source   string
	skipped  int
}

// New builds a corpus from already-normalized articles.
func New(articles []model.Article) *Corpus {
	return &Corpus{articles: slices.Clone(articles)}
}

// Empty is the corpus used when loading fails.
func Empty() *Corpus {
	return &Corpus{articles: []model.Article{}}
}

// Articles returns the full corpus as a view.
func (c *Corpus) Articles() []model.Article {
	return slices.Clone(c.articles)
}

func (c *Corpus) Len() int {
	return len(c.articles)
}

// Source is the path the corpus was read from, if any.
func (c *Corpus) Source() string {
	return c.source
}

// Skipped counts rows dropped at load time (unparseable dates or broken rows).
func (c *Corpus) Skipped() int {
	return c.skipped
}

// DateBounds returns the earliest and latest article dates.
func (c *Corpus) DateBounds() (min, max time.Time, ok bool) {
	return DateBounds(c.articles)
}

// DateBounds returns the earliest and latest dates in a view.
func DateBounds(view []model.Article) (min, max time.Time, ok bool) {
	if len(view) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = view[0].Date, view[0].Date
	for _, a := range view[1:] {
		if a.Date.Before(min) {
			min = a.Date
		}
		if a.Date.After(max) {
			max = a.Date
		}
	}
	return min, max, true
}
