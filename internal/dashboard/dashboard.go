// Package dashboard derives the KPI and chart inputs shown by the dashboard
// from a filtered view of the corpus.
package dashboard

import (
	"log/slog"
	"time"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/config"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/cooccurrence"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/entity"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/filter"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/corpus"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/logger"
)

type Options struct {
	CooccurrenceTop int
	TopPersons      int
	TopLocations    int
	WordCloud       int
	KeywordOptions  int
	LocationOptions int
}

func DefaultOptions() Options {
	return OptionsFromConfig(config.Default().Charts)
}

func OptionsFromConfig(cfg config.ChartsConfig) Options {
	return Options{
		CooccurrenceTop: cfg.CooccurrenceTop,
		TopPersons:      cfg.TopPersons,
		TopLocations:    cfg.TopLocations,
		WordCloud:       cfg.WordCloud,
		KeywordOptions:  cfg.KeywordOptions,
		LocationOptions: cfg.LocationOptions,
	}
}

// FilterOptions seeds the filter controls from the whole corpus.
type FilterOptions struct {
	MinDate   *time.Time `json:"min_date"`
	MaxDate   *time.Time `json:"max_date"`
	Keywords  []string   `json:"keywords"`
	Locations []string   `json:"locations"`
}

// Snapshot is everything the dashboard renders for one selection.
type Snapshot struct {
	Selection    model.Selection      `json:"selection"`
	KPIs         KPIs                 `json:"kpis"`
	Timeline     []DayCount           `json:"timeline"`
	TopPersons   []entity.Count       `json:"top_persons"`
	TopLocations []entity.Count       `json:"top_locations"`
	WordCloud    []CloudWord          `json:"word_cloud"`
	Hierarchy    []HierarchyEdge      `json:"hierarchy"`
	Heatmap      *cooccurrence.Matrix `json:"heatmap"`
}

type Builder struct {
	corpus *corpus.Corpus
	opts   Options
	log    *slog.Logger
}

func New(c *corpus.Corpus, opts Options, log *slog.Logger) *Builder {
	return &Builder{corpus: c, opts: opts, log: logger.OrDiscard(log)}
}

func (b *Builder) FilterOptions() FilterOptions {
	out := FilterOptions{Keywords: []string{}, Locations: []string{}}
	view := b.corpus.Articles()
	if min, max, ok := corpus.DateBounds(view); ok {
		out.MinDate, out.MaxDate = &min, &max
	}
	if b.opts.KeywordOptions > 0 {
		out.Keywords = entity.Labels(entity.Top(view, model.Keywords, b.opts.KeywordOptions))
	}
	if b.opts.LocationOptions > 0 {
		out.Locations = entity.Labels(entity.Top(view, model.Locations, b.opts.LocationOptions))
	}
	return out
}

// View applies sel to the corpus.
func (b *Builder) View(sel model.Selection) []model.Article {
	return filter.Apply(b.corpus.Articles(), sel)
}

func (b *Builder) Snapshot(sel model.Selection) Snapshot {
	start := time.Now()
	view := b.View(sel)

	s := Snapshot{
		Selection:    sel,
		KPIs:         ComputeKPIs(view, sel),
		Timeline:     Timeline(view),
		TopPersons:   entity.Top(view, model.People, b.opts.TopPersons),
		TopLocations: entity.Top(view, model.Locations, b.opts.TopLocations),
		WordCloud:    WordCloud(view, b.opts.WordCloud),
		Hierarchy:    Hierarchy(view),
		Heatmap:      cooccurrence.Compute(view, model.Keywords, b.opts.CooccurrenceTop),
	}

	b.log.Debug("dashboard snapshot", "articles", len(view), "duration", time.Since(start))
	return s
}
