// Package ingest turns raw JSON article exports into the flat CSV corpus the
// dashboard loads.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/common"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/corpus"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/logger"
)

// DateColumns are the candidate date fields, in priority order.
var DateColumns = []string{"date_published", "date", "created_at", "published_at"}

// Header is the column order of the produced CSV.
var Header = []string{"date", "title", "kws", "loc", "org", "per", "url", "content"}

type Stats struct {
	Files      int    `json:"files"`
	Records    int    `json:"records"`
	Written    int    `json:"written"`
	Dropped    int    `json:"dropped"`
	DateColumn string `json:"date_column"`
}

// Collect reads every file and concatenates their records. Unreadable or
// unrecognized files are logged and skipped.
func Collect(paths []string, log *slog.Logger) ([]gjson.Result, int) {
	log = logger.OrDiscard(log)

	var records []gjson.Result
	files := 0
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Error("failed to read export", "file", path, "error", err)
			continue
		}
		env, err := Detect(raw)
		if err != nil {
			log.Error("failed to parse export", "file", path, "error", err)
			continue
		}
		files++
		if env.Shape == ShapeUnknown || len(env.Records) == 0 {
			log.Warn("no articles found", "file", filepath.Base(path), "shape", env.Shape)
			continue
		}
		log.Info("read export", "file", filepath.Base(path), "shape", env.Shape, "articles", len(env.Records))
		records = append(records, env.Records...)
	}
	return records, files
}

// DateColumn picks the first candidate date field present in any record.
func DateColumn(records []gjson.Result) (string, bool) {
	for _, col := range DateColumns {
		for _, r := range records {
			if r.Get(gjson.Escape(col)).Exists() {
				return col, true
			}
		}
	}
	return "", false
}

// Convert normalizes records into articles, dropping those whose date
// cannot be parsed.
func Convert(records []gjson.Result, log *slog.Logger) ([]model.Article, Stats, error) {
	log = logger.OrDiscard(log)
	stats := Stats{Records: len(records)}

	col, ok := DateColumn(records)
	if !ok {
		return nil, stats, fmt.Errorf("no date column among %s", strings.Join(DateColumns, ", "))
	}
	stats.DateColumn = col

	articles := make([]model.Article, 0, len(records))
	for i, r := range records {
		date, err := corpus.ParseDate(r.Get(gjson.Escape(col)).String())
		if err != nil {
			log.Debug("dropping record", "index", i, "error", err)
			stats.Dropped++
			continue
		}
		articles = append(articles, model.Article{
			Date:          date,
			Title:         r.Get("title").String(),
			Content:       r.Get("content").String(),
			URL:           r.Get("url").String(),
			Keywords:      entities(r.Get("kws")),
			Locations:     entities(r.Get("loc")),
			Organizations: entities(r.Get("org")),
			People:        entities(r.Get("per")),
		})
	}
	return articles, stats, nil
}

// entities accepts either a JSON array of strings or a list-literal string.
func entities(v gjson.Result) []string {
	out := []string{}
	switch {
	case v.IsArray():
		for _, item := range v.Array() {
			if item.Type == gjson.String && item.String() != "" {
				out = append(out, item.String())
			}
		}
	case v.Type == gjson.String:
		if items, err := common.ParseList(v.String()); err == nil {
			out = items
		}
	}
	return out
}

// WriteCSV writes articles in the corpus CSV layout.
func WriteCSV(w io.Writer, articles []model.Article) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, a := range articles {
		row := []string{
			a.Date.UTC().Format(time.RFC3339),
			a.Title,
			common.FormatList(a.Keywords),
			common.FormatList(a.Locations),
			common.FormatList(a.Organizations),
			common.FormatList(a.People),
			a.URL,
			a.Content,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Run converts every *.json file of dir into one CSV at output.
func Run(dir, output string, log *slog.Logger) (Stats, error) {
	log = logger.OrDiscard(log)

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return Stats{}, fmt.Errorf("failed to list exports: %w", err)
	}
	sort.Strings(paths)
	log.Info("found exports", "dir", dir, "files", len(paths))

	records, files := Collect(paths, log)
	if len(records) == 0 {
		return Stats{Files: files}, fmt.Errorf("no articles found in %s", dir)
	}

	articles, stats, err := Convert(records, log)
	stats.Files = files
	if err != nil {
		return stats, err
	}

	if err := WriteFile(output, articles); err != nil {
		return stats, err
	}
	stats.Written = len(articles)
	log.Info("wrote corpus", "path", output, "articles", stats.Written, "dropped", stats.Dropped, "date_column", stats.DateColumn)
	return stats, nil
}

// WriteFile writes articles as a corpus CSV at path, creating its directory.
func WriteFile(path string, articles []model.Article) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", path, err)
	}
	if err := WriteCSV(f, articles); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
