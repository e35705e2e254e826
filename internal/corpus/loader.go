package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/common"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/logger"
)

// Open loads the corpus at path. Any load failure is logged and yields an
// empty corpus; callers never see an error and there is no retry.
func Open(path string, log *slog.Logger) *Corpus {
	log = logger.OrDiscard(log)

	c, err := Load(path, log)
	if err != nil {
		log.Error("corpus load failed, continuing with an empty corpus", "path", path, "error", err)
		return Empty()
	}

	log.Info("corpus loaded", "path", path, "articles", c.Len(), "skipped", c.Skipped())
	return c
}

// Load reads a corpus CSV file.
func Load(path string, log *slog.Logger) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	c, err := Read(f, log)
	if err != nil {
		return nil, err
	}
	c.source = path
	return c, nil
}

// Read parses corpus rows from r. The header must contain a date column;
// title, content, url and the four entity columns are optional.
func Read(r io.Reader, log *slog.Logger) (*Corpus, error) {
	log = logger.OrDiscard(log)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("corpus is empty: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		idx[strings.TrimSpace(name)] = i
	}
	if _, ok := idx["date"]; !ok {
		return nil, fmt.Errorf("corpus header has no 'date' column: %v", header)
	}

	c := &Corpus{articles: []model.Article{}}
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			log.Debug("skipping malformed csv row", "line", perr.Line, "error", err)
			c.skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		article, err := parseRow(row, idx, log)
		if err != nil {
			log.Debug("skipping row", "line", line, "error", err)
			c.skipped++
			continue
		}
		c.articles = append(c.articles, article)
	}

	return c, nil
}

func parseRow(row []string, idx map[string]int, log *slog.Logger) (model.Article, error) {
	cell := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	date, err := ParseDate(cell("date"))
	if err != nil {
		return model.Article{}, err
	}

	return model.Article{
		Date:          date,
		Title:         cell("title"),
		Content:       cell("content"),
		URL:           cell("url"),
		Keywords:      parseEntities(cell(string(model.Keywords)), log),
		Locations:     parseEntities(cell(string(model.Locations)), log),
		Organizations: parseEntities(cell(string(model.Organizations)), log),
		People:        parseEntities(cell(string(model.People)), log),
	}, nil
}

// ParseDate accepts any common timestamp layout. Zone-less values are read as UTC.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") || strings.EqualFold(raw, "nat") {
		return time.Time{}, fmt.Errorf("missing date")
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return t, nil
}

// parseEntities never returns nil: blank, non-list and broken cells become [].
func parseEntities(raw string, log *slog.Logger) []string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "[") {
		return []string{}
	}
	items, err := common.ParseList(raw)
	if err != nil {
		log.Debug("unparseable entity list", "cell", raw, "error", err)
		return []string{}
	}
	return items
}
