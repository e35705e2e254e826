package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/corpus"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/logger"
)

func records(t *testing.T, raw string) []gjson.Result {
	t.Helper()
	env, err := Detect([]byte(raw))
	require.NoError(t, err)
	return env.Records
}

func TestDateColumnPriority(t *testing.T) {
	col, ok := DateColumn(records(t, `[{"date":"2023-01-01"},{"date_published":"2023-01-02"}]`))
	require.True(t, ok)
	assert.Equal(t, "date_published", col)

	_, ok = DateColumn(records(t, `[{"title":"x"}]`))
	assert.False(t, ok)
}

func TestConvert(t *testing.T) {
	raw := `[
		{"published_at":"2023-01-02T08:30:00Z","title":"Sommet","kws":["Santé","Politique"],"loc":"['Paris']","org":[],"url":"https://ex.fr/1","content":"Texte"},
		{"published_at":"pas une date","title":"Cassé"},
		{"title":"Sans date"},
		{"published_at":"2023-01-03","title":"Brut","per":"Macron","org":["ONU", 3]}
	]`

	articles, stats, err := Convert(records(t, raw), logger.Discard())
	require.NoError(t, err)

	assert.Equal(t, "published_at", stats.DateColumn)
	assert.Equal(t, 4, stats.Records)
	assert.Equal(t, 2, stats.Dropped)
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, time.Date(2023, 1, 2, 8, 30, 0, 0, time.UTC), first.Date.UTC())
	assert.Equal(t, []string{"Santé", "Politique"}, first.Keywords)
	assert.Equal(t, []string{"Paris"}, first.Locations)
	assert.Equal(t, []string{}, first.Organizations)
	assert.Equal(t, []string{}, first.People)
	assert.Equal(t, "https://ex.fr/1", first.URL)

	second := articles[1]
	assert.Equal(t, []string{}, second.People)
	assert.Equal(t, []string{"ONU"}, second.Organizations)
}

func TestConvertWithoutDateColumn(t *testing.T) {
	_, _, err := Convert(records(t, `[{"title":"x"}]`), nil)
	assert.Error(t, err)
}

func TestWriteCSVLoadsBack(t *testing.T) {
	articles := Synthesize(25, 7)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, articles))

	c, err := corpus.Read(&buf, logger.Discard())
	require.NoError(t, err)
	require.Equal(t, len(articles), c.Len())
	assert.Equal(t, 0, c.Skipped())

	loaded := c.Articles()
	for i := range articles {
		assert.True(t, articles[i].Date.Equal(loaded[i].Date))
		assert.Equal(t, articles[i].Title, loaded[i].Title)
		assert.Equal(t, articles[i].Keywords, loaded[i].Keywords)
		assert.Equal(t, articles[i].People, loaded[i].People)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("a.json", `{"data":{"all":[{"date":"2023-02-01","title":"Un","kws":["Sport"]}]}}`)
	write("b.json", `[{"date":"2023-02-02","title":"Deux"},{"date":"?","title":"Trois"}]`)
	write("c.json", `{"unexpected":true}`)
	write("d.json", `not json`)
	write("notes.txt", `ignored`)

	out := filepath.Join(dir, "processed", "clean_data.csv")
	stats, err := Run(dir, out, logger.Discard())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Files)
	assert.Equal(t, 3, stats.Records)
	assert.Equal(t, 2, stats.Written)
	assert.Equal(t, 1, stats.Dropped)
	assert.Equal(t, "date", stats.DateColumn)

	c, err := corpus.Load(out, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestRunEmptyDir(t *testing.T) {
	_, err := Run(t.TempDir(), filepath.Join(t.TempDir(), "out.csv"), nil)
	assert.Error(t, err)
}
