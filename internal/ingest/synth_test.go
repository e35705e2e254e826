package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSynthesize(t *testing.T) {
	articles := Synthesize(200, 42)
	assert.Len(t, articles, 200)
	assert.Equal(t, articles, Synthesize(200, 42))

	end := synthStart.AddDate(0, 0, synthSpanDays)
	for _, a := range articles {
		assert.False(t, a.Date.Before(synthStart))
		assert.False(t, a.Date.After(end))
		assert.NotEmpty(t, a.Keywords)
		assert.Contains(t, synthTopics, a.Keywords[0])
		assert.GreaterOrEqual(t, len(a.Locations), 1)
		assert.LessOrEqual(t, len(a.Locations), 3)
		assert.LessOrEqual(t, len(a.Organizations), 2)
		assert.NotNil(t, a.People)
		assert.Equal(t, time.UTC, a.Date.Location())
	}
}

func TestSample(t *testing.T) {
	got := Synthesize(1, 1)[0]
	seen := map[string]bool{}
	for _, l := range got.Locations {
		assert.False(t, seen[l], "duplicate location %s", l)
		seen[l] = true
	}
}
