package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

func view() []model.Article {
	return []model.Article{
		{Keywords: []string{"Santé", "Politique"}, People: []string{"Macron"}},
		{Keywords: []string{}, People: []string{}},
		{Keywords: []string{"Économie", "Santé", "Santé"}, People: []string{"Biden", "Macron"}},
		{Keywords: []string{"Politique", "Sport"}},
	}
}

func TestExplode(t *testing.T) {
	got := Explode(view(), model.Keywords)
	assert.Equal(t, []string{"Santé", "Politique", "Économie", "Santé", "Santé", "Politique", "Sport"}, got)

	assert.Equal(t, []string{}, Explode(view(), model.Column("sentiment")))
	assert.Equal(t, []string{}, Explode(nil, model.Keywords))
}

func TestFrequenciesTieBreakFirstSeen(t *testing.T) {
	got := Frequencies([]string{"b", "a", "c", "a", "b", "d"})
	assert.Equal(t, []Count{
		{Value: "b", Count: 2},
		{Value: "a", Count: 2},
		{Value: "c", Count: 1},
		{Value: "d", Count: 1},
	}, got)
}

func TestTop(t *testing.T) {
	got := Top(view(), model.Keywords, 2)
	assert.Equal(t, []Count{{Value: "Santé", Count: 3}, {Value: "Politique", Count: 2}}, got)

	all := Top(view(), model.People, 0)
	assert.Equal(t, []string{"Macron", "Biden"}, Labels(all))

	assert.Empty(t, Top(nil, model.Keywords, 10))
}

func TestMode(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		exclude []string
		want    string
		ok      bool
	}{
		{name: "single winner", values: []string{"a", "b", "b"}, want: "b", ok: true},
		{name: "tie picks smallest", values: []string{"Zelensky", "Biden", "Zelensky", "Biden"}, want: "Biden", ok: true},
		{name: "excluded values skipped", values: []string{"Santé", "Santé", "Sport"}, exclude: []string{"Santé"}, want: "Sport", ok: true},
		{name: "everything excluded", values: []string{"Santé"}, exclude: []string{"Santé"}, ok: false},
		{name: "empty", values: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mode(tt.values, tt.exclude)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
