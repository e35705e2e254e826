package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproxCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "a", want: 1},
		{text: "abcd", want: 1},
		{text: "abcde", want: 2},
		{text: "élysée!!", want: 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Approx{}.Count(tt.text), tt.text)
	}
}

func TestApproxIsMonotonicOnPrefixes(t *testing.T) {
	text := "Les tendances du mois montrent une hausse des articles sur la santé."
	prev := 0
	for i := range text {
		n := Approx{}.Count(text[:i])
		assert.GreaterOrEqual(t, n, prev)
		prev = n
	}
}

func TestNewApproxEncoding(t *testing.T) {
	assert.Equal(t, Approx{}, New(ApproxEncoding, nil))
	assert.Equal(t, Approx{}, New("", nil))
}
