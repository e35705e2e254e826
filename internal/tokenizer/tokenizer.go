// Package tokenizer measures text length in model tokens.
package tokenizer

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/logger"
)

// Counter counts the tokens of a text.
type Counter interface {
	Count(text string) int
}

// Tiktoken counts BPE tokens with a tiktoken encoding such as cl100k_base.
type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

func NewTiktoken(encoding string) (*Tiktoken, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", encoding, err)
	}
	return &Tiktoken{enc: enc}, nil
}

func (t *Tiktoken) Count(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}

// Approx estimates one token per four runes, rounded up.
type Approx struct{}

func (Approx) Count(text string) int {
	return (utf8.RuneCountInString(text) + 3) / 4
}

// ApproxEncoding selects Approx without trying tiktoken.
const ApproxEncoding = "approx"

// New returns a tiktoken counter, falling back to Approx when the encoding
// cannot be loaded (tiktoken fetches its BPE ranks on first use).
func New(encoding string, log *slog.Logger) Counter {
	log = logger.OrDiscard(log)
	if encoding == "" || encoding == ApproxEncoding {
		return Approx{}
	}
	t, err := NewTiktoken(encoding)
	if err != nil {
		log.Warn("tiktoken unavailable, using approximate token counts", "error", err)
		return Approx{}
	}
	return t
}
