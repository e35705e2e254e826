package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/entity"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/corpus"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/tokenizer"
)

const (
	DefaultMaxTokens       = 6000
	DefaultMaxArticles     = 15
	DefaultLeaderboardSize = 10
)

// Summarizer turns a filtered view into the textual context handed to the
// analyst, bounded by a token budget.
type Summarizer struct {
	Tokens          tokenizer.Counter
	MaxTokens       int
	LeaderboardSize int
	// IncludeContent adds a short preview of each sampled article body.
	IncludeContent bool
}

func NewSummarizer(tokens tokenizer.Counter, maxTokens, leaderboardSize int) *Summarizer {
	if tokens == nil {
		tokens = tokenizer.Approx{}
	}
	return &Summarizer{
		Tokens:          tokens,
		MaxTokens:       maxTokens,
		LeaderboardSize: leaderboardSize,
	}
}

// Summarize builds the context for view and truncates it to the token budget.
func (s *Summarizer) Summarize(view []model.Article, sel model.Selection, maxArticles int) string {
	return s.Truncate(s.Build(view, sel, maxArticles))
}

// Build renders the unabridged context. It is deterministic for a given view
// and selection.
func (s *Summarizer) Build(view []model.Article, sel model.Selection, maxArticles int) string {
	if len(view) == 0 {
		return NoArticlesSentinel
	}
	if maxArticles < 0 {
		maxArticles = DefaultMaxArticles
	}

	from, to, _ := corpus.DateBounds(view)
	n := s.leaderboardSize()

	return fmt.Sprintf(contextTemplate,
		len(view),
		from.Format(dateLayout),
		to.Format(dateLayout),
		joinOr(sel.Keywords, noneSelected),
		joinOr(sel.Locations, noneSelected),
		leaderboard(view, model.Keywords, n, "mots-clés"),
		leaderboard(view, model.Locations, n, "lieux"),
		leaderboard(view, model.People, n, "personnalités"),
		leaderboard(view, model.Organizations, n, "organisations"),
		s.articleSamples(view, maxArticles),
	)
}

// Fits reports whether text is within the token budget.
func (s *Summarizer) Fits(text string) bool {
	return s.Tokens.Count(text) <= s.maxTokens()
}

// Truncate returns text unchanged when it fits. Otherwise it keeps the head
// and tail lines around TruncationMarker, then falls back to a character cut
// ending with HardTruncationMarker.
func (s *Summarizer) Truncate(text string) string {
	if s.Fits(text) {
		return text
	}

	lines := strings.Split(text, "\n")
	keepStart := len(lines) * 6 / 10
	keepEnd := len(lines) * 2 / 10

	parts := make([]string, 0, keepStart+keepEnd+3)
	parts = append(parts, lines[:keepStart]...)
	parts = append(parts, "", TruncationMarker, "")
	parts = append(parts, lines[len(lines)-keepEnd:]...)

	out := strings.Join(parts, "\n")
	if s.Fits(out) {
		return out
	}
	return s.hardTruncate(text)
}

// hardTruncate keeps half of the characters and, if that still exceeds the
// budget, the longest prefix that fits.
func (s *Summarizer) hardTruncate(text string) string {
	runes := []rune(text)
	keep := len(runes) / 2

	out := string(runes[:keep]) + HardTruncationMarker
	if s.Fits(out) {
		return out
	}

	lo, hi := 0, keep
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.Fits(string(runes[:mid]) + HardTruncationMarker) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo]) + HardTruncationMarker
}

func (s *Summarizer) maxTokens() int {
	if s.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return s.MaxTokens
}

func (s *Summarizer) leaderboardSize() int {
	if s.LeaderboardSize <= 0 {
		return DefaultLeaderboardSize
	}
	return s.LeaderboardSize
}

func (s *Summarizer) articleSamples(view []model.Article, maxArticles int) string {
	recent := make([]model.Article, len(view))
	copy(recent, view)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > maxArticles {
		recent = recent[:maxArticles]
	}
	if len(recent) == 0 {
		return noArticleLine
	}

	blocks := make([]string, 0, len(recent))
	for _, a := range recent {
		blocks = append(blocks, s.articleBlock(a))
	}
	return strings.Join(blocks, "\n")
}

func (s *Summarizer) articleBlock(a model.Article) string {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		title = untitled
	}

	block := fmt.Sprintf(articleTemplate,
		title,
		a.Date.Format(dateLayout),
		joinOr(head(a.Keywords, firstKeywords), "Aucun"),
		joinOr(head(a.Locations, firstOthers), "Aucun"),
		joinOr(head(a.Organizations, firstOthers), "Aucune"),
		joinOr(head(a.People, firstOthers), "Aucune"),
	)
	if s.IncludeContent && strings.TrimSpace(a.Content) != "" {
		block += fmt.Sprintf("- **Aperçu** : %s\n", preview(a.Content))
	}
	return block
}

func leaderboard(view []model.Article, col model.Column, n int, label string) string {
	top := entity.Top(view, col, n)
	if len(top) == 0 {
		return fmt.Sprintf("- Aucun %s trouvé", label)
	}
	lines := make([]string, len(top))
	for i, c := range top {
		lines[i] = fmt.Sprintf("%d. **%s** : %d occurrences", i+1, c.Value, c.Count)
	}
	return strings.Join(lines, "\n")
}

func preview(content string) string {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) <= previewRunes {
		return string(runes)
	}
	return string(runes[:previewRunes]) + "..."
}

func head(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}
