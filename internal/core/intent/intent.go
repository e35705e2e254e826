package intent

import "strings"

type Intent string

const (
	Trend     Intent = "trend"
	Sentiment Intent = "sentiment"
	Summary   Intent = "summary"
	Entity    Intent = "entity"
	General   Intent = "general"
)

// All lists the intents in classification priority order, General last.
var All = []Intent{Trend, Sentiment, Summary, Entity, General}

var rules = []struct {
	intent Intent
	terms  []string
}{
	{Trend, []string{"tendance", "évolution", "croissance", "changement", "progression", "temporel", "temps"}},
	{Sentiment, []string{"sentiment", "opinion", "perception", "ressenti", "positif", "négatif", "ton"}},
	{Summary, []string{"résumé", "synthèse", "aperçu", "global", "général", "vue d'ensemble"}},
	{Entity, []string{"qui", "où", "quelle organisation", "personnalité", "personne", "lieu", "pays", "ville"}},
}

// Classify maps a question to an intent by case-insensitive substring match.
// The first matching rule wins; questions matching none are General.
func Classify(question string) Intent {
	q := strings.ToLower(question)
	for _, r := range rules {
		for _, term := range r.terms {
			if strings.Contains(q, term) {
				return r.intent
			}
		}
	}
	return General
}

// Parse accepts an intent name, reporting false for anything unknown.
func Parse(s string) (Intent, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, i := range All {
		if string(i) == s {
			return i, true
		}
	}
	return "", false
}
