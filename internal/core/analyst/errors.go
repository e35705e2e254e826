package analyst

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the user-facing bucket of a backend failure.
type Category string

const (
	CategoryAuth      Category = "auth"
	CategoryRateLimit Category = "rate_limit"
	CategoryNetwork   Category = "network"
	CategoryUnknown   Category = "unknown"
)

// ErrRateLimited is returned when the local request budget is spent.
var ErrRateLimited = errors.New("local rate limit exceeded")

var categoryRules = []struct {
	category Category
	terms    []string
}{
	{CategoryAuth, []string{"api_key", "api key", "authentication", "unauthorized", "401"}},
	{CategoryRateLimit, []string{"rate limit", "rate_limit", "too many requests", "429", "quota"}},
	{CategoryNetwork, []string{"network", "connection", "timeout", "dial tcp", "no such host", "eof", "deadline exceeded"}},
}

// ClassifyError buckets err by case-insensitive substrings of its message.
func ClassifyError(err error) Category {
	if err == nil {
		return CategoryUnknown
	}
	msg := strings.ToLower(err.Error())
	for _, r := range categoryRules {
		for _, term := range r.terms {
			if strings.Contains(msg, term) {
				return r.category
			}
		}
	}
	return CategoryUnknown
}

// UserMessage is the localized sentence shown for a failure.
func UserMessage(c Category, err error) string {
	switch c {
	case CategoryAuth:
		return "Clé API Groq invalide. Veuillez vérifier votre fichier .env"
	case CategoryRateLimit:
		return "Trop de requêtes. Veuillez réessayer dans quelques secondes"
	case CategoryNetwork:
		return "Erreur de connexion. Vérifiez votre connexion Internet"
	default:
		raw := "erreur inconnue"
		if err != nil {
			raw = err.Error()
		}
		return fmt.Sprintf("Erreur inattendue : %s", raw)
	}
}
