package llm

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// CannedClient answers without a network round-trip. It backs the "canned"
// provider used for demos and offline runs.
type CannedClient struct {
	Response string
}

func NewCannedClient(response string) *CannedClient {
	return &CannedClient{Response: response}
}

func (c *CannedClient) Complete(ctx context.Context, r Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.Response != "" {
		return c.Response, nil
	}

	received := 0
	for _, m := range r.Messages {
		received += utf8.RuneCountInString(m.Content)
	}
	return fmt.Sprintf("Réponse simulée : %d caractères de contexte reçus. Configurez un fournisseur LLM pour obtenir une analyse réelle.", received), nil
}

type unavailableClient struct {
	err error
}

// Unavailable returns a Completer that fails every call with err. It stands in
// for a backend whose construction failed so the dashboard keeps serving.
func Unavailable(err error) Completer {
	return unavailableClient{err: err}
}

func (c unavailableClient) Complete(context.Context, Request) (string, error) {
	return "", c.err
}
