package llm

import (
	"context"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string
	Content string
}

// Request is one non-streaming completion call. System is sent as the
// backend's system-level directive; Messages carry the conversation turns.
type Request struct {
	System      string
	Messages    []Message
	Temperature float32
	MaxTokens   int
	TopP        float32
}

type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// UserRequest builds a request with a single user turn.
func UserRequest(system, user string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
	}
}
