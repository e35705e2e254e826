package analyst

import (
	"context"
	"sync"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/llm"
)

type MockCompleter struct {
	Response string
	Err      error
	Panic    any

	mu       sync.Mutex
	Requests []llm.Request
}

func (m *MockCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.Panic != nil {
		panic(m.Panic)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Last returns the most recent request, or false if none was made.
func (m *MockCompleter) Last() (llm.Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return llm.Request{}, false
	}
	return m.Requests[len(m.Requests)-1], true
}
