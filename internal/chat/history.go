package chat

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

// History is an append-only message log. Messages are never edited; Reset
// is the only way to drop them.
type History struct {
	mu       sync.Mutex
	messages []model.ChatMessage
	now      func() time.Time
}

func NewHistory() *History {
	return &History{now: time.Now}
}

func (h *History) Append(role model.Role, content string) model.ChatMessage {
	msg := model.ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: h.now(),
	}

	h.mu.Lock()
	h.messages = append(h.messages, msg)
	h.mu.Unlock()
	return msg
}

// Messages returns a copy of the log in insertion order.
func (h *History) Messages() []model.ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.messages == nil {
		return []model.ChatMessage{}
	}
	return slices.Clone(h.messages)
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.messages)
}

func (h *History) Reset() {
	h.mu.Lock()
	h.messages = nil
	h.mu.Unlock()
}
