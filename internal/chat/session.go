package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/analyst"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/filter"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/intent"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/summary"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/corpus"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/logger"
)

var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrBusy          = errors.New("a question is already being answered")
)

type Generator interface {
	Generate(ctx context.Context, question, contextText string, in intent.Intent) analyst.Result
}

// Session runs chat interactions against one corpus. Only one interaction
// runs at a time; a concurrent Ask fails with ErrBusy.
type Session struct {
	corpus      *corpus.Corpus
	summarizer  *summary.Summarizer
	generator   Generator
	history     *History
	maxArticles int
	log         *slog.Logger

	busy sync.Mutex
}

func NewSession(c *corpus.Corpus, s *summary.Summarizer, g Generator, maxArticles int, log *slog.Logger) *Session {
	return &Session{
		corpus:      c,
		summarizer:  s,
		generator:   g,
		history:     NewHistory(),
		maxArticles: maxArticles,
		log:         logger.OrDiscard(log),
	}
}

// Reply is the outcome of one interaction: the two messages appended to the
// history and the generator result, if generation ran.
type Reply struct {
	Question model.ChatMessage `json:"question"`
	Answer   model.ChatMessage `json:"answer"`
	Result   *analyst.Result   `json:"result,omitempty"`
}

// Ask filters the corpus by sel, summarizes the view and asks the generator.
// The question and an assistant or error message are always appended, even
// when the pipeline fails.
func (s *Session) Ask(ctx context.Context, question string, sel model.Selection) (Reply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Reply{}, ErrEmptyQuestion
	}
	if !s.busy.TryLock() {
		return Reply{}, ErrBusy
	}
	defer s.busy.Unlock()

	result, err := s.answer(ctx, question, sel)

	reply := Reply{Question: s.history.Append(model.RoleUser, question)}
	switch {
	case err != nil:
		s.log.Error("chat interaction failed", "error", err)
		reply.Answer = s.history.Append(model.RoleError, fmt.Sprintf("Erreur lors de la génération de la réponse : %v", err))
	case result.Success:
		reply.Result = &result
		reply.Answer = s.history.Append(model.RoleAssistant, result.Message)
	default:
		reply.Result = &result
		reply.Answer = s.history.Append(model.RoleError, result.Message)
	}
	return reply, nil
}

func (s *Session) answer(ctx context.Context, question string, sel model.Selection) (result analyst.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	view := filter.Apply(s.corpus.Articles(), sel)
	contextText := s.summarizer.Build(view, sel, s.maxArticles)
	s.log.Debug("prepared context", "articles", len(view), "chars", len(contextText))

	return s.generator.Generate(ctx, question, contextText, ""), nil
}

func (s *Session) History() []model.ChatMessage {
	return s.history.Messages()
}

func (s *Session) Reset() {
	s.history.Reset()
}
