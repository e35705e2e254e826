package analyst

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/config"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/intent"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/llm"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/logger"
)

// QuestionSeparator sits between the context and the user's question.
const QuestionSeparator = "\n\n---\n\n**Question de l'utilisateur** : "

// Truncator bounds a context to the token budget.
type Truncator interface {
	Truncate(text string) string
}

type Params struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
	Timeout     time.Duration
}

func DefaultParams() Params {
	return Params{
		Temperature: 0.7,
		MaxTokens:   2000,
		TopP:        1,
		Timeout:     60 * time.Second,
	}
}

// ParamsFromConfig reads sampling parameters from the llm section.
func ParamsFromConfig(cfg config.LLMConfig) Params {
	p := DefaultParams()
	p.Temperature = cfg.Temperature
	if cfg.MaxTokens > 0 {
		p.MaxTokens = cfg.MaxTokens
	}
	if cfg.TopP > 0 {
		p.TopP = cfg.TopP
	}
	if cfg.TimeoutSeconds > 0 {
		p.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return p
}

// Result is the outcome of one generation. Failures carry a localized
// Message and the raw backend error.
type Result struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	Intent   intent.Intent `json:"intent"`
	Category Category      `json:"category,omitempty"`
	Error    string        `json:"error,omitempty"`
	Err      error         `json:"-"`
}

type Generator struct {
	backend   llm.Completer
	truncator Truncator
	prompts   Prompts
	params    Params
	limiter   *rate.Limiter
	log       *slog.Logger
}

type Option func(*Generator)

func WithPrompts(p Prompts) Option {
	return func(g *Generator) { g.prompts = p }
}

func WithParams(p Params) Option {
	return func(g *Generator) { g.params = p }
}

// WithRequestsPerMinute caps backend calls. Zero disables the limit.
func WithRequestsPerMinute(n int) Option {
	return func(g *Generator) {
		if n <= 0 {
			g.limiter = nil
			return
		}
		g.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.log = logger.OrDiscard(l) }
}

func NewGenerator(backend llm.Completer, truncator Truncator, opts ...Option) *Generator {
	g := &Generator{
		backend:   backend,
		truncator: truncator,
		prompts:   DefaultPrompts(),
		params:    DefaultParams(),
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate answers question from contextText. An empty in is derived from
// the question. It never returns an error: every failure, including a
// panicking backend, resolves to a Result with Success false.
func (g *Generator) Generate(ctx context.Context, question, contextText string, in intent.Intent) (res Result) {
	if in == "" {
		in = intent.Classify(question)
	}

	defer func() {
		if r := recover(); r != nil {
			res = g.failure(in, fmt.Errorf("backend panic: %v", r))
		}
	}()

	if g.backend == nil {
		return g.failure(in, fmt.Errorf("no llm backend configured: api_key missing"))
	}
	if g.limiter != nil && !g.limiter.Allow() {
		return g.failure(in, ErrRateLimited)
	}

	if g.truncator != nil {
		contextText = g.truncator.Truncate(contextText)
	}

	req := llm.UserRequest(g.prompts.For(in), contextText+QuestionSeparator+question)
	req.Temperature = g.params.Temperature
	req.MaxTokens = g.params.MaxTokens
	req.TopP = g.params.TopP

	if g.params.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.params.Timeout)
		defer cancel()
	}

	start := time.Now()
	answer, err := g.backend.Complete(ctx, req)
	if err != nil {
		return g.failure(in, err)
	}

	g.log.Info("generated response", "intent", in, "duration", time.Since(start), "chars", len(answer))
	return Result{
		Success: true,
		Message: answer,
		Intent:  in,
	}
}

func (g *Generator) failure(in intent.Intent, err error) Result {
	c := ClassifyError(err)
	g.log.Warn("generation failed", "intent", in, "category", c, "error", err)
	return Result{
		Success:  false,
		Message:  UserMessage(c, err),
		Intent:   in,
		Category: c,
		Error:    err.Error(),
		Err:      err,
	}
}
