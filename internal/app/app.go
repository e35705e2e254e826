// Package app wires the corpus, the analysis engines and the chat session
// from one configuration.
package app

import (
	"context"
	"log/slog"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/chat"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/config"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/analyst"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/summary"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/corpus"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/dashboard"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/llm"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/logger"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/tokenizer"
)

type App struct {
	Config     *config.Config
	Corpus     *corpus.Corpus
	Dashboard  *dashboard.Builder
	Summarizer *summary.Summarizer
	Generator  *analyst.Generator
	Session    *chat.Session
	Log        *slog.Logger
}

// New loads the corpus and builds every component. A corpus that fails to
// load and a backend that fails to build both degrade instead of failing:
// the dashboard serves an empty corpus and the chat reports the backend error.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) *App {
	log = logger.OrDiscard(log)

	c := corpus.Open(cfg.Corpus.Path, log)

	backend, err := llm.NewClient(ctx, cfg.LLM, log)
	if err != nil {
		log.Error("llm backend unavailable", "provider", cfg.LLM.Provider, "error", err)
		backend = llm.Unavailable(err)
	}

	return NewWithBackend(cfg, c, backend, log)
}

// NewWithBackend builds the components around an already loaded corpus and
// completion backend.
func NewWithBackend(cfg *config.Config, c *corpus.Corpus, backend llm.Completer, log *slog.Logger) *App {
	log = logger.OrDiscard(log)

	s := summary.NewSummarizer(
		tokenizer.New(cfg.Context.Encoding, log),
		cfg.Context.MaxTokens,
		cfg.Context.LeaderboardSize,
	)

	g := analyst.NewGenerator(backend, s,
		analyst.WithPrompts(analyst.PromptsFromConfig(cfg.Prompts)),
		analyst.WithParams(analyst.ParamsFromConfig(cfg.LLM)),
		analyst.WithRequestsPerMinute(cfg.LLM.RequestsPerMinute),
		analyst.WithLogger(log.With("component", "analyst")),
	)

	return &App{
		Config:     cfg,
		Corpus:     c,
		Dashboard:  dashboard.New(c, dashboard.OptionsFromConfig(cfg.Charts), log.With("component", "dashboard")),
		Summarizer: s,
		Generator:  g,
		Session:    chat.NewSession(c, s, g, cfg.Context.MaxArticles, log.With("component", "chat")),
		Log:        log,
	}
}
