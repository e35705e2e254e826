package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/config"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/logger"
)

const (
	GroqBaseURL   = "https://api.groq.com/openai/v1"
	OllamaBaseURL = "http://localhost:11434"

	// PlaceholderKey is the value shipped in the sample .env file.
	PlaceholderKey = "your_groq_api_key_here"
)

func NewClient(ctx context.Context, cfg config.LLMConfig, log *slog.Logger) (Completer, error) {
	log = logger.OrDiscard(log)
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "groq":
		if cfg.APIKey == "" || cfg.APIKey == PlaceholderKey {
			return nil, fmt.Errorf("groq api_key is not set (GROQ_API_KEY)")
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = GroqBaseURL
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, baseURL), nil

	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai api_key is not set (LLM_API_KEY)")
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = OllamaBaseURL
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		log.Info("initializing ollama via OpenAI-compatible API", "base_url", baseURL)

		// Ollama ignores the key but the client requires one.
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		return NewOpenAIClient(apiKey, cfg.Model, baseURL), nil

	case "claude", "anthropic":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("claude api_key is not set (LLM_API_KEY)")
		}
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini api_key is not set (LLM_API_KEY)")
		}
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return c, nil

	case "canned":
		return NewCannedClient(""), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
