package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, found, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[corpus]
path = "fixtures/articles.csv"

[llm]
provider = "canned"
max_tokens = 500

[context]
max_tokens = 1200

[prompts]
trend = "Analyse les tendances."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, found, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, found)

	assert.Equal(t, "fixtures/articles.csv", cfg.Corpus.Path)
	assert.Equal(t, "canned", cfg.LLM.Provider)
	assert.Equal(t, 500, cfg.LLM.MaxTokens)
	assert.Equal(t, 1200, cfg.Context.MaxTokens)
	assert.Equal(t, "Analyse les tendances.", cfg.Prompts.Trend)

	// untouched keys keep their defaults
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Model)
	assert.Equal(t, 15, cfg.Context.MaxArticles)
	assert.Equal(t, 25, cfg.Charts.CooccurrenceTop)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[llm\nprovider ="), 0o644))

	_, _, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CORPUS_PATH", "/data/corpus.csv")
	t.Setenv("LLM_PROVIDER", "groq")
	t.Setenv("LLM_MODEL", "llama-3.1-8b-instant")
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_REQUESTS_PER_MINUTE", "5")
	t.Setenv("CONTEXT_MAX_TOKENS", "3000")
	t.Setenv("PORT", "9090")

	cfg := config.Default()
	cfg.ApplyEnv()

	assert.Equal(t, "/data/corpus.csv", cfg.Corpus.Path)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Model)
	assert.Equal(t, "gsk-test", cfg.LLM.APIKey)
	assert.Equal(t, 5, cfg.LLM.RequestsPerMinute)
	assert.Equal(t, 3000, cfg.Context.MaxTokens)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestApplyEnvGenericKeyWins(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("LLM_API_KEY", "generic")

	cfg := config.Default()
	cfg.ApplyEnv()
	assert.Equal(t, "generic", cfg.LLM.APIKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{name: "corpus path", mutate: func(c *config.Config) { c.Corpus.Path = "" }, want: "corpus.path"},
		{name: "provider", mutate: func(c *config.Config) { c.LLM.Provider = "" }, want: "llm.provider"},
		{name: "max tokens", mutate: func(c *config.Config) { c.LLM.MaxTokens = 0 }, want: "llm.max_tokens"},
		{name: "temperature", mutate: func(c *config.Config) { c.LLM.Temperature = 3 }, want: "llm.temperature"},
		{name: "top p", mutate: func(c *config.Config) { c.LLM.TopP = 0 }, want: "llm.top_p"},
		{name: "context budget", mutate: func(c *config.Config) { c.Context.MaxTokens = -1 }, want: "context.max_tokens"},
		{name: "cooccurrence", mutate: func(c *config.Config) { c.Charts.CooccurrenceTop = 0 }, want: "charts.cooccurrence_top"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
