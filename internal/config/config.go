package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type CorpusConfig struct {
	Path string `toml:"path"`
}

type LLMConfig struct {
	Provider          string  `toml:"provider"`
	Model             string  `toml:"model"`
	APIKey            string  `toml:"api_key"`
	BaseURL           string  `toml:"base_url"`
	Temperature       float32 `toml:"temperature"`
	MaxTokens         int     `toml:"max_tokens"`
	TopP              float32 `toml:"top_p"`
	RequestsPerMinute int     `toml:"requests_per_minute"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
}

type ContextConfig struct {
	MaxTokens       int    `toml:"max_tokens"`
	MaxArticles     int    `toml:"max_articles"`
	LeaderboardSize int    `toml:"leaderboard_size"`
	Encoding        string `toml:"encoding"`
}

type ChartsConfig struct {
	CooccurrenceTop int `toml:"cooccurrence_top"`
	TopPersons      int `toml:"top_persons"`
	TopLocations    int `toml:"top_locations"`
	WordCloud       int `toml:"word_cloud"`
	KeywordOptions  int `toml:"keyword_options"`
	LocationOptions int `toml:"location_options"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// PromptsConfig overrides the built-in analyst instructions. Empty fields keep the defaults.
type PromptsConfig struct {
	General   string `toml:"general"`
	Trend     string `toml:"trend"`
	Sentiment string `toml:"sentiment"`
	Summary   string `toml:"summary"`
	Entity    string `toml:"entity"`
}

type Config struct {
	Corpus  CorpusConfig  `toml:"corpus"`
	LLM     LLMConfig     `toml:"llm"`
	Context ContextConfig `toml:"context"`
	Charts  ChartsConfig  `toml:"charts"`
	Server  ServerConfig  `toml:"server"`
	Prompts PromptsConfig `toml:"prompts"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Corpus: CorpusConfig{Path: "data/processed/clean_data.csv"},
		LLM: LLMConfig{
			Provider:          "groq",
			Model:             "llama-3.3-70b-versatile",
			Temperature:       0.7,
			MaxTokens:         2000,
			TopP:              1,
			RequestsPerMinute: 30,
			TimeoutSeconds:    60,
		},
		Context: ContextConfig{
			MaxTokens:       6000,
			MaxArticles:     15,
			LeaderboardSize: 10,
			Encoding:        "cl100k_base",
		},
		Charts: ChartsConfig{
			CooccurrenceTop: 25,
			TopPersons:      20,
			TopLocations:    15,
			WordCloud:       50,
			KeywordOptions:  100,
			LocationOptions: 50,
		},
		Server: ServerConfig{Addr: ":8050"},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an error:
// the defaults are returned and found reports false.
func Load(path string) (cfg *Config, found bool, err error) {
	cfg = Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, true, nil
}

// ApplyEnv overrides file values with environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CORPUS_PATH"); v != "" {
		c.Corpus.Path = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	// GROQ_API_KEY is honoured for the default provider; LLM_API_KEY wins when both are set.
	if v := os.Getenv("GROQ_API_KEY"); v != "" && c.LLM.Provider == "groq" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_REQUESTS_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LLM.RequestsPerMinute = n
		}
	}
	if v := os.Getenv("CONTEXT_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Context.MaxTokens = n
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Corpus.Path == "" {
		return fmt.Errorf("corpus.path must be set")
	}
	if c.LLM.Provider == "" {
		return fmt.Errorf("llm.provider must be set")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be within [0, 2]")
	}
	if c.LLM.TopP <= 0 || c.LLM.TopP > 1 {
		return fmt.Errorf("llm.top_p must be within (0, 1]")
	}
	if c.LLM.RequestsPerMinute < 0 {
		return fmt.Errorf("llm.requests_per_minute cannot be negative")
	}
	if c.Context.MaxTokens <= 0 {
		return fmt.Errorf("context.max_tokens must be positive")
	}
	if c.Context.MaxArticles < 0 {
		return fmt.Errorf("context.max_articles cannot be negative")
	}
	if c.Context.LeaderboardSize <= 0 {
		return fmt.Errorf("context.leaderboard_size must be positive")
	}
	if c.Charts.CooccurrenceTop <= 0 {
		return fmt.Errorf("charts.cooccurrence_top must be positive")
	}
	return nil
}
