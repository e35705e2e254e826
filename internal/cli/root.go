// Package cli implements the mediadash commands.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/config"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/logger"
)

var (
	configPath string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "mediadash",
	Short: "Media analytics dashboard",
	Long:  "Filter a corpus of press articles, chart its entities and ask an LLM analyst about the current selection.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional
		_ = godotenv.Load()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $CONFIG_PATH or config/config.toml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
}

func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "config/config.toml"
}

func loadConfig(log *slog.Logger) *config.Config {
	path := getConfigPath()
	cfg, found, err := config.Load(path)
	if err != nil {
		exitErr("load config", err)
	}
	if !found {
		log.Warn("config file not found, using defaults", "path", path)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		exitErr("invalid config", err)
	}
	return cfg
}

func newLogger() *slog.Logger {
	return logger.New("mediadash")
}

// selectionFlags registers the filter flags shared by several commands.
type selectionFlags struct {
	start, end          string
	keywords, locations []string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", "Start day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "End day (YYYY-MM-DD), inclusive")
	cmd.Flags().StringSliceVarP(&f.keywords, "keywords", "k", nil, "Keywords (any of)")
	cmd.Flags().StringSliceVarP(&f.locations, "locations", "l", nil, "Locations (any of)")
}

func (f *selectionFlags) selection() model.Selection {
	from, to, err := model.DayRange(f.start, f.end)
	if err != nil {
		exitErr("parse dates", err)
	}
	return model.Selection{Start: from, End: to, Keywords: f.keywords, Locations: f.locations}
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
