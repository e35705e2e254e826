package cli

import (
	"github.com/spf13/cobra"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/ingest"
)

func init() {
	var (
		count  int
		seed   int64
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic corpus for demos",
		Run: func(cmd *cobra.Command, args []string) {
			log := newLogger()
			cfg := loadConfig(log)
			if output == "" {
				output = cfg.Corpus.Path
			}

			log.Info("generating dummy articles", "count", count, "seed", seed)
			if err := ingest.WriteFile(output, ingest.Synthesize(count, seed)); err != nil {
				exitErr("generate", err)
			}
			log.Info("saved dummy data", "path", output)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1000, "Number of articles")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV (default: corpus.path)")

	RootCmd.AddCommand(cmd)
}
