package cli

import (
	"github.com/spf13/cobra"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/ingest"
)

func init() {
	var input, output string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Convert raw JSON exports into the corpus CSV",
		Run: func(cmd *cobra.Command, args []string) {
			log := newLogger()
			cfg := loadConfig(log)
			if output == "" {
				output = cfg.Corpus.Path
			}

			stats, err := ingest.Run(input, output, log)
			if err != nil {
				exitErr("ingest", err)
			}
			if formatFlag == "json" {
				printJSON(stats)
			}
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "data/raw", "Directory of *.json exports")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV (default: corpus.path)")

	RootCmd.AddCommand(cmd)
}
