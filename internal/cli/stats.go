package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/entity"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/corpus"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/dashboard"
)

type statsReport struct {
	Source      string                          `json:"source"`
	Articles    int                             `json:"articles"`
	Skipped     int                             `json:"skipped"`
	Matching    int                             `json:"matching"`
	First       string                          `json:"first,omitempty"`
	Last        string                          `json:"last,omitempty"`
	KPIs        dashboard.KPIs                  `json:"kpis"`
	Leaderboard map[model.Column][]entity.Count `json:"leaderboard"`
}

func init() {
	var sel selectionFlags
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show corpus statistics for a selection",
		Run: func(cmd *cobra.Command, args []string) {
			log := newLogger()
			cfg := loadConfig(log)
			c := corpus.Open(cfg.Corpus.Path, log)
			b := dashboard.New(c, dashboard.OptionsFromConfig(cfg.Charts), log)

			selection := sel.selection()
			view := b.View(selection)

			report := statsReport{
				Source:      c.Source(),
				Articles:    c.Len(),
				Skipped:     c.Skipped(),
				Matching:    len(view),
				KPIs:        dashboard.ComputeKPIs(view, selection),
				Leaderboard: make(map[model.Column][]entity.Count),
			}
			if first, last, ok := corpus.DateBounds(view); ok {
				report.First = first.Format(model.DayLayout)
				report.Last = last.Format(model.DayLayout)
			}
			for _, col := range model.EntityColumns {
				report.Leaderboard[col] = entity.Top(view, col, top)
			}

			if formatFlag == "json" {
				printJSON(report)
				return
			}
			printStats(report)
		},
	}
	sel.register(cmd)
	cmd.Flags().IntVarP(&top, "top", "n", 10, "Leaderboard size")

	RootCmd.AddCommand(cmd)
}

func printStats(r statsReport) {
	fmt.Printf("Corpus      %s\n", r.Source)
	fmt.Printf("Articles    %s (%d skipped at load)\n", dashboard.FormatCount(r.Articles), r.Skipped)
	fmt.Printf("Selection   %s\n", r.KPIs.Total)
	if r.First != "" {
		fmt.Printf("Period      %s -> %s\n", r.First, r.Last)
	}
	fmt.Printf("Top keyword %s\n", r.KPIs.TopKeyword)
	fmt.Printf("Top person  %s\n", r.KPIs.TopPerson)
	fmt.Printf("Top org     %s\n", r.KPIs.TopOrganization)

	for _, col := range model.EntityColumns {
		fmt.Printf("\n[%s]\n", col)
		items := r.Leaderboard[col]
		if len(items) == 0 {
			fmt.Println("  (none)")
		}
		for i, c := range items {
			fmt.Printf("  %2d. %-30s %d\n", i+1, c.Value, c.Count)
		}
	}
}
