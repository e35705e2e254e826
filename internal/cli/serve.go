package cli

import (
	"github.com/spf13/cobra"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/app"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/server"
)

func init() {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API",
		Run: func(cmd *cobra.Command, args []string) {
			log := newLogger()
			cfg := loadConfig(log)
			if addr != "" {
				cfg.Server.Addr = addr
			}

			a := app.New(cmd.Context(), cfg, log)
			r := server.NewServer(a).SetupRouter()

			log.Info("starting server", "addr", cfg.Server.Addr, "articles", a.Corpus.Len(), "provider", cfg.LLM.Provider)
			if err := r.Run(cfg.Server.Addr); err != nil {
				exitErr("serve", err)
			}
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default: server.addr)")

	RootCmd.AddCommand(cmd)
}
