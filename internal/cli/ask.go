package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/app"
	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

func init() {
	var sel selectionFlags
	var showContext bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the analyst about the filtered corpus",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			log := newLogger()
			a := app.New(cmd.Context(), loadConfig(log), log)
			selection := sel.selection()
			question := strings.Join(args, " ")

			if showContext {
				view := a.Dashboard.View(selection)
				fmt.Println(a.Summarizer.Summarize(view, selection, a.Config.Context.MaxArticles))
				fmt.Println()
			}

			reply, err := a.Session.Ask(cmd.Context(), question, selection)
			if err != nil {
				exitErr("ask", err)
			}

			if formatFlag == "json" {
				printJSON(reply)
				return
			}
			if reply.Answer.Role == model.RoleError {
				fmt.Fprintln(os.Stderr, reply.Answer.Content)
				os.Exit(1)
			}
			fmt.Println(reply.Answer.Content)
		},
	}
	sel.register(cmd)
	cmd.Flags().BoolVar(&showContext, "show-context", false, "Print the context sent to the model")

	RootCmd.AddCommand(cmd)
}
