package main

import (
	"os"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
