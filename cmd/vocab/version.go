package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/japaniel/vocab/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of vocab",
		// No config needed to print the version.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vocab version %s\n", app.BuildVersion())
		},
	}
}
