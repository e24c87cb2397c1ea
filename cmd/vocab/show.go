package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/japaniel/vocab/pkg/dictionary"
)

func newShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <headword> [sources...]",
		Short: "Print the entries for a word as YAML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, _, err := c.load(cmd.Context(), args[1:])
			if err != nil {
				return err
			}
			matches := dict.Lookup(args[0])
			if len(matches) == 0 {
				return fmt.Errorf("no entry matches %q", args[0])
			}
			data, err := dictionary.MarshalRecords(matches)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
