package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func unitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units <category>",
		Short: "List the units of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units := engine.ListUnits(args[0])
			if units == nil {
				return fmt.Errorf("unknown category %q", args[0])
			}
			for _, u := range units {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
	return cmd
}
