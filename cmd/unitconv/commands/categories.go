package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"unitconv.dev/internal/utils"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List measurement categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range engine.Table().Categories() {
				fmt.Fprintf(out, "%-12s %-12s %s, %d units\n", c.Name, utils.CategoryLabel(c.Name), c.Kind, len(c.Units))
			}
			return nil
		},
	}
	return cmd
}
