package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"unitconv.dev/internal/logging"
	"unitconv.dev/internal/models"
)

func convertCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "convert <category> <from> <to> <value>",
		Short: "Convert a value between two units",
		Example: `  unitconv convert temperature Celsius Fahrenheit 100
  unitconv convert weight "Metric Ton" Pound 1.5
  unitconv convert temperature Celsius Kelvin -- -40`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, from, to, value := args[0], args[1], args[2], args[3]

			out := engine.Convert(category, from, to, value)
			logging.LogConversion(logger, category, from, to, out.Kind.String())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(models.NewConversionEntry(category, from, to, value, out)); err != nil {
					return err
				}
			}
			if !out.OK() {
				return &outcomeError{out: out}
			}
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), out.Display)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full outcome as JSON")
	return cmd
}
