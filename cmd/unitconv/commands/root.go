package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"unitconv.dev/internal/appconf"
	"unitconv.dev/internal/conversion"
	"unitconv.dev/internal/logging"
)

var (
	logLevel string

	engine *conversion.Engine
	logger *slog.Logger
)

func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "unitconv",
		Short:         "Convert values between units of measurement",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := appconf.ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			logger = logging.NewConsoleLogger(cmd.ErrOrStderr(), level)
			engine = conversion.DefaultEngine()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	root.AddCommand(categoriesCmd(), unitsCmd(), convertCmd(), replCmd())
	return root
}

// outcomeError reports a conversion that did not succeed. Its text is the
// message shown to users; errors.Is matches the conversion sentinels.
type outcomeError struct {
	out conversion.Outcome
}

func (e *outcomeError) Error() string {
	return e.out.Message()
}

func (e *outcomeError) Unwrap() error {
	return e.out.Err()
}
