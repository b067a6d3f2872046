package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"unitconv.dev/internal/conversion"
	"unitconv.dev/internal/logging"
	"unitconv.dev/internal/state"
)

const replPrompt = "unitconv> "

var replCommands = []string{":category", ":from", ":to", ":swap", ":clear", ":units", ":help", "exit", "quit"}

const replHelp = `Commands:
  :category <name>   switch category (resets units)
  :from <unit>       set the source unit
  :to <unit>         set the target unit
  :swap              swap source and target units
  :clear             clear the input
  :units             list the units of the current category
  :help              show this help
  exit               quit (also Ctrl+D)
Any other line is taken as the value to convert.
`

func replCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive converter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.OutOrStdout())
		},
	}
	return cmd
}

// session is the converter state of one REPL run.
type session struct {
	engine *conversion.Engine
	conv   *state.Converter
	out    io.Writer
}

func newSession(engine *conversion.Engine, out io.Writer) *session {
	return &session{engine: engine, conv: state.NewConverter(engine), out: out}
}

func (s *session) prompt() string {
	return fmt.Sprintf("[%s: %s -> %s] %s", s.conv.Category, s.conv.FromUnit, s.conv.ToUnit, replPrompt)
}

func (s *session) printResult() {
	out := s.conv.Result()
	logging.LogConversion(logger, s.conv.Category, s.conv.FromUnit, s.conv.ToUnit, out.Kind.String())
	fmt.Fprintln(s.out, out.Message())
}

// handle runs one input line and reports whether the session should end.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if line == "exit" || line == "quit" {
		return true
	}
	if !strings.HasPrefix(line, ":") {
		s.conv.SetInput(line)
		s.printResult()
		return false
	}

	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case ":category":
		if !s.conv.SetCategory(arg) {
			fmt.Fprintf(s.out, "unknown category %q\n", arg)
			return false
		}
		fmt.Fprintf(s.out, "%s: %s -> %s\n", s.conv.Category, s.conv.FromUnit, s.conv.ToUnit)
	case ":from":
		if !s.knownUnit(arg) {
			return false
		}
		s.conv.SetFromUnit(arg)
		s.printResult()
	case ":to":
		if !s.knownUnit(arg) {
			return false
		}
		s.conv.SetToUnit(arg)
		s.printResult()
	case ":swap":
		s.conv.SwapUnits()
		s.printResult()
	case ":clear":
		s.conv.ClearInput()
	case ":units":
		fmt.Fprintln(s.out, strings.Join(s.conv.AvailableUnits(), ", "))
	case ":help":
		fmt.Fprint(s.out, replHelp)
	default:
		fmt.Fprintf(s.out, "unknown command %s, type :help\n", command)
	}
	return false
}

func (s *session) knownUnit(unit string) bool {
	for _, u := range s.conv.AvailableUnits() {
		if u == unit {
			return true
		}
	}
	fmt.Fprintf(s.out, "unknown unit %q for category %s\n", unit, s.conv.Category)
	return false
}

// complete returns completions for commands, category names after
// ":category " and unit names after ":from " and ":to ".
func (s *session) complete(line string) []string {
	var prefix string
	var candidates []string

	switch {
	case strings.HasPrefix(line, ":category "):
		prefix = ":category "
		candidates = s.engine.Table().CategoryNames()
	case strings.HasPrefix(line, ":from "):
		prefix = ":from "
		candidates = s.conv.AvailableUnits()
	case strings.HasPrefix(line, ":to "):
		prefix = ":to "
		candidates = s.conv.AvailableUnits()
	default:
		candidates = replCommands
	}

	partial := strings.ToLower(strings.TrimPrefix(line, prefix))
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), partial) {
			matches = append(matches, prefix+c)
		}
	}
	sort.Strings(matches)
	return matches
}

func historyPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "unitconv", "history")
	}
	return filepath.Join(os.TempDir(), ".unitconv_history")
}

func runREPL(out io.Writer) (err error) {
	line := liner.NewLiner()
	defer logging.HandleDeferredError(&err, line.Close, logger, "close_terminal")

	line.SetCtrlCAborts(true)

	s := newSession(engine, out)
	line.SetCompleter(s.complete)

	history := historyPath()
	if f, openErr := os.Open(history); openErr == nil {
		if _, readErr := line.ReadHistory(f); readErr != nil {
			logging.LogError(logger, "failed to read history", readErr)
		}
		logging.SafeCloseWithLogging(f, logger, "read_history")
	}
	defer saveHistory(line, history)

	fmt.Fprintln(out, "Type :help for commands, exit or Ctrl+D to quit")
	s.printResult()

	for {
		input, promptErr := line.Prompt(s.prompt())
		if promptErr == liner.ErrPromptAborted {
			continue
		}
		if promptErr == io.EOF {
			fmt.Fprintln(out)
			return nil
		}
		if promptErr != nil {
			return promptErr
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if s.handle(input) {
			return nil
		}
	}
}

func saveHistory(line *liner.State, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		logging.LogError(logger, "failed to create history directory", err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		logging.LogError(logger, "failed to create history file", err)
		return
	}
	defer logging.SafeCloseWithLogging(f, logger, "write_history")

	if _, err := line.WriteHistory(f); err != nil {
		logging.LogError(logger, "failed to write history", err)
	}
}
