package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/fractions"
)

const replPrompt = "fractions> "

const replHelp = `Enter an expression with spaces between numbers and operators, e.g.
  1/2 * 3_3/4
Commands:
  .help   show this message
  .quit   exit (also .exit or Ctrl-D)
`

// lineReader is the part of *readline.Instance the REPL uses.
type lineReader interface {
	Readline() (string, error)
}

func newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Long: `Start an interactive session. Each line is evaluated as one expression;
errors are reported and the session continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := getState(cmd.Context())
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          replPrompt,
				HistoryFile:     st.cfg.History,
				InterruptPrompt: "^C",
				EOFPrompt:       ".quit",
				Stdin:           io.NopCloser(cmd.InOrStdin()),
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to initialize REPL: %w", err)
			}
			defer func() { _ = rl.Close() }()

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
			return runREPL(cmd, st, rl)
		},
	}
}

// runREPL evaluates lines from rl until EOF or a quit command.
func runREPL(cmd *cobra.Command, st *state, rl lineReader) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch line = strings.TrimSpace(line); line {
		case "":
			continue
		case ".quit", ".exit":
			return nil
		case ".help":
			_, _ = fmt.Fprint(cmd.OutOrStdout(), replHelp)
			continue
		}

		r, err := fractions.EvalString(line)
		if err != nil {
			st.log.Debug("evaluation failed", "line", line, "error", err)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		if err := writeResult(cmd.OutOrStdout(), st.cfg.Output, line, r); err != nil {
			return err
		}
	}
}
