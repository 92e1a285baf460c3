// Package cli provides the command-line interface for the fractions
// calculator.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zephyrtronium/fractions"
	"github.com/zephyrtronium/fractions/internal/config"
)

// Version is the program version (set at build time).
var Version = "0.1.0"

const usage = `Usage: fractions [flags] [--] whole_numerator/denominator operator whole_numerator/denominator ...
Valid operators are * / + -
ex: 1/2 * 3_3/4
`

// state is what every command needs after configuration is loaded.
type state struct {
	cfg *config.Config
	log *slog.Logger
}

// stateKey is used to store state in the command context.
type stateKey struct{}

// getState retrieves the state from the command context.
func getState(ctx context.Context) *state {
	if st, ok := ctx.Value(stateKey{}).(*state); ok {
		return st
	}
	return &state{
		cfg: &config.Config{Output: config.DefaultOutput, Workers: config.DefaultWorkers},
		log: slog.New(slog.DiscardHandler),
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile, in string
	rootCmd := &cobra.Command{
		Use:   "fractions [flags] [--] <number> [<operator> <number>]...",
		Short: "Exact calculator for mixed-number fractions",
		Long: `fractions evaluates arithmetic on rational numbers written in mixed-number
notation, e.g. 3, -1/2, or 2_3/4, and prints the reduced result the same way.

Each number and each operator (+ - * /) is a separate argument. Multiplication
and division are applied before addition and subtraction. Flags must come
before the expression.`,
		Example: `  fractions 1/2 '*' 3_3/4
  fractions -2_1/2 + 1/3
  fractions --in exprs.txt --workers 8`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				logger.Debug("using config file", "file", cfg.File)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), stateKey{}, &state{cfg: cfg, log: logger}))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st := getState(cmd.Context())
			if in != "" {
				if len(args) > 0 {
					return errors.New("cannot combine --in with an expression")
				}
				return runBatch(cmd, st, in)
			}
			if len(args) == 0 {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), usage)
				return nil
			}
			return runExpr(cmd, st, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// Everything after the first token of the expression is part of it.
	rootCmd.Flags().SetInterspersed(false)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./fractions.yaml)")
	pf.StringP("output", "o", config.DefaultOutput, "Output format (text|json)")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.Int("workers", config.DefaultWorkers, "Expressions evaluated at once with --in")
	pf.String("history", "", "REPL history file")
	rootCmd.Flags().StringVar(&in, "in", "", "Evaluate each line of a file as an expression (- for stdin)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newVersionCommand(Version))
	rootCmd.AddCommand(newREPLCommand())

	return rootCmd
}

func runExpr(cmd *cobra.Command, st *state, tokens []string) error {
	st.log.Debug("evaluating expression", "tokens", len(tokens))
	r, err := fractions.Eval(tokens)
	if err != nil {
		st.log.Debug("evaluation failed", "error", err)
		return err
	}
	return writeResult(cmd.OutOrStdout(), st.cfg.Output, strings.Join(tokens, " "), r)
}

// negativeOperand matches arguments which pflag would take for shorthand
// flags but which are numbers, like -2 or -1_1/2.
var negativeOperand = regexp.MustCompile(`^-[0-9_]`)

// protectOperands inserts "--" before the expression if its first token is a
// negative number, so that flag parsing leaves it alone. Flags after the
// first token are already part of the expression.
func protectOperands(cmd *cobra.Command, args []string) []string {
	lookup := func(name string) *pflag.Flag {
		if f := cmd.Flags().Lookup(name); f != nil {
			return f
		}
		return cmd.PersistentFlags().Lookup(name)
	}
	shorthand := func(name string) *pflag.Flag {
		if f := cmd.Flags().ShorthandLookup(name); f != nil {
			return f
		}
		return cmd.PersistentFlags().ShorthandLookup(name)
	}
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return args
		case negativeOperand.MatchString(a):
			r := make([]string, 0, len(args)+1)
			r = append(r, args[:i]...)
			r = append(r, "--")
			return append(r, args[i:]...)
		case strings.HasPrefix(a, "--"):
			if !strings.Contains(a, "=") && takesValue(lookup(a[2:])) {
				i++
			}
		case len(a) == 2 && a[0] == '-':
			if takesValue(shorthand(a[1:])) {
				i++
			}
		case len(a) > 2 && a[0] == '-':
			// Shorthand with an attached value or grouped booleans.
		default:
			// First token of the expression, or a subcommand.
			return args
		}
	}
	return args
}

// takesValue reports whether f consumes the following argument.
func takesValue(f *pflag.Flag) bool {
	return f != nil && f.NoOptDefVal == ""
}

// Run executes the command line args. Errors are printed to stderr and
// returned.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(protectOperands(rootCmd, args))
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return err
	}
	return nil
}

// Execute runs the root command with the process arguments. It stops batch
// evaluation on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fractions v%s\n", version)
		},
	}
}
