package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/fractions"
)

// batchLine is one expression from batch input.
type batchLine struct {
	// n is the 1-based line number.
	n    int
	text string
}

// outcome is the result of evaluating one batch line.
type outcome struct {
	line batchLine
	r    fractions.Rational
	err  error
}

// readLines reads the expressions in r. Blank lines and lines starting with #
// are skipped.
func readLines(r io.Reader) ([]batchLine, error) {
	var lines []batchLine
	scan := bufio.NewScanner(r)
	n := 0
	for scan.Scan() {
		n++
		text := strings.Join(strings.Fields(scan.Text()), " ")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, batchLine{n: n, text: text})
	}
	return lines, scan.Err()
}

// evalLines evaluates each line with at most workers evaluations at once.
// Evaluation errors are recorded in the outcomes; the only error returned is
// cancellation of ctx.
func evalLines(ctx context.Context, lines []batchLine, workers int) ([]outcome, error) {
	out := make([]outcome, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, l := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fractions.EvalString(l.text)
			out[i] = outcome{line: l, r: r, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func runBatch(cmd *cobra.Command, st *state, path string) error {
	src := cmd.InOrStdin()
	name := "stdin"
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		src, name = f, path
	}
	lines, err := readLines(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	st.log.Debug("evaluating batch", "input", name, "expressions", len(lines), "workers", st.cfg.Workers)
	outs, err := evalLines(cmd.Context(), lines, st.cfg.Workers)
	if err != nil {
		return fmt.Errorf("batch evaluation stopped: %w", err)
	}

	failed := 0
	for _, o := range outs {
		if o.err != nil {
			failed++
			st.log.Debug("expression failed", "line", o.line.n, "error", o.err)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %v\n", o.line.n, o.err)
			continue
		}
		if err := writeResult(cmd.OutOrStdout(), st.cfg.Output, o.line.text, o.r); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(outs))
	}
	return nil
}
