package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/grouptools/transversal/pkg/io"
	"github.com/grouptools/transversal/pkg/protocol"
	"github.com/grouptools/transversal/pkg/runner"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var noCache bool
	var refresh bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Run a trial stream and print the verdict",
		Long: `Run every trial in the input against its orbit description and print
the verdict of the last trial executed: 1 if every trial holds, 0 as
soon as one fails.

The input is the textual protocol (dimensions, coset representative
table, adjacency list, trials, zero terminator), read from the given
file or from stdin. Files ending in .json are read as JSON problem
documents instead.`,
		Example: `  # From a file, memoizing the answer
  transversal check problem.txt

  # From stdin (streaming, no cache)
  gap -q makeproblem.g | transversal check

  # JSON document
  transversal check problem.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)

			r, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer r.Close()

			opts := runner.Options{Refresh: refresh}
			prog := newProgress(loggerFromContext(ctx))

			var result *runner.Result
			switch {
			case len(args) == 0:
				// Streaming: trials are checked as they arrive, so
				// there is no full problem text to hash.
				reader := protocol.NewReader(os.Stdin)
				problem, err := reader.ReadProblem()
				if err != nil {
					return err
				}
				result, err = r.Run(ctx, problem, reader, opts)
				if err != nil {
					return err
				}
			case strings.HasSuffix(args[0], ".json"):
				text, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				problem, err := pkgio.ReadJSON(bytes.NewReader(text))
				if err != nil {
					return err
				}
				opts.ProblemText = text
				result, err = r.Run(ctx, problem, protocol.Trials(problem.Trials), opts)
				if err != nil {
					return err
				}
			default:
				text, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				result, err = r.RunBytes(ctx, text, opts)
				if err != nil {
					return err
				}
			}
			prog.done(fmt.Sprintf("Checked %d trials", result.Trials))

			fmt.Println(verdict(result.Answer))

			if !quiet {
				if result.Answer {
					printSuccess("Every trial holds")
				} else {
					printError("Trial %d fails", result.Trials)
				}
				printStats(result.Trials, result.CacheHit)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if the answer is cached")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the summary, print only the verdict")

	return cmd
}

// verdict formats the boolean answer the way the wire protocol expects.
func verdict(answer bool) string {
	if answer {
		return "1"
	}
	return "0"
}
