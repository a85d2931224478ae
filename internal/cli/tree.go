package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grouptools/transversal/pkg/errors"
	pkgio "github.com/grouptools/transversal/pkg/io"
	"github.com/grouptools/transversal/pkg/orbit"
	"github.com/grouptools/transversal/pkg/protocol"
	"github.com/grouptools/transversal/pkg/runner"
)

// treeCommand creates the tree command for exporting search trees.
func (c *CLI) treeCommand() *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Export a run's search tree as Graphviz DOT or SVG",
		Long: `Run the input like check, recording the recursive search, and export
the recorded tree. The tree shown is the last trial executed: the first
failing trial, or the final one when every trial holds.

Tracing always recomputes; the result cache is not consulted.`,
		Example: `  # DOT text on stdout
  transversal tree problem.txt

  # Rendered SVG
  transversal tree problem.txt --format svg -o tree.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateTreeFormat(format); err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)

			r, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer r.Close()

			trace := orbit.NewTreeTrace()
			opts := runner.Options{Trace: trace}

			var result *runner.Result
			switch {
			case len(args) == 0:
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
				problem, err := pkgio.ImportJSON(args[0])
				if err != nil {
					return err
				}
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

			if trace.NodeCount() == 0 {
				return errors.New(errors.ErrCodeInvalidProblem, "input has no trials, nothing to trace")
			}

			var data []byte
			switch format {
			case errors.FormatSVG:
				data, err = trace.RenderSVG()
				if err != nil {
					return err
				}
			default:
				data = []byte(trace.ToDOT())
			}

			if err := writeFile(data, output); err != nil {
				return err
			}

			printSuccess("Search tree exported")
			printKeyValue("Verdict", verdict(result.Answer))
			printKeyValue("Nodes", strconv.Itoa(trace.NodeCount()))
			if output != "" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", errors.FormatDOT, "output format (dot or svg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
