package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grouptools/transversal/pkg/combin"
	"github.com/grouptools/transversal/pkg/errors"
)

// combCommand creates the comb command for inspecting the subset tables.
func (c *CLI) combCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comb n k",
		Short: "Dump the lexicographic k-subset table (debug tool)",
		Long: `Print the k-element subsets of {1..n} in lexicographic order, one per
line with their 1-based table position. Adjacency lists in the input
protocol index into the table for k-1, so this is the quickest way to
decode one by hand.`,
		Example: `  # The ten 2-subsets of {1..5}
  transversal comb 5 2

  # Decode an adjacency entry for an n=9, k=3 problem
  transversal comb 9 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "n must be an integer, got %q", args[0])
			}
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "k must be an integer, got %q", args[1])
			}
			if k < 0 || n < k {
				return errors.New(errors.ErrCodeInvalidDimensions, "need 0 <= k <= n, got n=%d k=%d", n, k)
			}

			table := combin.All(n, k)
			for i := 1; i < len(table); i++ {
				fmt.Printf("%d %s\n", i, table[i])
			}

			printKeyValue("Subsets", strconv.Itoa(combin.Binomial(n, k)))
			return nil
		},
	}

	return cmd
}
