package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/jjtimmons/dnakit/internal/analysis"
	"github.com/spf13/cobra"
)

// newListCmd is for listing every analysis and what it needs.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List the available analyses",
		Aliases: []string{"ls", "tools"},
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 3, ' ', 0)
			fmt.Fprintf(writer, "analysis\tsequences\tk-mer\tdescription\t\n")
			for _, op := range analysis.Operations() {
				sequences, usesK := "1", ""
				if op.NeedsSecond {
					sequences = "2"
				}
				if op.UsesK {
					usesK = "yes"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t\n", op.Name, sequences, usesK, op.Description)
			}
			writer.Flush()
		},
	}
}
