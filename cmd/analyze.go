package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/jjtimmons/dnakit/config"
	"github.com/jjtimmons/dnakit/internal/analysis"
	"github.com/jjtimmons/dnakit/internal/io"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// newOperationCmd makes the subcommand for a single analysis.
func newOperationCmd(op analysis.Operation, v *viper.Viper) *cobra.Command {
	use := op.Name + " [sequence]"
	if op.NeedsSecond {
		use += " [second]"
	}

	// the original tool's names use underscores, ex: bad_chars
	aliases := append([]string(nil), op.Aliases...)
	for _, name := range append([]string{op.Name}, op.Aliases...) {
		if underscored := strings.ReplaceAll(name, "-", "_"); underscored != name {
			aliases = append(aliases, underscored)
		}
	}

	c := &cobra.Command{
		Use:                        use,
		Short:                      op.Description,
		Aliases:                    aliases,
		Args:                       cobra.MaximumNArgs(2),
		SuggestionsMinimumDistance: 2,
		Example:                    example(op),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.From(v)
			if err != nil {
				return err
			}
			return runOperation(cmd, args, op, conf)
		},
	}

	c.Flags().StringP("in", "i", "", "FASTA or text file with the sequence (first record is used)")
	if op.NeedsSecond {
		c.Flags().StringP("second", "q", "", "second sequence, query or pattern")
		c.Flags().String("second-in", "", "FASTA or text file with the second sequence")
	}
	if op.Name == "suffix-array" {
		c.Flags().Bool("lcp", false, "include the longest-common-prefix array")
	}

	return c
}

// runOperation reads the sequences for op, runs it, and writes the result.
func runOperation(cmd *cobra.Command, args []string, op analysis.Operation, conf *config.Config) error {
	start := time.Now()

	first, second, err := parseSequences(cmd, args, op.NeedsSecond)
	if err != nil {
		return err
	}
	lcp, _ := cmd.Flags().GetBool("lcp")

	if conf.Verbose {
		stderr.Printf("%s: sequence of %d bp", op.Name, len(first))
		if op.NeedsSecond {
			stderr.Printf("%s: second sequence of %d bp", op.Name, len(second))
		}
	}

	res, err := op.Run(analysis.Request{
		Seq:        first,
		Second:     second,
		K:          conf.Kmer,
		MinOverlap: conf.MinOverlap,
		LCP:        lcp,
	})
	if err != nil {
		return err
	}

	var out []byte
	if conf.Output == config.JSON {
		if out, err = res.JSON(); err != nil {
			return fmt.Errorf("failed to encode %s result: %v", op.Name, err)
		}
	} else {
		out = []byte(res.Text())
	}

	if conf.Out != "" {
		if err = io.Write(conf.Out, out); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	}

	if conf.Verbose {
		stderr.Printf("%s: %s", op.Name, time.Since(start))
	}
	return nil
}

// bindFlags binds each named flag to the viper setting of the same name.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			stderr.Fatalf("failed to bind flag %s: %v", name, err)
		}
	}
}

func example(op analysis.Operation) string {
	if op.NeedsSecond {
		return fmt.Sprintf("  dnakit %s ATCGATCG ATCG\n  dnakit %s -i target.fa --second ATCG", op.Name, op.Name)
	}
	return fmt.Sprintf("  dnakit %s ATCGATCG\n  dnakit %s -i target.fa", op.Name, op.Name)
}
