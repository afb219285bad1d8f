// Package cmd is for command line interactions with the dnakit application
package cmd

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/jjtimmons/dnakit/config"
	"github.com/jjtimmons/dnakit/internal/analysis"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// RootCmd represents the base command when called without any subcommands.
	RootCmd = newRootCmd(viper.GetViper())
)

// newRootCmd builds the command tree with its settings bound to v.
func newRootCmd(v *viper.Viper) *cobra.Command {
	config.SetDefaults(v)

	var prof profiler
	root := &cobra.Command{
		Use:   "dnakit",
		Short: "Analyze DNA sequences: search, suffix arrays, k-mer indexes and distances",
		Long: `Analyze DNA sequences from the command line.

Each subcommand runs one analysis against a sequence, passed as an argument,
read from a FASTA file with --in, or read from stdin with "-". Analyses that
compare two sequences take the second as another argument or with --second.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return prof.start(v.GetString("profile"), v.GetString("profile-dir"))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			prof.stop()
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("settings", "s", "", "YAML settings file")
	flags.BoolP("verbose", "v", false, "whether to log input details and timing to stderr")
	flags.StringP("output", "o", config.Text, "result format: text|json")
	flags.String("out", "", "file to write results to (default stdout)")
	flags.IntP("kmer", "k", config.DefaultK, "k-mer length")
	flags.IntP("min-overlap", "m", config.DefaultMinOverlap, "shortest overlap to report")
	flags.String("profile", "", "write a pprof profile: cpu|mem|block")
	flags.String("profile-dir", ".", "directory to write the pprof profile to")
	bindFlags(v, flags, "settings", "verbose", "output", "out", "kmer", "min-overlap", "profile", "profile-dir")

	for _, op := range analysis.Operations() {
		root.AddCommand(stopOnError(newOperationCmd(op, v), &prof))
	}
	root.AddCommand(newListCmd())
	root.AddCommand(newDocsCmd(root))

	return root
}

// stopOnError flushes the profile when c fails. Cobra skips PersistentPostRun
// after an error from RunE.
func stopOnError(c *cobra.Command, prof *profiler) *cobra.Command {
	run := c.RunE
	c.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			prof.stop()
		}
		return err
	}
	return c
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		report(err)
		os.Exit(1)
	}
}

// report logs an error the way a user should see it. A missing second sequence
// is a prompt for more input rather than a failure.
func report(err error) {
	if errors.Is(err, analysis.ErrMissingSecond) {
		msg := strings.TrimPrefix(err.Error(), analysis.ErrMissingSecond.Error()+": ")
		stderr.Printf("%s%s (as a second argument or with --second)", strings.ToUpper(msg[:1]), msg[1:])
		return
	}
	stderr.Printf("error: %v", err)
}
