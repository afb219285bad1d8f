package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/jjtimmons/dnakit/internal/io"
	"github.com/spf13/cobra"
)

// parseSequences gathers the sequence, and the second sequence if needed, from
// the command's flags and positional args. Flags take a slot first and
// positional args fill the slots that are left, in order. An arg of "-" is
// read from stdin.
func parseSequences(cmd *cobra.Command, args []string, needsSecond bool) (first, second string, err error) {
	positional := args

	if in, _ := cmd.Flags().GetString("in"); in != "" {
		if first, err = readFile(in); err != nil {
			return "", "", err
		}
	} else if len(positional) > 0 {
		if first, err = readArg(cmd, positional[0]); err != nil {
			return "", "", err
		}
		positional = positional[1:]
	}

	if needsSecond {
		secondFlag, _ := cmd.Flags().GetString("second")
		secondIn, _ := cmd.Flags().GetString("second-in")
		switch {
		case secondFlag != "":
			second = secondFlag
		case secondIn != "":
			if second, err = readFile(secondIn); err != nil {
				return "", "", err
			}
		case len(positional) > 0:
			if second, err = readArg(cmd, positional[0]); err != nil {
				return "", "", err
			}
			positional = positional[1:]
		}
	}

	if len(positional) > 0 {
		return "", "", fmt.Errorf("unexpected argument(s): %v", positional)
	}
	return first, second, nil
}

// readFile returns the first sequence in a FASTA or text file.
func readFile(path string) (string, error) {
	rec, err := io.ReadFirst(path)
	if err != nil {
		return "", err
	}
	return rec.Seq, nil
}

// readArg returns the arg itself, or the first sequence on stdin if the arg is "-".
func readArg(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}

	dat, err := ioutil.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %v", err)
	}
	records, err := io.Parse(string(dat))
	if err != nil {
		return "", fmt.Errorf("failed to parse stdin: %v", err)
	}
	return records[0].Seq, nil
}
