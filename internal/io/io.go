// Package io is for reading sequences from, and writing results to, the filesystem.
package io

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Record is a single sequence read from a file.
type Record struct {
	// ID is the FASTA header without the leading '>'. Empty for plain text input
	ID string

	// Seq is the sequence with whitespace removed
	Seq string
}

// whitespace is removed from within sequences that span multiple lines.
var whitespace = regexp.MustCompile(`\s+`)

// ReadFile reads the sequences in a FASTA file. A file without a '>' header is
// read as a single unnamed sequence.
func ReadFile(path string) ([]Record, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	return Parse(string(dat))
}

// Parse reads FASTA formatted text, or plain text, into records.
func Parse(text string) ([]Record, error) {
	if !strings.HasPrefix(strings.TrimSpace(text), ">") {
		seq := whitespace.ReplaceAllString(text, "")
		if seq == "" {
			return nil, fmt.Errorf("no sequence found")
		}
		return []Record{{Seq: seq}}, nil
	}

	lines := strings.Split(text, "\n")

	// find the header lines
	var headerIndices []int
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			headerIndices = append(headerIndices, i)
		}
	}

	// accumulate the sequences from between the headers
	var records []Record
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}

		id := strings.TrimSpace(strings.TrimSpace(lines[headerIndex])[1:])
		seq := whitespace.ReplaceAllString(strings.Join(lines[headerIndex+1:nextLine], ""), "")
		records = append(records, Record{ID: id, Seq: seq})
	}

	return records, nil
}

// ReadFirst returns the first sequence in the file at path.
func ReadFirst(path string) (Record, error) {
	records, err := ReadFile(path)
	if err != nil {
		return Record{}, err
	}
	if len(records) == 0 || records[0].Seq == "" {
		return Record{}, fmt.Errorf("no sequence found in %s", path)
	}
	return records[0], nil
}
