package analysis

import (
	"github.com/jjtimmons/dnakit/internal/kmer"
	"github.com/jjtimmons/dnakit/internal/search"
	"github.com/jjtimmons/dnakit/internal/seq"
	"github.com/jjtimmons/dnakit/internal/suffix"
)

// Match is the result of bad-characters: the last offset of the pattern, if found.
type Match struct {
	Offset int  `json:"offset"`
	Found  bool `json:"found"`
}

// Occurrences is the result of pattern-query.
type Occurrences struct {
	Count   int   `json:"count"`
	Offsets []int `json:"offsets"`
}

// SuffixArray is the result of suffix-array.
type SuffixArray struct {
	// Entries in order of their offset in the sequence
	Entries []suffix.Entry `json:"entries"`

	// LCP by rank, only if requested
	LCP []int `json:"lcp,omitempty"`
}

// Comparison is the result of sequence-compare.
type Comparison struct {
	Overlap      int     `json:"overlap"`
	KmerDistance float64 `json:"kmerDistance"`
	Matches      int     `json:"matches"`
}

// registry is every operation, in the order they're listed to users.
var registry = []Operation{
	{
		Name:        "complement",
		Title:       "Complement",
		Description: "Get the complementary DNA sequence",
		run: func(req Request) (interface{}, error) {
			return seq.Complement(req.Seq), nil
		},
	},
	{
		Name:        "reverse-complement",
		Aliases:     []string{"revcomp", "rc"},
		Title:       "Reverse Complement",
		Description: "Get the reverse complement of the sequence",
		run: func(req Request) (interface{}, error) {
			return seq.ReverseComplement(req.Seq), nil
		},
	},
	{
		Name:        "gc-content",
		Aliases:     []string{"gc"},
		Title:       "GC Content",
		Description: "Calculate GC content percentage",
		run: func(req Request) (interface{}, error) {
			return seq.GCContent(req.Seq)
		},
	},
	{
		Name:        "transcribe-to-rna",
		Aliases:     []string{"transcribe", "rna"},
		Title:       "RNA Sequence",
		Description: "Convert DNA to RNA sequence",
		run: func(req Request) (interface{}, error) {
			return seq.Transcribe(req.Seq), nil
		},
	},
	{
		Name:        "find-start-codons",
		Aliases:     []string{"start-codons"},
		Title:       "Start Codons (ATG)",
		Description: "Locate ATG start codons (1-based)",
		run: func(req Request) (interface{}, error) {
			return list(seq.StartCodons(req.Seq)), nil
		},
	},
	{
		Name:        "translate",
		Title:       "Protein Sequence",
		Description: "Translate DNA to protein sequence",
		run: func(req Request) (interface{}, error) {
			return seq.Translate(req.Seq), nil
		},
	},
	{
		Name:        "find-sequence",
		Aliases:     []string{"find", "match"},
		Title:       "Sequence Matches",
		Description: "Find every occurrence of a second sequence",
		NeedsSecond: true,
		Prompt:      "please enter a sequence to find",
		run: func(req Request) (interface{}, error) {
			return findSequence(req), nil
		},
	},
	{
		Name:        "kmer-distance",
		Aliases:     []string{"distance"},
		Title:       "K-mer Distance",
		Description: "Calculate k-mer distance between sequences",
		NeedsSecond: true,
		Prompt:      "please enter a second sequence for k-mer distance calculation",
		UsesK:       true,
		run: func(req Request) (interface{}, error) {
			return kmer.Distance(req.Seq, req.Second, req.K)
		},
	},
	{
		Name:        "suffix-array",
		Aliases:     []string{"suffixes"},
		Title:       "Suffix Array Table",
		Description: "Generate suffix array table",
		run: func(req Request) (interface{}, error) {
			table := suffix.Build(req.Seq)
			sa := SuffixArray{Entries: table.ByOffset()}
			if req.LCP {
				sa.LCP = suffix.LCP(table)
			}
			return sa, nil
		},
	},
	{
		Name:        "find-overlap",
		Aliases:     []string{"overlap"},
		Title:       "Overlap",
		Description: "Find overlap between sequences",
		NeedsSecond: true,
		Prompt:      "please enter a second sequence to find overlap",
		run: func(req Request) (interface{}, error) {
			return overlap(req), nil
		},
	},
	{
		Name:        "bad-characters",
		Aliases:     []string{"bad-chars"},
		Title:       "Bad Characters",
		Description: "Find the last occurrence of a pattern with the bad-character rule",
		NeedsSecond: true,
		Prompt:      "please enter a pattern to search for",
		run: func(req Request) (interface{}, error) {
			offset, found := search.LastMatch(req.Seq, req.Second)
			return Match{Offset: offset, Found: found}, nil
		},
	},
	{
		Name:        "pattern-query",
		Aliases:     []string{"query"},
		Title:       "Pattern Query",
		Description: "Query pattern occurrences with a sorted k-mer index",
		NeedsSecond: true,
		Prompt:      "please enter a pattern to search",
		UsesK:       true,
		run: func(req Request) (interface{}, error) {
			offsets, err := kmer.Query(req.Seq, req.Second, req.K)
			if err != nil {
				return nil, err
			}
			return Occurrences{Count: len(offsets), Offsets: list(offsets)}, nil
		},
	},
	{
		Name:        "index-sorted",
		Aliases:     []string{"index"},
		Title:       "Sorted Indices",
		Description: "Build the sorted k-mer index of the sequence",
		UsesK:       true,
		run: func(req Request) (interface{}, error) {
			idx, err := kmer.NewIndex(req.Seq, req.K)
			if err != nil {
				return nil, err
			}
			return idx.Entries(), nil
		},
	},
	{
		Name:        "sequence-compare",
		Aliases:     []string{"compare"},
		Title:       "Sequence Comparison Results",
		Description: "Compare two DNA sequences",
		NeedsSecond: true,
		Prompt:      "please enter a second sequence to compare",
		UsesK:       true,
		run:         compare,
	},
	{
		Name:        "invalid-bases",
		Aliases:     []string{"validate"},
		Title:       "Invalid Bases",
		Description: "List characters that are not A, C, G or T",
		run: func(req Request) (interface{}, error) {
			invalid := []string{}
			for _, r := range seq.InvalidBases(req.Seq) {
				invalid = append(invalid, string(r))
			}
			return invalid, nil
		},
	},
}

func findSequence(req Request) []int {
	return list(search.FindAll(req.Seq, req.Second))
}

// list makes "no offsets" an empty list rather than nil, so JSON has [] not null.
func list(offsets []int) []int {
	if offsets == nil {
		return []int{}
	}
	return offsets
}

func overlap(req Request) int {
	return search.Overlap(req.Seq, req.Second, req.MinOverlap)
}
