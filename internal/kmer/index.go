// Package kmer is for fixed-length substrings (k-mers) of a sequence: a sorted
// index of them for repeated pattern queries, and frequency profiles for
// comparing two sequences.
package kmer

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultK is the k-mer length used when the caller has no preference.
const DefaultK = 3

// ErrInvalidK is returned when k is less than one.
var ErrInvalidK = errors.New("k must be at least 1")

// Entry is a k-mer and the offset it starts at.
type Entry struct {
	Kmer   string `json:"kmer"`
	Offset int    `json:"offset"`
}

// Index is every k-mer of a text, sorted by k-mer and then offset.
type Index struct {
	k       int
	text    string
	entries []Entry
}

// NewIndex builds the sorted k-mer index of text. A text shorter than k has
// an empty index.
func NewIndex(text string, k int) (*Index, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}

	idx := &Index{k: k, text: text}
	if len(text) < k {
		return idx, nil
	}

	idx.entries = make([]Entry, 0, len(text)-k+1)
	for i := 0; i <= len(text)-k; i++ {
		idx.entries = append(idx.entries, Entry{Kmer: text[i : i+k], Offset: i})
	}

	sort.Slice(idx.entries, func(i, j int) bool {
		a, b := idx.entries[i], idx.entries[j]
		if a.Kmer != b.Kmer {
			return a.Kmer < b.Kmer
		}
		return a.Offset < b.Offset
	})

	return idx, nil
}

// K returns the k-mer length of the index.
func (idx *Index) K() int {
	return idx.k
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entries returns a copy of the sorted entries.
func (idx *Index) Entries() []Entry {
	return append([]Entry(nil), idx.entries...)
}

// Query returns the offsets where pattern occurs in the indexed text, ascending.
//
// Candidates are the index range whose k-mer equals the first k characters of
// the pattern; each is then checked against the whole pattern. A pattern
// shorter than k has no k-length prefix and never matches.
func (idx *Index) Query(pattern string) []int {
	if len(pattern) < idx.k {
		return nil
	}

	prefix := pattern[:idx.k]
	lo, hi := idx.bounds(prefix)

	var offsets []int
	for _, e := range idx.entries[lo:hi] {
		end := e.Offset + len(pattern)
		if end <= len(idx.text) && idx.text[e.Offset:end] == pattern {
			offsets = append(offsets, e.Offset)
		}
	}
	return offsets
}

// bounds returns the first entry with a k-mer >= prefix and the first
// entry with a k-mer > prefix.
func (idx *Index) bounds(prefix string) (lo, hi int) {
	lo = sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].Kmer >= prefix
	})
	hi = sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].Kmer > prefix
	})
	return lo, hi
}

// Query builds a k-mer index of text and queries it for pattern.
func Query(text, pattern string, k int) ([]int, error) {
	idx, err := NewIndex(text, k)
	if err != nil {
		return nil, err
	}
	return idx.Query(pattern), nil
}

func checkK(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	return nil
}
