// Package suffix builds the sorted table of every suffix of a sequence.
package suffix

import (
	"sort"
	"strings"
)

// Entry is a single suffix of a sequence.
type Entry struct {
	// Suffix is the text from Offset to the end of the sequence
	Suffix string `json:"suffix"`

	// Offset is where the suffix starts in the source sequence
	Offset int `json:"offset"`

	// Rank is the suffix's 0-based index in lexicographic order
	Rank int `json:"rank"`
}

// Table is every suffix of a sequence in lexicographic order, so
// that t[i].Rank == i.
type Table []Entry

// Build returns the suffix table of s. Suffixes are ordered by byte
// comparison of their full text. An empty s gives an empty table.
func Build(s string) Table {
	n := len(s)
	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = i
	}

	// suffixes of one string are all distinct, so the order is total
	sort.Slice(offsets, func(a, b int) bool {
		return strings.Compare(s[offsets[a]:], s[offsets[b]:]) < 0
	})

	t := make(Table, n)
	for rank, offset := range offsets {
		t[rank] = Entry{
			Suffix: s[offset:],
			Offset: offset,
			Rank:   rank,
		}
	}
	return t
}

// ByOffset returns the entries of the table ordered by their offset in the
// source sequence.
func (t Table) ByOffset() []Entry {
	byOffset := make([]Entry, len(t))
	for _, e := range t {
		byOffset[e.Offset] = e
	}
	return byOffset
}

// Offsets returns the suffix array: the offset of each suffix in sorted order.
func (t Table) Offsets() []int {
	sa := make([]int, len(t))
	for i, e := range t {
		sa[i] = e.Offset
	}
	return sa
}

// LCP returns the longest common prefix between each suffix in the table and the
// suffix ranked just before it, computed with Kasai's algorithm. lcp[0] is 0.
func LCP(t Table) []int {
	n := len(t)
	lcp := make([]int, n)
	if n == 0 {
		return lcp
	}

	// the suffix at offset 0 is the whole sequence
	s := t.ByOffset()[0].Suffix
	rank := make([]int, n)
	for i, e := range t {
		rank[e.Offset] = i
	}

	h := 0
	for i := 0; i < n; i++ {
		if rank[i] == 0 {
			h = 0
			continue
		}
		j := t[rank[i]-1].Offset
		for i+h < n && j+h < n && s[i+h] == s[j+h] {
			h++
		}
		lcp[rank[i]] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}
