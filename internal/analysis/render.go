package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	humanize "github.com/dustin/go-humanize"

	"github.com/jjtimmons/dnakit/internal/kmer"
)

// Text renders the result for a person to read.
func (r *Result) Text() string {
	switch v := r.Value.(type) {
	case string:
		return fmt.Sprintf("%s:\n%s", r.Title, v)
	case float64:
		if r.Op == "gc-content" {
			return fmt.Sprintf("%s: %.2f%%", r.Title, v)
		}
		return fmt.Sprintf("%s between sequences (k=%d): %.2f", r.Title, r.K, v)
	case int:
		return fmt.Sprintf("Overlap length between sequences: %s bases", humanize.Comma(int64(v)))
	case []int:
		return r.positions(v)
	case Match:
		if !v.Found {
			return "No Bad characters found"
		}
		return fmt.Sprintf("Bad characters found at index:\n%d", v.Offset)
	case Occurrences:
		text := fmt.Sprintf("Pattern occurs %s times in the sequence", humanize.Comma(int64(v.Count)))
		if v.Count > 0 {
			text += ":\n" + joinInts(v.Offsets)
		}
		return text
	case SuffixArray:
		var b strings.Builder
		b.WriteString(r.Title + ":")
		for _, e := range v.Entries {
			fmt.Fprintf(&b, "\nPosition: %d, Sorted: %d, Suffix: %s", e.Offset, e.Rank, e.Suffix)
		}
		if v.LCP != nil {
			b.WriteString("\nLCP: " + joinInts(v.LCP))
		}
		return b.String()
	case []kmer.Entry:
		pairs := make([]string, len(v))
		for i, e := range v {
			pairs[i] = e.Kmer + "," + strconv.Itoa(e.Offset)
		}
		return fmt.Sprintf("%s (k=%d):\n%s", r.Title, r.K, strings.Join(pairs, ", "))
	case Comparison:
		return fmt.Sprintf(
			"%s:\nOverlap Length: %s bases\nK-mer Distance (k=%d): %.2f\nExact Matches: %s",
			r.Title,
			humanize.Comma(int64(v.Overlap)),
			r.K,
			v.KmerDistance,
			humanize.Comma(int64(v.Matches)),
		)
	case []string:
		if len(v) == 0 {
			return "No invalid bases found"
		}
		return fmt.Sprintf("%s:\n%s", r.Title, strings.Join(v, ", "))
	}
	return fmt.Sprintf("%s:\n%v", r.Title, r.Value)
}

// JSON renders the result as indented JSON.
func (r *Result) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// positions renders the offset lists of find-sequence and find-start-codons.
func (r *Result) positions(v []int) string {
	if r.Op == "find-start-codons" {
		if len(v) == 0 {
			return "No start codons (ATG) found in the sequence"
		}
		return fmt.Sprintf("%s found at positions:\n%s", r.Title, joinInts(v))
	}

	if len(v) == 0 {
		return "Sequence not found"
	}
	return fmt.Sprintf("Sequence found at positions:\n%s", joinInts(v))
}

func joinInts(ints []int) string {
	strs := make([]string, len(ints))
	for i, n := range ints {
		strs[i] = strconv.Itoa(n)
	}
	return strings.Join(strs, ", ")
}
