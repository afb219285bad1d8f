// Package seq is for the fixed-alphabet mappings over DNA sequences:
// complements, transcription, GC content, start codons and translation.
package seq

import (
	"errors"
	"math"
	"strings"

	"github.com/TimothyStiles/poly/checks"
)

// ErrEmpty is returned by calculations that are undefined for an empty sequence.
var ErrEmpty = errors.New("empty sequence")

// complement maps each base to its pair. Bytes without a pair map to themselves.
var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// Normalize trims surrounding whitespace and upper-cases a sequence. Only
// ASCII letters change case; every other byte is kept as-is.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	out := []byte(s)
	for i, b := range out {
		if 'a' <= b && b <= 'z' {
			out[i] = b - ('a' - 'A')
		}
	}
	return string(out)
}

// Complement returns the complement of a DNA sequence. Characters outside
// of ACGT are kept as-is.
func Complement(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = complement[s[i]]
	}
	return string(out)
}

// ReverseComplement returns the reverse complement of a DNA sequence.
func ReverseComplement(s string) string {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = complement[s[i]]
	}
	return string(out)
}

// GCContent returns the percentage of G and C bases in the sequence, rounded
// to two decimal places. It errors on an empty sequence.
func GCContent(s string) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmpty
	}
	pct := checks.GcContent(s) * 100
	return math.Round(pct*100) / 100, nil
}

// Transcribe converts a DNA sequence to RNA (T to U).
func Transcribe(s string) string {
	return strings.ReplaceAll(s, "T", "U")
}

// StartCodons returns the 1-based positions of every ATG in the sequence.
func StartCodons(s string) []int {
	var positions []int
	for i := 0; i+3 <= len(s); i++ {
		if s[i:i+3] == "ATG" {
			positions = append(positions, i+1)
		}
	}
	return positions
}

// InvalidBases returns the distinct characters that are not A, C, G or T, in
// the order they first appear.
func InvalidBases(s string) []rune {
	var invalid []rune
	seen := make(map[rune]bool)
	for _, r := range s {
		switch r {
		case 'A', 'C', 'G', 'T':
			continue
		}
		if !seen[r] {
			seen[r] = true
			invalid = append(invalid, r)
		}
	}
	return invalid
}
