// Package search is for locating a pattern within a sequence, either as every
// exact occurrence, as the last occurrence found by a bad-character scan, or as
// the overlap between the end of one sequence and the start of another.
package search

// NotFound is the offset LastMatch reports when the pattern never occurs.
const NotFound = -1

// FindAll returns every offset in text where pattern starts, in ascending order.
// Overlapping occurrences are all reported. An empty pattern matches nowhere.
func FindAll(text, pattern string) []int {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return nil
	}

	var offsets []int
	for i := 0; i <= len(text)-m; i++ {
		if text[i:i+m] == pattern {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

// LastMatch scans text left to right with the bad-character shift rule and
// returns the offset of the last full match of pattern. After each full match
// the window advances by one, so later matches overwrite earlier ones.
//
// ok is false, and the offset NotFound, if the pattern is empty, longer than
// the text, or never occurs.
func LastMatch(text, pattern string) (offset int, ok bool) {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return NotFound, false
	}

	table := badCharTable(pattern)
	offset = NotFound
	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && pattern[j] == text[i+j] {
			j--
		}

		if j < 0 {
			offset = i
			i++
			continue
		}

		shift := j - table[text[i+j]]
		if shift < 1 {
			shift = 1
		}
		i += shift
	}

	return offset, offset != NotFound
}

// badCharTable maps each byte to the highest index it occupies in pattern, or -1.
func badCharTable(pattern string) [256]int {
	var table [256]int
	for i := range table {
		table[i] = -1
	}
	for j := 0; j < len(pattern); j++ {
		table[pattern[j]] = j
	}
	return table
}

// Overlap returns the length of the longest suffix of a that is also a prefix
// of b and is at least minLength long. It returns 0 if there is no such suffix.
func Overlap(a, b string, minLength int) int {
	if minLength < 1 {
		minLength = 1
	}

	// longest suffix first, so the first hit is the longest overlap
	for i := 0; len(a)-i >= minLength; i++ {
		suffix := a[i:]
		if len(suffix) <= len(b) && b[:len(suffix)] == suffix {
			return len(suffix)
		}
	}
	return 0
}
