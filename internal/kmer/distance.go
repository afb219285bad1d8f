package kmer

import "math"

// Profile maps each k-mer seen in a sequence to the number of times it occurs.
type Profile map[string]int

// NewProfile counts the k-mers of s with a sliding window of step one.
// A sequence shorter than k has an empty profile.
func NewProfile(s string, k int) (Profile, error) {
	if err := checkK(k); err != nil {
		return nil, err
	}

	p := make(Profile)
	for i := 0; i <= len(s)-k; i++ {
		p[s[i:i+k]]++
	}
	return p, nil
}

// Euclid returns the Euclidean distance between two profiles, treating each
// as a vector over the union of their k-mers with missing k-mers as zero.
func (p Profile) Euclid(p2 Profile) float64 {
	squareSum := 0
	for kmer, c1 := range p {
		d := p2[kmer] - c1
		squareSum += d * d
	}
	for kmer, c2 := range p2 {
		if _, shared := p[kmer]; !shared {
			squareSum += c2 * c2
		}
	}
	return math.Sqrt(float64(squareSum))
}

// Distance returns the Euclidean distance between the k-mer profiles of a and b.
func Distance(a, b string, k int) (float64, error) {
	p1, err := NewProfile(a, k)
	if err != nil {
		return 0, err
	}
	p2, err := NewProfile(b, k)
	if err != nil {
		return 0, err
	}
	return p1.Euclid(p2), nil
}
