package kmer

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/jjtimmons/dnakit/internal/search"
)

func TestNewIndex(t *testing.T) {
	tests := []struct {
		name string
		text string
		k    int
		want []Entry
	}{
		{
			"sorted with ties by offset",
			"ATCGATCG",
			3,
			[]Entry{
				{"ATC", 0}, {"ATC", 4}, {"CGA", 2}, {"GAT", 3}, {"TCG", 1}, {"TCG", 5},
			},
		},
		{
			"shorter than k",
			"AC",
			3,
			[]Entry{},
		},
		{
			"k of one",
			"GCA",
			1,
			[]Entry{{"A", 2}, {"C", 1}, {"G", 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := NewIndex(tt.text, tt.k)
			if err != nil {
				t.Fatal(err)
			}
			if got := idx.Entries(); len(got) != len(tt.want) || (len(got) > 0 && !reflect.DeepEqual(got, tt.want)) {
				t.Errorf("NewIndex(%q, %d) = %v, want %v", tt.text, tt.k, got, tt.want)
			}
			wantLen := len(tt.text) - tt.k + 1
			if wantLen < 0 {
				wantLen = 0
			}
			if idx.Len() != wantLen {
				t.Errorf("NewIndex(%q, %d).Len() = %d, want %d", tt.text, tt.k, idx.Len(), wantLen)
			}
		})
	}
}

func TestNewIndex_invalidK(t *testing.T) {
	for _, k := range []int{0, -3} {
		if _, err := NewIndex("ACGT", k); !errors.Is(err, ErrInvalidK) {
			t.Errorf("NewIndex(k=%d) error = %v, want ErrInvalidK", k, err)
		}
	}
}

func TestIndex_Query(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		k       int
		want    []int
	}{
		{"cga", "ATCGATCG", "CGA", 3, []int{2}},
		{"longer than k", "ATCGATCG", "ATCG", 3, []int{0, 4}},
		{"prefix hit, suffix miss", "ATCGATCA", "ATCG", 3, []int{0}},
		{"runs off the end", "ACGTACG", "ACGTA", 3, []int{0}},
		{"shorter than k", "ATCGATCG", "AT", 3, nil},
		{"empty pattern", "ATCGATCG", "", 3, nil},
		{"prefix absent", "AAAA", "CCC", 3, nil},
		{"prefix past every key", "AAAA", "TTT", 3, nil},
		{"overlapping", "AAAAA", "AAA", 3, []int{0, 1, 2}},
		{"k of one", "GATTACA", "TA", 1, []int{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Query(tt.text, tt.pattern, tt.k)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Query(%q, %q, %d) = %v, want %v", tt.text, tt.pattern, tt.k, got, tt.want)
			}
		})
	}
}

// The index must find exactly what a brute force scan finds.
func TestIndex_QueryAgreesWithFindAll(t *testing.T) {
	texts := []string{
		"ATCGATCG",
		"AAAAAAAAAA",
		"GATTACAGATTACAGATTACA",
		"ACGTNNACGTXACGT",
		"TTAGGGTTAGGGTTAGGGCCCTAACCCTAA",
	}
	patterns := []string{"A", "AA", "CGA", "ATCG", "GATTACA", "TTAGGG", "ACGT", "NNAC", "CCCTAA", "GGGG"}
	for _, text := range texts {
		for k := 1; k <= 4; k++ {
			idx, err := NewIndex(text, k)
			if err != nil {
				t.Fatal(err)
			}
			for _, pattern := range patterns {
				if len(pattern) < k {
					continue
				}
				got := idx.Query(pattern)
				want := search.FindAll(text, pattern)
				if !reflect.DeepEqual(got, want) {
					t.Errorf("Query(%q, %q, k=%d) = %v, FindAll = %v", text, pattern, k, got, want)
				}
			}
		}
	}
}

func TestNewProfile(t *testing.T) {
	p, err := NewProfile("AAAC", 2)
	if err != nil {
		t.Fatal(err)
	}
	want := Profile{"AA": 2, "AC": 1}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("NewProfile() = %v, want %v", p, want)
	}

	p, _ = NewProfile("AC", 3)
	if len(p) != 0 {
		t.Errorf("NewProfile() of a short sequence = %v, want empty", p)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		k    int
		want float64
	}{
		{"identical", "ATCGATCG", "ATCGATCG", 3, 0},
		{"both too short", "AC", "GT", 3, 0},
		{"one too short", "AAAA", "AC", 3, math.Sqrt(4)},
		{"disjoint", "AAA", "CCC", 3, math.Sqrt(2)},
		{"counts differ", "AAAAA", "AAAC", 3, math.Sqrt(4 + 1)},
		{"k of one", "AACG", "ACGT", 1, math.Sqrt(1 + 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distance(tt.a, tt.b, tt.k)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%q, %q, %d) = %v, want %v", tt.a, tt.b, tt.k, got, tt.want)
			}
			if back, _ := Distance(tt.b, tt.a, tt.k); back != got {
				t.Errorf("Distance is not symmetric: %v != %v", back, got)
			}
		})
	}

	if _, err := Distance("ACGT", "ACGT", 0); !errors.Is(err, ErrInvalidK) {
		t.Errorf("Distance(k=0) error = %v, want ErrInvalidK", err)
	}
}
