package seq

import (
	"reflect"
	"testing"
)

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"simple", "ATGC", "GCAT"},
		{"palindrome", "GAATTC", "GAATTC"},
		{"unknown bases kept", "ANNC", "GNNT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReverseComplement(tt.in)
			if got != tt.want {
				t.Errorf("ReverseComplement(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if back := ReverseComplement(got); back != tt.in {
				t.Errorf("ReverseComplement is not an involution: %q -> %q -> %q", tt.in, got, back)
			}
		})
	}
}

func TestComplement(t *testing.T) {
	if got := Complement("ATCGX-"); got != "TAGCX-" {
		t.Errorf("Complement() = %q, want %q", got, "TAGCX-")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower case", "  acgTn\n", "ACGTN"},
		{"invalid utf-8 kept", "ac\xffgt", "AC\xffGT"},
		{"non-ascii letter kept", "acé", "ACé"},
		{"symbols kept", "a-c*g", "A-C*G"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGCContent(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"empty", "", 0, true},
		{"all gc", "GGCC", 100, false},
		{"no gc", "ATAT", 0, false},
		{"three quarters", "GGCA", 75, false},
		{"rounded", "GAA", 33.33, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GCContent(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GCContent(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GCContent(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("GCContent(%q) = %v, outside [0, 100]", tt.in, got)
			}
		})
	}
}

func TestTranscribe(t *testing.T) {
	if got := Transcribe("ATTGC"); got != "AUUGC" {
		t.Errorf("Transcribe() = %q, want %q", got, "AUUGC")
	}
}

func TestStartCodons(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"ATGCATG", []int{1, 5}},
		{"AT", nil},
		{"CCCC", nil},
		{"ATGATG", []int{1, 4}},
	}
	for _, tt := range tests {
		if got := StartCodons(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("StartCodons(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ATGGCCTAA", "MA*"},
		{"ATGGC", "M"},
		{"ATGNNNTGG", "M?W"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Translate(tt.in); got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInvalidBases(t *testing.T) {
	got := InvalidBases("ACXGTNXU")
	want := []rune{'X', 'N', 'U'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InvalidBases() = %q, want %q", got, want)
	}

	if got := InvalidBases("ACGT"); len(got) != 0 {
		t.Errorf("InvalidBases() = %q, want none", got)
	}
}
