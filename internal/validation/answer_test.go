package validation

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	tests := map[string]string{
		"The Beatles":         "beatles",
		"  an   Apple!  ":     "apple",
		"Edward Scissorhands": "edward scissorhands",
		"A. Einstein":         "a einstein",
		"the the":             "the",
		"":                    "",
	}
	for in, want := range tests {
		if got := NormalizeAnswer(in); got != want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsSimilarAnswer(t *testing.T) {
	tests := []struct {
		expected, guess string
		want            bool
	}{
		{"Maya Angelou", "maya angelou", true},
		{"The Liver", "liver", true},
		{"Muhammad Ali", "Ali", true},
		{"Scarab", "Scarabb", true},
		{"Apollo 13", "Apollo 31", false},
		{"Brazil", "Uruguay", false},
		{"Brazil", "   ", false},
	}
	for _, tt := range tests {
		if got := IsSimilarAnswer(tt.expected, tt.guess); got != tt.want {
			t.Errorf("IsSimilarAnswer(%q, %q) = %v, want %v", tt.expected, tt.guess, got, tt.want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		if got := levenshtein([]rune(tt.a), []rune(tt.b)); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
