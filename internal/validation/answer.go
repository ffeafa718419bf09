package validation

import (
	"strings"
	"unicode"
)

// similarityThreshold is the largest edit distance, relative to the longer
// answer, at which two answers still count as the same.
const similarityThreshold = 0.2

var articles = []string{"the ", "a ", "an "}

// NormalizeAnswer lowercases an answer, drops a leading article and
// punctuation, and collapses whitespace.
func NormalizeAnswer(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))
	for _, article := range articles {
		if rest, ok := strings.CutPrefix(answer, article); ok {
			answer = rest
			break
		}
	}

	answer = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, answer)

	return strings.Join(strings.Fields(answer), " ")
}

// IsSimilarAnswer reports whether guess matches expected closely enough to be
// accepted.
func IsSimilarAnswer(expected, guess string) bool {
	a, b := NormalizeAnswer(expected), NormalizeAnswer(guess)
	if a == "" || b == "" {
		return a == b
	}
	if a == b || strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	return float64(levenshtein(ra, rb))/float64(longest) < similarityThreshold
}

// levenshtein computes the edit distance between a and b using two rows
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
