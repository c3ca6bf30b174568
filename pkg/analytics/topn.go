package analytics

import (
	"fmt"
	"strings"
)

// isValidKeyword drops obviously broken tokens: trailing ':' or '=',
// unmatched brackets and unmatched quotes.
func isValidKeyword(word string) bool {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}

	for _, pair := range [][2]string{{"(", ")"}, {"[", "]"}, {"{", "}"}} {
		if strings.Contains(word, pair[0]) && !strings.Contains(word, pair[1]) {
			return false
		}
	}

	return strings.Count(word, "\"")%2 == 0 && strings.Count(word, "'")%2 == 0
}

// TopKeywords returns the top n keywords formatted as "word:count"
// (e.g. "macbeth:12"), most frequent first.
func TopKeywords(wordCounts map[string]int, n int) []string {
	valid := make(map[string]int, len(wordCounts))
	for k, v := range wordCounts {
		if isValidKeyword(k) {
			valid[k] = v
		}
	}

	ranked := rank(valid)
	if n < len(ranked) {
		ranked = ranked[:max(n, 0)]
	}

	keywords := make([]string, len(ranked))
	for i, wc := range ranked {
		keywords[i] = fmt.Sprintf("%s:%d", wc.Word, wc.Count)
	}
	return keywords
}
