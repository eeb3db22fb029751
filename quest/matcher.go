package quest

import "strings"

// ContainsAny reports whether the lowercased text contains any of the given
// phrases as a substring. No tokenization or word-boundary checks: "task"
// matches inside "multitasking".
func ContainsAny(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// WordCount splits on whitespace. An empty or all-whitespace submission
// counts as zero words rather than one empty token.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
