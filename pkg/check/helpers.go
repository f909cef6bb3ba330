package check

import "strings"

// Text matching helpers shared by rules and the fixer.

// FindFold locates the first case-insensitive occurrence of needle in s
// and returns its byte offset and the text as it appears in s. Needles
// are expected to be ASCII (term tables and configuration values).
func FindFold(s, needle string) (int, string, bool) {
	n := len(needle)
	if n == 0 || len(s) < n {
		return 0, "", false
	}
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], needle) {
			return i, s[i : i+n], true
		}
	}
	return 0, "", false
}

// ContainsFold reports whether s contains needle, ignoring case.
func ContainsFold(s, needle string) bool {
	_, _, ok := FindFold(s, needle)
	return ok
}

// ContainsPadded reports whether text contains term with a space on at
// least one side. This keeps short terms from matching inside larger
// words ("bug" in "debugging") without full word segmentation.
func ContainsPadded(text, term string) bool {
	return strings.Contains(text, " "+term) || strings.Contains(text, term+" ")
}

// ContainsWord reports whether text contains term bounded by non-word
// characters on both sides. Matching is case-sensitive; lower both
// arguments for folded matching.
func ContainsWord(text, term string) bool {
	return indexWord(text, term, 0) >= 0
}

// CountWord returns the number of word-bounded occurrences of term.
func CountWord(text, term string) int {
	count := 0
	for i := 0; ; {
		j := indexWord(text, term, i)
		if j < 0 {
			return count
		}
		count++
		i = j + len(term)
	}
}

// indexWord returns the offset of the first word-bounded occurrence of
// term at or after from, or -1.
func indexWord(text, term string, from int) int {
	if term == "" {
		return -1
	}
	for i := from; ; {
		j := strings.Index(text[i:], term)
		if j < 0 {
			return -1
		}
		start := i + j
		end := start + len(term)
		if (start == 0 || !isWordByte(text[start-1])) &&
			(end == len(text) || !isWordByte(text[end])) {
			return start
		}
		i = start + 1
	}
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// FirstWord returns the first whitespace-delimited word of s.
func FirstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// IsCapitalized reports whether s starts with an ASCII uppercase letter.
func IsCapitalized(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}
