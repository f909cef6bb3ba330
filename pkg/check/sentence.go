package check

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titler renders the capitalized form of a heading's first word.
//
//nolint:gochecknoglobals // cases.Caser construction is not free.
var titler = cases.Title(language.English)

// SentenceCase converts heading text to sentence case: the first word is
// capitalized, acronym-shaped words and the given keep words survive
// untouched, and every other word is lowered. keepWords carries the
// proper nouns the document's style guide knows about.
func SentenceCase(text string, keepWords []string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	keep := make(map[string]struct{}, len(keepWords))
	for _, w := range keepWords {
		keep[w] = struct{}{}
	}

	out := make([]string, len(words))
	for i, word := range words {
		core := TrimWordPunct(word)
		if _, ok := keep[core]; ok || IsAcronym(core) {
			out[i] = word
			continue
		}
		if i == 0 {
			out[i] = titler.String(strings.ToLower(word))
			continue
		}
		out[i] = strings.ToLower(word)
	}
	return strings.Join(out, " ")
}

// IsAcronym reports whether s looks like an acronym: at least two
// characters, all of them ASCII uppercase letters or digits, with at
// least one letter.
func IsAcronym(s string) bool {
	if len(s) < 2 {
		return false
	}
	letters := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			letters++
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return letters > 0
}

// TrimWordPunct strips trailing sentence punctuation from a word so
// classification sees the bare token ("NCC:" classifies as "NCC").
func TrimWordPunct(s string) string {
	return strings.TrimRight(s, ".,:;!?)('\"")
}
