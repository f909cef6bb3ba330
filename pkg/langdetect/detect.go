// Package langdetect identifies the language of code snippets found in
// documentation, so theme suggestions can name the language of a block.
// It combines go-enry detection with a few cheap structural checks that
// handle the snippets training content actually contains.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is the fallback when nothing identifies the content.
const langText = "text"

// classifierCandidates bounds the enry classifier to languages that show
// up in documentation code blocks.
//
//nolint:gochecknoglobals // Closed candidate set for the classifier.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile", "PowerShell",
}

// structural lists quick content probes tried before the classifier.
// Order matters: earlier probes are more specific.
//
//nolint:gochecknoglobals // Closed probe table.
var structural = []struct {
	lang  string
	match func(trimmed []byte, text string) bool
}{
	{"go", func(trimmed []byte, _ string) bool {
		return bytes.HasPrefix(trimmed, []byte("package ")) ||
			bytes.Contains(trimmed, []byte("func main()"))
	}},
	{"python", func(_ []byte, text string) bool {
		if strings.Contains(text, "def ") && strings.Contains(text, "):") {
			return true
		}
		return strings.Contains(text, "__name__") || strings.Contains(text, "__main__")
	}},
	{"html", func(trimmed []byte, _ string) bool {
		lower := bytes.ToLower(trimmed)
		return bytes.Contains(lower, []byte("<!doctype html")) ||
			bytes.Contains(lower, []byte("<html")) ||
			bytes.Contains(lower, []byte("<body>"))
	}},
	{"json", func(trimmed []byte, _ string) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`"`))
	}},
	{"sql", func(_ []byte, text string) bool {
		upper := strings.ToUpper(strings.TrimSpace(text))
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"bash", func(_ []byte, text string) bool {
		// Shell transcripts in runbooks start lines with a prompt.
		return strings.HasPrefix(text, "$ ") || strings.Contains(text, "\n$ ")
	}},
	{"yaml", func(_ []byte, text string) bool {
		return yamlKeyCount(text) >= 2
	}},
}

// Detect returns a lowercase language name for the given code content,
// or "text" when nothing can be identified with confidence.
func Detect(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(content)
	text := string(content)
	for _, probe := range structural {
		if probe.match(trimmed, text) {
			return probe.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// yamlKeyCount counts lines shaped like YAML keys or list items.
func yamlKeyCount(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "- ") {
			count++
			continue
		}
		if strings.Contains(line, ": ") &&
			!strings.ContainsAny(line, "({") &&
			!strings.HasPrefix(line, `"`) {
			count++
		}
	}
	return count
}

// normalize converts enry language names to the lowercase tags used in
// suggestions.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
