package check

import (
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/extract"
)

// DocCache provides pre-computed document-level views shared by all rules
// checking one document.
//
// Several rules need whole-document context (joined fragment text, first
// occurrence of a term, the set of bullet fragments). Without caching,
// each rule would recompute these per fragment, turning the engine into
// O(rules × fragments²) on pathological inputs.
//
// # Thread Safety
//
// DocCache is NOT thread-safe. It is designed for single-threaded use
// while rules execute sequentially for a single document. File-level
// parallelism is safe because each document gets its own cache.
//
// # Lazy Initialization
//
// Every view is built on first access, so documents whose enabled rules
// never need a view pay nothing for it.
type DocCache struct {
	doc *extract.Document

	joined      string
	joinedLower string
	joinedBuilt bool

	firstUse map[string]int

	bullets      []Bullet
	bulletsBuilt bool
}

// Bullet is one fragment identified as a list item.
type Bullet struct {
	// Frag is the underlying fragment.
	Frag extract.Fragment

	// Text is the item text with any leading marker stripped.
	Text string
}

// NewDocCache creates a cache for the given document.
func NewDocCache(doc *extract.Document) *DocCache {
	return &DocCache{doc: doc}
}

// Joined returns all fragment texts joined with newlines. Document rules
// run their scans against this view rather than the raw markup.
func (dc *DocCache) Joined() string {
	dc.buildJoined()
	return dc.joined
}

// JoinedLower returns the lowercased joined text.
func (dc *DocCache) JoinedLower() string {
	dc.buildJoined()
	return dc.joinedLower
}

func (dc *DocCache) buildJoined() {
	if dc.joinedBuilt {
		return
	}
	parts := make([]string, 0, len(dc.doc.Fragments))
	for _, frag := range dc.doc.Fragments {
		parts = append(parts, frag.Text)
	}
	dc.joined = strings.Join(parts, "\n")
	dc.joinedLower = strings.ToLower(dc.joined)
	dc.joinedBuilt = true
}

// FirstFragmentWith returns the position of the first fragment whose text
// contains term (case-sensitive), or 0 when no fragment does. Results are
// memoized per term.
func (dc *DocCache) FirstFragmentWith(term string) int {
	if dc.firstUse == nil {
		dc.firstUse = make(map[string]int)
	}
	if pos, ok := dc.firstUse[term]; ok {
		return pos
	}

	pos := 0
	for _, frag := range dc.doc.Fragments {
		if strings.Contains(frag.Text, term) {
			pos = frag.Pos
			break
		}
	}
	dc.firstUse[term] = pos
	return pos
}

// Bullets returns the fragments identified as list items, in document
// order. Do not mutate the returned slice.
func (dc *DocCache) Bullets() []Bullet {
	if dc.bulletsBuilt {
		return dc.bullets
	}

	for _, frag := range dc.doc.Fragments {
		if text, ok := bulletText(dc.doc, frag); ok {
			dc.bullets = append(dc.bullets, Bullet{Frag: frag, Text: text})
		}
	}
	dc.bulletsBuilt = true
	return dc.bullets
}

// bulletText reports whether a fragment is a list item and returns its
// text without the marker. A fragment counts as a bullet when its own
// text carries a marker, or when the raw source line it maps to does
// (covers markup where the marker lives outside the extracted text).
func bulletText(doc *extract.Document, frag extract.Fragment) (string, bool) {
	if text, ok := stripBulletMarker(frag.Text); ok {
		return text, true
	}

	raw := strings.TrimSpace(doc.SourceLine(doc.FragmentLine(frag.Pos)))
	if strings.HasPrefix(raw, "<li") {
		return frag.Text, true
	}
	if _, ok := stripBulletMarker(raw); ok {
		return frag.Text, true
	}
	return "", false
}

// stripBulletMarker removes a leading list marker from s.
func stripBulletMarker(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(trimmed[len(marker):]), true
		}
	}
	// Ordered markers: digits followed by "." or ")" and a space.
	i := 0
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(trimmed) && (trimmed[i] == '.' || trimmed[i] == ')') && trimmed[i+1] == ' ' {
		return strings.TrimSpace(trimmed[i+2:]), true
	}
	return "", false
}
