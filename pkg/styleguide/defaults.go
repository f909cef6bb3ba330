package styleguide

// Built-in term tables. Namespaces that accept custom lists fall back to
// these when the configuration leaves them empty; the fallback is applied
// once at load time so rules always see resolved values.

// DefaultContractionWords is the contraction list used when
// contractions.words is empty.
var DefaultContractionWords = []string{
	"won't", "don't", "can't", "shouldn't",
	"couldn't", "wouldn't", "isn't", "aren't",
}

// DefaultAcronymDefinitions maps well-known acronyms to their expansions.
var DefaultAcronymDefinitions = map[string]string{
	"AOS": "Acropolis Operating System",
	"AHV": "Acropolis Hypervisor",
	"NCC": "Nutanix Cluster Check",
	"CVM": "Controller Virtual Machine",
	"LCM": "Life Cycle Manager",
}

// DefaultLinkTextPatterns are link texts considered non-descriptive.
var DefaultLinkTextPatterns = []string{
	"click here", "read more", "see here", "here", "this link",
}

// DefaultAllowedEmailDomains are email domains exempt from PII checks.
var DefaultAllowedEmailDomains = []string{"nutanix.com"}

// DefaultMaskedIPPatterns are IP prefixes treated as already masked.
var DefaultMaskedIPPatterns = []string{"x.x.x."}

// DefaultConsistentTerms are the proper nouns checked for consistent
// capitalization when phoenix_specific.terminology is present but empty.
var DefaultConsistentTerms = []string{"Phoenix"}

// DefaultTocThreshold is the fragment count beyond which a long document
// is expected to carry a table of contents.
const DefaultTocThreshold = 50

// DefaultVersionParts is the preferred version component count.
const DefaultVersionParts = 3

// applyDefaults fills empty optional lists on present namespaces. Absent
// namespaces stay nil so their checks remain disabled.
func applyDefaults(g *Guide) {
	if g == nil {
		return
	}

	if c := g.Contractions(); c != nil && len(c.Words) == 0 {
		c.Words = append([]string(nil), DefaultContractionWords...)
	}
	if a := g.AbbreviationRules(); a != nil && len(a.Definitions) == 0 {
		a.Definitions = make(map[string]string, len(DefaultAcronymDefinitions))
		for k, v := range DefaultAcronymDefinitions {
			a.Definitions[k] = v
		}
	}
	if a := g.Accessibility(); a != nil && len(a.LinkTextPatterns) == 0 {
		a.LinkTextPatterns = append([]string(nil), DefaultLinkTextPatterns...)
	}
	if p := g.PIIGuidelines(); p != nil {
		if len(p.AllowedDomains) == 0 {
			p.AllowedDomains = append([]string(nil), DefaultAllowedEmailDomains...)
		}
		if len(p.MaskedPatterns) == 0 {
			p.MaskedPatterns = append([]string(nil), DefaultMaskedIPPatterns...)
		}
	}
	if v := g.VersionNumbers(); v != nil && v.PreferredParts == 0 {
		v.PreferredParts = DefaultVersionParts
	}
	if c := g.ChapterStructure(); c != nil && c.TocThreshold == 0 {
		c.TocThreshold = DefaultTocThreshold
	}
	if p := g.PhoenixTerminology(); p != nil && len(p.ConsistentTerms) == 0 {
		p.ConsistentTerms = append([]string(nil), DefaultConsistentTerms...)
	}
}
