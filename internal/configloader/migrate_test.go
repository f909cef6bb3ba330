package configloader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

func TestIsLegacyGuide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name: "legacy layout",
			content: `
writing_standards:
  grammar:
    contractions:
      policy: avoid
`,
			want: true,
		},
		{
			name: "current layout",
			content: `
style_guide:
  grammar_and_mechanics:
    contractions:
      policy: avoid
`,
			want: false,
		},
		{
			name: "both layouts present",
			content: `
writing_standards:
  grammar: {}
style_guide:
  terminology: {}
`,
			want: false,
		},
		{
			name:    "neither layout",
			content: "content_quality:\n  accessibility: {}\n",
			want:    false,
		},
		{
			name:    "not YAML",
			content: "{{{",
			want:    false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := IsLegacyGuide([]byte(testCase.content))
			if got != testCase.want {
				t.Errorf("IsLegacyGuide() = %v, want %v", got, testCase.want)
			}
		})
	}
}

func TestConvertLegacyGuideContent_RenamesNamespaces(t *testing.T) {
	t.Parallel()

	legacy := `
writing_standards:
  grammar:
    voice_and_mood:
      preferred_voice: active
    contractions:
      policy: use_sparingly
      severity: warning
  terminology:
    product_names:
      canonical:
        - Phoenix
content_quality:
  technical_accuracy:
    strictly_prohibited:
      - customer data
`
	result, err := ConvertLegacyGuideContent([]byte(legacy))
	if err != nil {
		t.Fatalf("ConvertLegacyGuideContent() error = %v", err)
	}

	converted := string(result.Content)
	if !strings.Contains(converted, "style_guide:") {
		t.Error("expected style_guide namespace in converted guide")
	}
	if !strings.Contains(converted, "grammar_and_mechanics:") {
		t.Error("expected grammar_and_mechanics in converted guide")
	}
	if strings.Contains(converted, "writing_standards:") {
		t.Error("expected writing_standards to be renamed away")
	}

	// The converted guide must resolve through the typed parser
	guide, err := styleguide.Parse(result.Content)
	if err != nil {
		t.Fatalf("Parse(converted) error = %v", err)
	}
	if !guide.Contractions().Disallowed() {
		t.Error("expected contraction policy to survive conversion")
	}
	if !guide.VoiceAndMood().Active() {
		t.Error("expected preferred voice to survive conversion")
	}
	if guide.TechnicalAccuracy() == nil {
		t.Error("expected content_quality to pass through unchanged")
	}
}

func TestConvertLegacyGuideContent_SalvagesAvoidTerms(t *testing.T) {
	t.Parallel()

	legacy := `
writing_standards:
  grammar:
    contractions:
      policy: avoid
  language_clarity:
    terminology_fixes:
      avoid_terms:
        - leverage
        - utilize
`
	result, err := ConvertLegacyGuideContent([]byte(legacy))
	if err != nil {
		t.Fatalf("ConvertLegacyGuideContent() error = %v", err)
	}

	converted := string(result.Content)
	if strings.Contains(converted, "language_clarity:") {
		t.Error("expected language_clarity to be dropped")
	}

	guide, err := styleguide.Parse(result.Content)
	if err != nil {
		t.Fatalf("Parse(converted) error = %v", err)
	}
	phrasing := guide.ApprovedPhrasing()
	if phrasing == nil {
		t.Fatal("expected avoid_terms to move into terminology.approved_phrasing")
	}
	if len(phrasing.AvoidTerms) != 2 {
		t.Fatalf("expected 2 avoid terms, got %d", len(phrasing.AvoidTerms))
	}
	if phrasing.AvoidTerms[0].Term != "leverage" {
		t.Errorf("expected first avoid term %q, got %q", "leverage", phrasing.AvoidTerms[0].Term)
	}

	// Dropping language_clarity must be surfaced to the user
	foundWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "language_clarity") {
			foundWarning = true
			break
		}
	}
	if !foundWarning {
		t.Errorf("expected language_clarity warning, got %v", result.Warnings)
	}
}

func TestConvertLegacyGuideContent_KeepsExistingAvoidTerms(t *testing.T) {
	t.Parallel()

	legacy := `
writing_standards:
  language_clarity:
    terminology_fixes:
      avoid_terms:
        - old-term
  terminology:
    approved_phrasing:
      avoid_terms:
        - term: leverage
          replacement: use
`
	result, err := ConvertLegacyGuideContent([]byte(legacy))
	if err != nil {
		t.Fatalf("ConvertLegacyGuideContent() error = %v", err)
	}

	guide, err := styleguide.Parse(result.Content)
	if err != nil {
		t.Fatalf("Parse(converted) error = %v", err)
	}

	phrasing := guide.ApprovedPhrasing()
	if phrasing == nil {
		t.Fatal("expected approved_phrasing to survive")
	}
	if len(phrasing.AvoidTerms) != 1 || phrasing.AvoidTerms[0].Term != "leverage" {
		t.Errorf("expected the terminology avoid_terms list to win, got %+v", phrasing.AvoidTerms)
	}
}

func TestConvertLegacyGuideContent_PreservesComments(t *testing.T) {
	t.Parallel()

	legacy := `# Team style guide
writing_standards:
  grammar:
    # double quotes only
    punctuation:
      quote_style: double
`
	result, err := ConvertLegacyGuideContent([]byte(legacy))
	if err != nil {
		t.Fatalf("ConvertLegacyGuideContent() error = %v", err)
	}

	converted := string(result.Content)
	if !strings.Contains(converted, "# Team style guide") {
		t.Error("expected header comment to survive conversion")
	}
	if !strings.Contains(converted, "# double quotes only") {
		t.Error("expected inline comment to survive conversion")
	}
}

func TestConvertLegacyGuideContent_RejectsCurrentLayout(t *testing.T) {
	t.Parallel()

	current := `
style_guide:
  grammar_and_mechanics:
    contractions:
      policy: avoid
`
	_, err := ConvertLegacyGuideContent([]byte(current))
	if err == nil {
		t.Fatal("expected error for guide already in the current layout")
	}
	if !strings.Contains(err.Error(), "style_guide") {
		t.Errorf("expected layout error, got %v", err)
	}
}

func TestConvertLegacyGuideContent_RejectsMissingNamespace(t *testing.T) {
	t.Parallel()

	_, err := ConvertLegacyGuideContent([]byte("content_quality: {}\n"))
	if err == nil {
		t.Fatal("expected error when writing_standards is absent")
	}
}

func TestConvertLegacyGuide_File(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	legacy := `
writing_standards:
  grammar:
    contractions:
      policy: avoid
`
	guidePath := filepath.Join(tmpDir, ".styleguide.yaml")
	if err := os.WriteFile(guidePath, []byte(legacy), 0644); err != nil {
		t.Fatalf("write guide: %v", err)
	}

	result, err := ConvertLegacyGuide(guidePath)
	if err != nil {
		t.Fatalf("ConvertLegacyGuide() error = %v", err)
	}

	if result.SourcePath != guidePath {
		t.Errorf("expected source path %q, got %q", guidePath, result.SourcePath)
	}
	if len(result.Content) == 0 {
		t.Fatal("expected converted content")
	}

	// The source file itself is left untouched
	onDisk, err := os.ReadFile(guidePath)
	if err != nil {
		t.Fatalf("read guide: %v", err)
	}
	if string(onDisk) != legacy {
		t.Error("ConvertLegacyGuide must not modify the source file")
	}
}

func TestFindLegacyGuide(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// No style guide at all
	if got := FindLegacyGuide(tmpDir); got != "" {
		t.Errorf("expected no legacy guide, got %q", got)
	}

	// Current layout is not reported
	current := "style_guide:\n  terminology: {}\n"
	guidePath := filepath.Join(tmpDir, ".styleguide.yaml")
	if err := os.WriteFile(guidePath, []byte(current), 0644); err != nil {
		t.Fatalf("write guide: %v", err)
	}
	if got := FindLegacyGuide(tmpDir); got != "" {
		t.Errorf("expected no legacy guide for current layout, got %q", got)
	}

	// Legacy layout is reported
	legacy := "writing_standards:\n  grammar: {}\n"
	if err := os.WriteFile(guidePath, []byte(legacy), 0644); err != nil {
		t.Fatalf("write guide: %v", err)
	}
	if got := FindLegacyGuide(tmpDir); got != guidePath {
		t.Errorf("expected %q, got %q", guidePath, got)
	}
}
