package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentenceCase(t *testing.T) {
	keep := []string{"Phoenix", "Prism"}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "title case lowered",
			in:   "Getting Started With Clusters",
			want: "Getting started with clusters",
		},
		{
			name: "first word capitalized",
			in:   "getting started",
			want: "Getting started",
		},
		{
			name: "acronyms survive",
			in:   "Upgrading AOS And NCC",
			want: "Upgrading AOS and NCC",
		},
		{
			name: "keep words survive",
			in:   "Imaging With Phoenix",
			want: "Imaging with Phoenix",
		},
		{
			name: "trailing punctuation stays attached",
			in:   "Running NCC: The Basics",
			want: "Running NCC: the basics",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SentenceCase(tt.in, keep))
		})
	}
}

func TestIsAcronym(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"NCC", true},
		{"AOS", true},
		{"CVM", true},
		{"H2", true},
		{"A", false},
		{"Ncc", false},
		{"ncc", false},
		{"42", false},
		{"N-C", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAcronym(tt.in), "input %q", tt.in)
	}
}

func TestTrimWordPunct(t *testing.T) {
	assert.Equal(t, "NCC", TrimWordPunct("NCC:"))
	assert.Equal(t, "clusters", TrimWordPunct("clusters."))
	assert.Equal(t, "node", TrimWordPunct(`node)"`))
	assert.Equal(t, "plain", TrimWordPunct("plain"))
	assert.Equal(t, "", TrimWordPunct("...!"))
}
