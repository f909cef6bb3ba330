package pretty_test

import (
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gostylecheck/internal/ui/pretty"
)

func TestNewTable_RendersRows(t *testing.T) {
	w := pretty.NewTable(false)
	require.NotNil(t, w)

	w.AppendHeader(table.Row{"FILE", "LINE", "MESSAGE"})
	w.AppendRow(table.Row{"docs/guide.xml", 3, "Contraction found"})

	out := w.Render()

	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "docs/guide.xml")
	assert.Contains(t, out, "Contraction found")
}

func TestSeverityColors(t *testing.T) {
	assert.Equal(t, text.Colors{text.FgRed}, pretty.SeverityColors("error"))
	assert.Equal(t, text.Colors{text.FgYellow}, pretty.SeverityColors("warning"))
	assert.Equal(t, text.Colors{text.FgBlue}, pretty.SeverityColors("info"))
	assert.Nil(t, pretty.SeverityColors("unknown"))
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		expected string
	}{
		{
			name:     "fits unchanged",
			path:     "docs/guide.xml",
			maxWidth: 20,
			expected: "docs/guide.xml",
		},
		{
			name:     "drops leading components",
			path:     "docs/product/admin/guide.xml",
			maxWidth: 18,
			expected: "…/admin/guide.xml",
		},
		{
			name:     "zero width passes through",
			path:     "docs/guide.xml",
			maxWidth: 0,
			expected: "docs/guide.xml",
		},
		{
			name:     "single long component cut from front",
			path:     "averylongfilenamewithnoseparators.xml",
			maxWidth: 10,
			expected: "…ators.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pretty.TruncatePath(tt.path, tt.maxWidth))
		})
	}
}
