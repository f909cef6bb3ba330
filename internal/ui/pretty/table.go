package pretty

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
)

// NewTable creates a table writer with the shared look: light box drawing,
// bold headers, no row separators. Callers append their own headers and rows.
func NewTable(colorEnabled bool) table.Writer {
	t := table.NewWriter()

	style := table.StyleLight
	style.Options.DrawBorder = true
	style.Options.SeparateColumns = true
	style.Options.SeparateHeader = true
	style.Options.SeparateRows = false
	if colorEnabled {
		style.Color.Header = text.Colors{text.Bold}
		style.Color.Border = text.Colors{text.FgHiBlack}
		style.Color.Separator = text.Colors{text.FgHiBlack}
	}
	t.SetStyle(style)

	return t
}

// SeverityColors returns the row colors for an issue severity. Unknown
// severities get no coloring.
func SeverityColors(severity string) text.Colors {
	switch severity {
	case "error":
		return text.Colors{text.FgRed}
	case "warning":
		return text.Colors{text.FgYellow}
	case "info":
		return text.Colors{text.FgBlue}
	default:
		return nil
	}
}

// TruncatePath shortens a file path to maxWidth display cells by dropping
// leading components, keeping the trailing ones visible.
func TruncatePath(path string, maxWidth int) string {
	width := runewidth.StringWidth(path)
	if maxWidth <= 0 || width <= maxWidth {
		return path
	}
	if maxWidth <= 1 {
		return "…"
	}

	parts := strings.Split(path, "/")
	for len(parts) > 1 {
		parts = parts[1:]
		candidate := "…/" + strings.Join(parts, "/")
		if runewidth.StringWidth(candidate) <= maxWidth {
			return candidate
		}
	}

	// A lone component still too long gets cut from the front.
	return runewidth.TruncateLeft(path, width-maxWidth+1, "…")
}
