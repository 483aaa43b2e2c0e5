package styles

import (
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// TruncateString truncates a string to fit within maxWidth cells, adding an
// ellipsis if needed.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return truncate.String(s, uint(maxWidth))
	}
	return truncate.StringWithTail(s, uint(maxWidth), "...")
}

// PadRight pads s with spaces to exactly width cells, truncating first when it
// is wider.
func PadRight(s string, width int) string {
	s = TruncateString(s, width)
	return runewidth.FillRight(s, width)
}
