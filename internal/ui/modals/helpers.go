package modals

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderSelectableList renders a simple list with selection highlighting.
// selectedIndex indicates which item is selected; -1 highlights nothing.
func RenderSelectableList(items []string, selectedIndex int) string {
	var result strings.Builder
	for i, item := range items {
		style := SidebarItemStyle
		prefix := "  "
		if i == selectedIndex {
			style = SidebarSelectedStyle
			prefix = "> "
		}
		result.WriteString(style.Render(prefix+item) + "\n")
	}
	return result.String()
}

// TruncateString shortens s to at most maxWidth terminal cells, ending in "…"
// when cut.
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// TruncatePath shortens a path from the front, keeping the file name visible.
func TruncatePath(path string, maxWidth int) string {
	if runewidth.StringWidth(path) <= maxWidth {
		return path
	}
	if maxWidth <= 1 {
		return TruncateString(path, maxWidth)
	}
	runes := []rune(path)
	for i := range runes {
		tail := string(runes[i:])
		if runewidth.StringWidth(tail) <= maxWidth-1 {
			return "…" + tail
		}
	}
	return "…"
}
