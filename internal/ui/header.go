package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"
)

// HeaderTitle is the application title shown on the left of the header.
const HeaderTitle = " 🎓 Teacher Bob"

// Header represents the top header bar
type Header struct {
	width   int
	subject string // display name of the selected subject
	topic   string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSelection sets the subject display name and topic shown on the right.
func (h *Header) SetSelection(subject, topic string) {
	h.subject = subject
	h.topic = topic
}

// rightText is the breadcrumb for the current selection.
func (h *Header) rightText() string {
	if h.subject == "" {
		return ""
	}
	text := h.subject
	if h.topic != "" {
		text += " › " + h.topic
	}
	return text + " "
}

// View renders the header
func (h *Header) View() string {
	right := h.rightText()
	paddingLen := h.width - uniseg.StringWidth(HeaderTitle) - uniseg.StringWidth(right)
	if paddingLen < 0 {
		// Not enough room for the breadcrumb; keep the title.
		right = ""
		paddingLen = max(0, h.width-uniseg.StringWidth(HeaderTitle))
	}

	full := HeaderTitle + strings.Repeat(" ", paddingLen) + right
	return h.renderGradient(full, len(HeaderTitle))
}

// parseHexColor parses a hex color string (e.g., "#2563EB") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background fading from the primary
// color to the main background. Bytes before titleEnd are rendered bold and the
// breadcrumb in muted text. The gradient advances per grapheme so emoji and
// accented letters keep their width.
func (h *Header) renderGradient(content string, titleEnd int) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	total := uniseg.StringWidth(content)
	var result strings.Builder
	col, offset := 0, 0
	gr := uniseg.NewGraphemes(content)
	for gr.Next() {
		cluster := gr.Str()
		t := float64(col) / float64(total)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(offset < titleEnd)
		if offset < titleEnd {
			style = style.Foreground(textColor)
		} else {
			style = style.Foreground(mutedColor)
		}
		result.WriteString(style.Render(cluster))

		col += gr.Width()
		offset += len(cluster)
	}

	return result.String()
}
