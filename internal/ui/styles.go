package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/teacherbob/teacherbob/internal/catalog"
)

// Color palette, filled in from the active theme by regenerateStyles.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorWarning     color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Header and footer styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
	FooterStyle      lipgloss.Style
	FooterKeyStyle   lipgloss.Style
	FooterDescStyle  lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarCursorStyle   lipgloss.Style
	SidebarMutedStyle    lipgloss.Style
	SidebarSectionStyle  lipgloss.Style
	TabActiveStyle       lipgloss.Style
	TabInactiveStyle     lipgloss.Style
	CalendarHeaderStyle  lipgloss.Style
	CalendarTodayStyle   lipgloss.Style
	CalendarDayStyle     lipgloss.Style
)

// Chat styles
var (
	ChatUserStyle         lipgloss.Style
	ChatAssistantStyle    lipgloss.Style
	ChatMessageStyle      lipgloss.Style
	ChatTimestampStyle    lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
	ChatAttachmentStyle   lipgloss.Style
	ChatTypingStyle       lipgloss.Style
	BadgeStyle            lipgloss.Style
)

// Modal and status styles
var (
	ModalStyle         lipgloss.Style
	ModalTitleStyle    lipgloss.Style
	ModalHelpStyle     lipgloss.Style
	StatusErrorStyle   lipgloss.Style
	StatusSuccessStyle lipgloss.Style
)

// Markdown styles
var (
	MarkdownH1Style       lipgloss.Style
	MarkdownH2Style       lipgloss.Style
	MarkdownH3Style       lipgloss.Style
	MarkdownBoldStyle     lipgloss.Style
	MarkdownItalicStyle   lipgloss.Style
	MarkdownCodeStyle     lipgloss.Style
	MarkdownLinkStyle     lipgloss.Style
	MarkdownListBullet    lipgloss.Style
	MarkdownCodeBlockBox  lipgloss.Style
	MarkdownBlockquote    lipgloss.Style
	MarkdownHorizontalSep lipgloss.Style
)

func init() {
	regenerateStyles()
	RefreshModalStyles()
}

// subjectPalette maps catalog color tags to terminal colors. The first value
// suits dark backgrounds, the second light ones.
var subjectPalette = map[catalog.Color][2]string{
	catalog.ColorBlue:   {"#60A5FA", "#2563EB"},
	catalog.ColorPink:   {"#F472B6", "#DB2777"},
	catalog.ColorAmber:  {"#FBBF24", "#B45309"},
	catalog.ColorGreen:  {"#4ADE80", "#15803D"},
	catalog.ColorTeal:   {"#2DD4BF", "#0F766E"},
	catalog.ColorOrange: {"#FB923C", "#C2410C"},
	catalog.ColorPurple: {"#C084FC", "#7E22CE"},
	catalog.ColorIndigo: {"#818CF8", "#4338CA"},
	catalog.ColorGray:   {"#9CA3AF", "#4B5563"},
}

// SubjectColor returns the terminal color for a catalog color tag under the
// active theme. Unknown tags get the neutral color.
func SubjectColor(c catalog.Color) color.Color {
	pair, ok := subjectPalette[c]
	if !ok {
		pair = subjectPalette[catalog.NeutralColor]
	}
	if currentTheme.Light {
		return lipgloss.Color(pair[1])
	}
	return lipgloss.Color(pair[0])
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)
	if t.Light {
		SidebarSelectedStyle = SidebarSelectedStyle.Foreground(ColorPrimary)
	}

	SidebarCursorStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	SidebarMutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	SidebarSectionStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true).
		Padding(0, 1)

	TabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	CalendarHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	CalendarTodayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary)

	CalendarDayStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatTimestampStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	ChatAttachmentStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	ChatTypingStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Italic(true)

	BadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	MarkdownH1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH1)).
		Underline(true)

	MarkdownH2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH2))

	MarkdownH3Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH3))

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true)

	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true)

	MarkdownCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownCode)).
		Background(lipgloss.Color(t.MarkdownCodeBg))

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownLink)).
		Underline(true)

	MarkdownListBullet = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownListItem))

	MarkdownCodeBlockBox = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorBorder).
		PaddingLeft(1)

	MarkdownBlockquote = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorBorder).
		PaddingLeft(1)

	MarkdownHorizontalSep = lipgloss.NewStyle().
		Foreground(ColorBorder)
}
