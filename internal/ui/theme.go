package ui

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Light marks themes meant for light terminal backgrounds. Subject colors
	// and code highlighting switch to darker variants on them.
	Light bool

	// Primary is the main accent color (focus, highlights, header gradient)
	Primary string
	// Secondary is used for keys in the footer and assistant details
	Secondary string

	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	User      string // "Você" labels
	Assistant string // "Teacher Bob" labels
	Warning   string
	Error     string
	Success   string

	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	MarkdownH1       string
	MarkdownH2       string
	MarkdownH3       string
	MarkdownCode     string // Inline code
	MarkdownCodeBg   string
	MarkdownLink     string
	MarkdownListItem string

	// CodeStyle is the chroma style used for fenced code blocks
	CodeStyle string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeClassroom  ThemeName = "classroom"
	ThemeChalkboard ThemeName = "chalkboard"
	ThemeNotebook   ThemeName = "notebook"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeClassroom

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeClassroom: {
		Name:             "Classroom",
		Primary:          "#2563EB",
		Secondary:        "#38BDF8",
		Bg:               "#0F172A",
		BgSelected:       "#1D4ED8",
		Text:             "#F8FAFC",
		TextMuted:        "#94A3B8",
		TextInverse:      "#0F172A",
		User:             "#93C5FD",
		Assistant:        "#38BDF8",
		Warning:          "#F59E0B",
		Error:            "#EF4444",
		Success:          "#22C55E",
		Border:           "#334155",
		BorderFocus:      "#3B82F6",
		MarkdownH1:       "#60A5FA",
		MarkdownH2:       "#93C5FD",
		MarkdownH3:       "#38BDF8",
		MarkdownCode:     "#7DD3FC",
		MarkdownCodeBg:   "#1E293B",
		MarkdownLink:     "#38BDF8",
		MarkdownListItem: "#3B82F6",
		CodeStyle:        "monokai",
	},
	ThemeChalkboard: {
		Name:             "Chalkboard",
		Primary:          "#16A34A",
		Secondary:        "#FDE68A",
		Bg:               "#1C2B22",
		BgSelected:       "#166534",
		Text:             "#F0FDF4",
		TextMuted:        "#A7B8AC",
		TextInverse:      "#1C2B22",
		User:             "#FDE68A",
		Assistant:        "#86EFAC",
		Warning:          "#FBBF24",
		Error:            "#F87171",
		Success:          "#4ADE80",
		Border:           "#2F4A39",
		MarkdownH1:       "#FDE68A",
		MarkdownH2:       "#FEF3C7",
		MarkdownH3:       "#86EFAC",
		MarkdownCode:     "#FEF08A",
		MarkdownCodeBg:   "#14532D",
		MarkdownLink:     "#A7F3D0",
		MarkdownListItem: "#86EFAC",
		CodeStyle:        "monokai",
	},
	ThemeNotebook: {
		Name:             "Notebook",
		Light:            true,
		Primary:          "#2563EB",
		Secondary:        "#0E7490",
		Bg:               "#FFFFFF",
		BgSelected:       "#DBEAFE",
		Text:             "#1F2937",
		TextMuted:        "#6B7280",
		TextInverse:      "#FFFFFF",
		User:             "#1D4ED8",
		Assistant:        "#0E7490",
		Warning:          "#B45309",
		Error:            "#DC2626",
		Success:          "#15803D",
		Border:           "#D1D5DB",
		MarkdownH1:       "#1D4ED8",
		MarkdownH2:       "#2563EB",
		MarkdownH3:       "#0E7490",
		MarkdownCode:     "#9D174D",
		MarkdownCodeBg:   "#F3F4F6",
		MarkdownLink:     "#0891B2",
		MarkdownListItem: "#2563EB",
		CodeStyle:        "github",
	},
	ThemeNord: {
		Name:             "Nord",
		Primary:          "#88C0D0",
		Secondary:        "#81A1C1",
		Bg:               "#2E3440",
		BgSelected:       "#5E81AC",
		Text:             "#ECEFF4",
		TextMuted:        "#D8DEE9",
		TextInverse:      "#2E3440",
		User:             "#A3BE8C",
		Assistant:        "#88C0D0",
		Warning:          "#EBCB8B",
		Error:            "#BF616A",
		Success:          "#A3BE8C",
		Border:           "#4C566A",
		MarkdownH1:       "#88C0D0",
		MarkdownH2:       "#81A1C1",
		MarkdownH3:       "#8FBCBB",
		MarkdownCode:     "#A3BE8C",
		MarkdownCodeBg:   "#3B4252",
		MarkdownLink:     "#88C0D0",
		MarkdownListItem: "#81A1C1",
		CodeStyle:        "nord",
	},
	ThemeDracula: {
		Name:             "Dracula",
		Primary:          "#BD93F9",
		Secondary:        "#8BE9FD",
		Bg:               "#282A36",
		BgSelected:       "#44475A",
		Text:             "#F8F8F2",
		TextMuted:        "#A4A8C0",
		TextInverse:      "#282A36",
		User:             "#FF79C6",
		Assistant:        "#8BE9FD",
		Warning:          "#FFB86C",
		Error:            "#FF5555",
		Success:          "#50FA7B",
		Border:           "#44475A",
		MarkdownH1:       "#BD93F9",
		MarkdownH2:       "#FF79C6",
		MarkdownH3:       "#8BE9FD",
		MarkdownCode:     "#50FA7B",
		MarkdownCodeBg:   "#21222C",
		MarkdownLink:     "#8BE9FD",
		MarkdownListItem: "#BD93F9",
		CodeStyle:        "dracula",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeClassroom,
		ThemeChalkboard,
		ThemeNotebook,
		ThemeNord,
		ThemeDracula,
	}
}

// IsThemeName reports whether name is a builtin theme.
func IsThemeName(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	return ok
}

// GetTheme returns a theme by name, defaulting to Classroom if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles.
// Unknown names fall back to the default theme.
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentTheme = BuiltinThemes[name]
	currentThemeName = name
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}
