package modals

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

const optionNotifications = "notifications"

// SettingsState edits the preferences saved to the config file: the theme and
// whether a desktop notification announces each reply.
type SettingsState struct {
	selectedTheme        string
	OriginalTheme        string // restored when the modal is cancelled
	NotificationsEnabled bool
	Endpoint             string // shown, not editable

	generalOptions []string

	form *huh.Form

	availableWidth int
}

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return ModalWidthWide }

// SetSize updates the available width for rendering content.
func (s *SettingsState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *SettingsState) contentWidth() int {
	if s.availableWidth > 0 {
		return s.availableWidth - 10
	}
	return ModalWidthWide - 10
}

func (s *SettingsState) Title() string { return "Configurações" }

func (s *SettingsState) Help() string {
	return "Tab: próximo campo  Enter: salvar  Esc: cancelar"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	server := renderSectionHeader("Servidor") + "\n" +
		lipgloss.NewStyle().Foreground(ColorTextMuted).
			Render("  "+TruncatePath(s.Endpoint, s.contentWidth()-2))

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), server, help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.syncFromMultiSelect()
	return s, cmd
}

func (s *SettingsState) syncFromMultiSelect() {
	s.NotificationsEnabled = slices.Contains(s.generalOptions, optionNotifications)
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetNotificationsEnabled returns whether notifications are enabled
func (s *SettingsState) GetNotificationsEnabled() bool {
	return s.NotificationsEnabled
}

func renderSectionHeader(title string) string {
	return lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginTop(1).
		Render(title)
}

// NewSettingsState creates a SettingsState showing the current values.
// themes and themeDisplayNames are parallel slices.
func NewSettingsState(themes, themeDisplayNames []string, currentTheme string,
	notificationsEnabled bool, endpoint string) *SettingsState {

	s := &SettingsState{
		selectedTheme:        currentTheme,
		OriginalTheme:        currentTheme,
		NotificationsEnabled: notificationsEnabled,
		Endpoint:             endpoint,
		availableWidth:       ModalWidthWide,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		label := themes[i]
		if i < len(themeDisplayNames) {
			label = themeDisplayNames[i]
		}
		themeOptions[i] = huh.NewOption(label, themes[i])
	}

	generalOpts := []huh.Option[string]{
		huh.NewOption("Notificações na área de trabalho", optionNotifications).
			Selected(notificationsEnabled),
	}
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Tema").
				Options(themeOptions...).
				Value(&s.selectedTheme),
			huh.NewMultiSelect[string]().
				Title("Opções").
				Options(generalOpts...).
				Height(len(generalOpts)).
				Value(&s.generalOptions),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(s.contentWidth()).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
