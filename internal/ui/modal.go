package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teacherbob/teacherbob/internal/ui/modals"
)

// ModalState is the state of the dialog currently shown.
type ModalState = modals.ModalState

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// width returns the outer width of the modal box for the current state,
// clamped to the screen.
func (m *Modal) width(screenWidth int) int {
	w := ModalWidth
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		w = pw.PreferredWidth()
	}
	return max(MinTerminalWidth/2, min(w, screenWidth-2))
}

// View renders the modal centered on a screen of the given size.
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	width := m.width(screenWidth)
	frameW, frameH := ModalStyle.GetFrameSize()
	if sized, ok := m.State.(modals.ModalWithSize); ok {
		sized.SetSize(width-frameW, screenHeight-frameH-2)
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	box := ModalStyle.Width(width).Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// RefreshModalStyles hands the active theme's styles to the modals package.
// It runs at startup and on every theme change.
func RefreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, SidebarItemStyle, SidebarSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning,
		ModalInputWidth, ModalInputCharLimit, ModalWidth, ModalWidthWide,
		SubjectColor,
	)
}

// Modal states re-exported so the app only depends on ui.
type (
	HelpState                = modals.HelpState
	HelpSection              = modals.HelpSection
	HelpShortcut             = modals.HelpShortcut
	HelpShortcutTriggeredMsg = modals.HelpShortcutTriggeredMsg
	ScheduleEditorState      = modals.ScheduleEditorState
	ScheduleEditorAction     = modals.ScheduleEditorAction
	ClassFormState           = modals.ClassFormState
	AttachFileState          = modals.AttachFileState
	SettingsState            = modals.SettingsState
)

const (
	EditorNone        = modals.EditorNone
	EditorAddClass    = modals.EditorAddClass
	EditorEditClass   = modals.EditorEditClass
	EditorRemoveClass = modals.EditorRemoveClass
	EditorAddDay      = modals.EditorAddDay
)

var (
	NewHelpStateFromSections = modals.NewHelpStateFromSections
	NewScheduleEditorState   = modals.NewScheduleEditorState
	NewClassFormState        = modals.NewClassFormState
	NewAttachFileState       = modals.NewAttachFileState
	NewSettingsState         = modals.NewSettingsState
)
