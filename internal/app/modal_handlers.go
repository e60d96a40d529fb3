package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/teacherbob/teacherbob/internal/keys"
	"github.com/teacherbob/teacherbob/internal/logger"
	"github.com/teacherbob/teacherbob/internal/schedule"
	"github.com/teacherbob/teacherbob/internal/ui"
)

// handleModalKey handles key events when a modal is visible.
// It dispatches to the appropriate handler based on the modal type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global quit works even with a modal open
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	switch s := m.modal.State.(type) {
	case *ui.ScheduleEditorState:
		return m.handleScheduleEditorModal(key, msg, s)
	case *ui.ClassFormState:
		return m.handleClassFormModal(key, msg, s)
	case *ui.AttachFileState:
		return m.handleAttachFileModal(key, msg, s)
	case *ui.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *ui.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	// Default: update modal input
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleScheduleEditorModal handles key events for the schedule editor.
func (m *Model) handleScheduleEditorModal(key string, msg tea.KeyPressMsg, state *ui.ScheduleEditorState) (tea.Model, tea.Cmd) {
	if key == keys.Escape {
		m.modal.Hide()
		return m, nil
	}

	log := logger.WithComponent("schedule")
	switch state.ActionFor(key) {
	case ui.EditorAddClass:
		day, _ := state.FocusedDay()
		m.modal.Show(ui.NewClassFormState(day, nil, state))
		return m, nil

	case ui.EditorEditClass:
		day, _ := state.FocusedDay()
		class, _ := state.FocusedClass()
		m.modal.Show(ui.NewClassFormState(day, &class, state))
		return m, nil

	case ui.EditorRemoveClass:
		day, _ := state.FocusedDay()
		class, _ := state.FocusedClass()
		m.applySchedule(state, schedule.RemoveClass(m.sidebar.Schedule(), day, class.ID))
		log.Info("class removed", "day", day, "id", class.ID, "subject", class.Subject)
		return m, m.ShowFlashInfo(class.Subject + " removida de " + day)

	case ui.EditorAddDay:
		day, _ := state.DayToAdd()
		m.applySchedule(state, schedule.AddDay(m.sidebar.Schedule(), day))
		log.Info("day added", "day", day)
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleClassFormModal handles key events for the add/edit class form.
func (m *Model) handleClassFormModal(key string, msg tea.KeyPressMsg, state *ui.ClassFormState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.returnToEditor(state.Editor())
		return m, nil

	case keys.Enter:
		timeText := state.GetTime()
		if timeText == "" {
			// Incomplete classes are never committed; the form stays open.
			return m, nil
		}
		subject := state.GetSubject()

		var next schedule.Schedule
		if state.IsEdit() {
			next = schedule.UpdateClass(m.sidebar.Schedule(), state.Day, state.EditingID,
				schedule.Patch{Time: timeText, Subject: subject})
		} else {
			next = schedule.AddClass(m.sidebar.Schedule(), state.Day, timeText, subject, schedule.NewClassID())
		}
		logger.WithComponent("schedule").Info("class saved",
			"day", state.Day, "time", timeText, "subject", subject, "edit", state.IsEdit())

		editor := state.Editor()
		m.applySchedule(editor, next)
		m.returnToEditor(editor)
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// applySchedule stores a new schedule and refreshes the open editor.
func (m *Model) applySchedule(editor *ui.ScheduleEditorState, next schedule.Schedule) {
	m.sidebar.ReplaceSchedule(next)
	if editor != nil {
		editor.SetSchedule(m.sidebar.Schedule())
	}
}

// returnToEditor shows the schedule editor again, or closes the modal when
// there is none to return to.
func (m *Model) returnToEditor(editor *ui.ScheduleEditorState) {
	if editor == nil {
		m.modal.Hide()
		return
	}
	m.modal.Show(editor)
}

// handleAttachFileModal handles key events for the PDF picker.
func (m *Model) handleAttachFileModal(key string, msg tea.KeyPressMsg, state *ui.AttachFileState) (tea.Model, tea.Cmd) {
	if key == keys.Escape {
		m.modal.Hide()
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal

	path, ok := state.SelectedPath()
	if !ok {
		return m, cmd
	}

	added, err := m.session.Attach(path)
	switch {
	case err != nil:
		logger.WithComponent("app").Warn("attach failed", "path", path, "error", err)
		return m, tea.Batch(cmd, m.ShowFlashError("Não foi possível ler o arquivo"))
	case !added:
		return m, tea.Batch(cmd, m.ShowFlashWarning("Apenas arquivos PDF podem ser anexados"))
	}

	m.modal.Hide()
	m.chat.SetPending(m.session.Pending())
	if m.compact() {
		m.overlayOpen = false
	}
	m.setFocus(FocusChat)
	pending := m.session.Pending()
	return m, tea.Batch(cmd, m.ShowFlashSuccess(pending[len(pending)-1].Name+" anexado"))
}

// handleSettingsModal handles key events for the Settings modal. Theme
// changes are previewed live and reverted on cancel.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *ui.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		if string(ui.CurrentThemeName()) != state.OriginalTheme {
			m.applyTheme(state.OriginalTheme)
		}
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		theme := state.GetSelectedTheme()
		m.config.SetTheme(theme)
		m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())
		if err := m.config.Save(); err != nil {
			logger.WithComponent("config").Error("failed to save settings", "error", err)
			m.modal.SetError("Falha ao salvar: " + err.Error())
			return m, nil
		}
		m.applyTheme(theme)
		m.modal.Hide()
		return m, m.ShowFlashSuccess("Configurações salvas")
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	if state.GetSelectedTheme() != string(ui.CurrentThemeName()) {
		m.applyTheme(state.GetSelectedTheme())
	}
	return m, cmd
}

// applyTheme switches the active theme and restyles the widgets that cache it.
func (m *Model) applyTheme(name string) {
	ui.SetThemeByName(name)
	m.chat.RefreshStyles()
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *ui.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		// Trigger the selected shortcut
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil {
			m.modal.Hide()
			return m, func() tea.Msg {
				return ui.HelpShortcutTriggeredMsg{Key: shortcut.Key}
			}
		}
		return m, nil
	}
	// Forward navigation keys to the modal
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpShortcutTrigger handles shortcuts triggered from the help modal.
// It normalizes display keys and delegates to the shortcut registry.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	normalizedKey := normalizeHelpDisplayKey(key)
	if normalizedKey == "" {
		return m, nil // Display-only shortcut, no action
	}
	result, cmd, _ := m.ExecuteShortcut(normalizedKey)
	return result, cmd
}

// normalizeHelpDisplayKey converts help modal display keys to actual key values.
// Returns empty string for display-only shortcuts that shouldn't be executed.
func normalizeHelpDisplayKey(displayKey string) string {
	switch displayKey {
	case "↑/↓ ou j/k", "←/→", "[/]", "PgUp/PgDn", "Enter", "Shift+Enter", "Esc":
		return ""
	case "Tab":
		return keys.Tab
	default:
		return strings.ToLower(displayKey)
	}
}
