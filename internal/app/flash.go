package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/teacherbob/teacherbob/internal/logger"
	"github.com/teacherbob/teacherbob/internal/ui"
)

// ShowFlash replaces the footer shortcuts with text until it expires. The
// returned command drives the expiry checks.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	logger.WithComponent("app").Debug("flash", "text", text, "type", int(flashType))
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError reports a failure
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning reports something the student should retry later
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo reports a neutral change
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess confirms an action
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}
