package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teacherbob/teacherbob/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.ChatWidth, ctx.ContentHeight)

	switch {
	case ctx.Compact && m.focus == FocusSidebar && !m.overlayOpen:
		// The sidebar is hidden; typing goes to the chat
		m.setFocus(FocusChat)
	case !ctx.Compact && m.overlayOpen:
		m.overlayOpen = false
	}
}

// updateFooterContext tells the footer which shortcuts apply right now.
func (m *Model) updateFooterContext() {
	_, hasReply := m.session.LastReply()
	m.footer.SetContext(ui.FooterContext{
		SidebarFocused: m.focus == FocusSidebar,
		ScheduleTab:    m.sidebar.Tab() == ui.TabSchedule,
		Sending:        m.session.IsSending(),
		HasAttachments: len(m.session.Pending()) > 0,
		HasReply:       hasReply,
		Compact:        m.compact(),
		OverlayOpen:    m.overlayOpen,
	})
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Carregando..."
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.updateFooterContext()

	var panels string
	switch {
	case m.compact() && m.overlayOpen:
		ctx := ui.GetViewContext()
		panels = lipgloss.Place(m.width, ctx.ContentHeight, lipgloss.Left, lipgloss.Top, m.sidebar.View())
	case m.compact():
		panels = m.chat.View()
	default:
		panels = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.chat.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)
}
