package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/teacherbob/teacherbob/internal/errors"
	"github.com/teacherbob/teacherbob/internal/keys"
	"github.com/teacherbob/teacherbob/internal/logger"
	"github.com/teacherbob/teacherbob/internal/notification"
	"github.com/teacherbob/teacherbob/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled by handleKeyPress, let it fall through to focused panel

	case tea.PasteMsg:
		if m.modal.IsVisible() {
			return m, nil
		}
		if m.focus != FocusChat {
			m.setFocus(FocusChat)
			if m.compact() {
				m.overlayOpen = false
			}
		}

	case AnswerMsg:
		return m.handleAnswerMsg(msg)

	case ui.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case ui.FlashTickMsg:
		return m.handleFlashTick()

	case ui.TypingTickMsg:
		c, cmd := m.chat.Update(msg)
		m.chat = c
		return m, cmd

	case tea.MouseWheelMsg:
		if m.modal.IsVisible() || m.overlayOpen {
			return m, nil
		}
		c, cmd := m.chat.Update(msg)
		m.chat = c
		return m, cmd
	}

	// Non-key messages such as directory listings belong to the open modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	// Update focused panel for other messages
	if m.focus == FocusSidebar {
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		cmds = append(cmds, cmd)
	} else {
		c, cmd := m.chat.Update(msg)
		m.chat = c
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should fall through
// to the focused panel for handling.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.WithComponent("app").Debug("key pressed",
		"key", key, "focus", m.focus.String(), "modalVisible", m.modal.IsVisible())

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// Handle ctrl+c specially - always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if key == keys.Escape && m.overlayOpen {
		m.closeOverlay()
		return m, nil
	}

	// Try executing from shortcut registry
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	// Handle enter key
	if key == keys.Enter {
		return m.handleEnterKey()
	}

	// Key not handled - return nil to signal it should fall through to focused panel
	return nil, nil
}

// handleEnterKey sends the typed question from the chat or selects the item
// under the sidebar cursor.
func (m *Model) handleEnterKey() (tea.Model, tea.Cmd) {
	if m.focus == FocusChat {
		return m.sendMessage()
	}
	return m.selectFromSidebar()
}

// handleAnswerMsg records the reply, or the fallback on failure, and stops the
// typing indicator.
func (m *Model) handleAnswerMsg(msg AnswerMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.Err != nil {
		m.session.Fail(msg.Err)
		cmd = m.answerFailureFlash(msg.Err)
	} else {
		logger.Info("reply received for %q (%d chars)", msg.Subject, len(msg.Reply))
		m.session.Succeed(msg.Reply)
	}
	m.chat.SetSending(false)
	m.syncChat()

	if msg.Err == nil && m.config.GetNotificationsEnabled() {
		go notifyReplyReady(msg.Subject)
	}
	return m, cmd
}

// answerFailureFlash logs a failed question by kind. The chat only ever shows
// the fallback reply; a timeout also gets a footer warning since the fallback
// blames the server.
func (m *Model) answerFailureFlash(err error) tea.Cmd {
	switch {
	case errors.Is(err, errors.KindTimeout):
		logger.Warn("answer timed out after %s", m.config.RequestTimeout)
		return m.ShowFlashWarning("O Teacher Bob demorou demais para responder")
	case errors.Is(err, errors.KindNetwork):
		logger.Warn("answer service unreachable at %s: %v", m.config.Endpoint, err)
	case errors.GetKind(err) == errors.KindUnknown:
		logger.Debug("answer failed without a kind: %v", err)
	default:
		logger.Error("answer failed (%s): %v", errors.GetKind(err), err)
	}
	return nil
}

// handleFlashTick clears an expired flash message or keeps checking.
func (m *Model) handleFlashTick() (tea.Model, tea.Cmd) {
	if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
		return m, nil
	}
	return m, ui.FlashTick()
}

// notifyReplyReady sends the desktop notification for a reply. Replaced in tests.
var notifyReplyReady = func(subject string) {
	_ = notification.ReplyReady(subject)
}
