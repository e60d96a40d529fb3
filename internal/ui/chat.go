package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/teacherbob/teacherbob/internal/chat"
	"github.com/teacherbob/teacherbob/internal/keys"
	"github.com/teacherbob/teacherbob/internal/logger"
	"github.com/teacherbob/teacherbob/internal/selection"
	"github.com/teacherbob/teacherbob/internal/ui/modals"
)

// InputPlaceholder is shown in the empty input box.
const InputPlaceholder = "Digite sua pergunta para o Teacher Bob..."

// Chat is the conversation panel: a headline, the message history and the
// input box with any pending attachments.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool

	messages  []chat.Message
	pending   []chat.Attachment
	selection selection.Selection
	typing    typingIndicator

	now func() time.Time
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = InputPlaceholder
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	// Enter sends; the app handles it before the textarea sees it.
	ti.KeyMap.InsertNewline.SetKeys(keys.ShiftEnter, keys.AltEnter)
	modals.ApplyTextareaStyles(&ti)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
		now:      time.Now,
	}
	c.updateContent()
	return c
}

// inputHeight is the height of the input box including the attachment bar.
func (c *Chat) inputHeight() int {
	if len(c.pending) > 0 {
		return InputTotalHeight + 1
	}
	return InputTotalHeight
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.resize()
}

func (c *Chat) resize() {
	ctx := GetViewContext()

	chatPanelHeight := c.height - c.inputHeight()
	viewportHeight := max(1, ctx.InnerHeight(chatPanelHeight)-TitleHeight)

	c.viewport.SetWidth(max(1, ctx.InnerWidth(c.width)))
	c.viewport.SetHeight(viewportHeight)
	c.input.SetWidth(max(1, ctx.InnerWidth(c.width)-InputPaddingWidth))

	logger.WithComponent("ui").Debug("chat resized",
		"width", c.width, "height", c.height,
		"viewport", viewportHeight, "input", c.inputHeight())

	c.updateContent()
}

// RefreshStyles re-applies the active theme to the input and the history.
func (c *Chat) RefreshStyles() {
	modals.ApplyTextareaStyles(&c.input)
	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetMessages replaces the conversation shown and scrolls to the newest message.
func (c *Chat) SetMessages(msgs []chat.Message) {
	c.messages = msgs
	c.updateContent()
}

// SetPending sets the attachments shown above the input.
func (c *Chat) SetPending(pending []chat.Attachment) {
	hadPending := len(c.pending) > 0
	c.pending = pending
	if hadPending != (len(pending) > 0) {
		c.resize()
	}
}

// SetSelection sets the subject and topic used for the headline and badges.
func (c *Chat) SetSelection(sel selection.Selection) {
	c.selection = sel
}

// SetSending starts or stops the typing indicator. Starting returns the tick
// command that animates it.
func (c *Chat) SetSending(sending bool) tea.Cmd {
	if sending == c.typing.active {
		return nil
	}
	if sending {
		c.typing.start(c.now())
		c.updateContent()
		return TypingTick()
	}
	c.typing.stop()
	c.updateContent()
	return nil
}

// IsSending reports whether the typing indicator is shown.
func (c *Chat) IsSending() bool {
	return c.typing.active
}

// GetInput returns the input text as typed.
func (c *Chat) GetInput() string {
	return c.input.Value()
}

// ClearInput clears the input field
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the input field value
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder
	for i, msg := range c.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(renderMessage(msg, wrapWidth))
	}

	if c.typing.active {
		if len(c.messages) > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(ChatAssistantStyle.Render(chat.RoleAssistant.Label()))
		sb.WriteString("\n")
		sb.WriteString(c.typing.render(c.now()))
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	if _, ok := msg.(TypingTickMsg); ok {
		if !c.typing.active {
			return c, nil
		}
		c.typing.advance()
		c.updateContent()
		return c, TypingTick()
	}

	var cmds []tea.Cmd
	if c.focused {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case keys.PgUp, keys.PgDown, keys.CtrlUp, keys.CtrlDown, keys.CtrlU, keys.CtrlD:
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}

			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			// Keys typed into the input must not scroll the history
			return c, cmd
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

// headline renders the title line with the selection badges.
func (c *Chat) headline(width int) string {
	line := PanelTitleStyle.Render(ChatHeadline(c.selection))
	if badges := renderSelectionBadges(c.selection); badges != "" {
		line += " " + badges
	}
	return ansi.Truncate(line, width, "…")
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	inputStyle := ChatInputStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
		inputStyle = ChatInputFocusedStyle
	}

	innerWidth := GetViewContext().InnerWidth(c.width)
	history := lipgloss.JoinVertical(lipgloss.Left, c.headline(innerWidth), c.viewport.View())
	chatPanel := panelStyle.Width(c.width).Height(c.height - c.inputHeight()).Render(history)

	inputContent := c.input.View()
	if bar := renderAttachmentBar(c.pending, innerWidth-InputPaddingWidth); bar != "" {
		inputContent = bar + "\n" + inputContent
	}
	inputArea := inputStyle.Width(c.width).Render(inputContent)

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
