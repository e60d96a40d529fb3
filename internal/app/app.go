package app

import (
	"context"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/teacherbob/teacherbob/internal/answer"
	"github.com/teacherbob/teacherbob/internal/catalog"
	"github.com/teacherbob/teacherbob/internal/chat"
	"github.com/teacherbob/teacherbob/internal/config"
	"github.com/teacherbob/teacherbob/internal/logger"
	"github.com/teacherbob/teacherbob/internal/schedule"
	"github.com/teacherbob/teacherbob/internal/selection"
	"github.com/teacherbob/teacherbob/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusChat
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	if f == FocusChat {
		return "chat"
	}
	return "sidebar"
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	chat    *ui.Chat
	modal   *ui.Modal

	width  int
	height int
	focus  Focus

	// overlayOpen is set in compact mode while the sidebar is drawn over the chat
	overlayOpen bool

	asker     answer.Asker
	session   *chat.Session
	selection selection.Selection

	// startDir is where the attach picker opens
	startDir string
}

// AnswerMsg carries the outcome of a question back to the update loop.
type AnswerMsg struct {
	Reply   string
	Err     error
	Subject string // subject id selected when the question was sent
}

// Option configures a Model.
type Option func(*Model)

// WithAsker replaces the HTTP client used to ask questions.
func WithAsker(a answer.Asker) Option {
	return func(m *Model) { m.asker = a }
}

// WithSchedule replaces the seeded weekly schedule.
func WithSchedule(s schedule.Schedule) Option {
	return func(m *Model) { m.sidebar = ui.NewSidebar(schedule.NewStore(s)) }
}

// WithStartDir sets the directory the attach picker opens in.
func WithStartDir(dir string) Option {
	return func(m *Model) { m.startDir = dir }
}

// New creates a new app model
func New(cfg *config.Config, version string, opts ...Option) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:  cfg,
		version: version,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		sidebar: ui.NewSidebar(schedule.NewStore(schedule.Seed())),
		chat:    ui.NewChat(),
		modal:   ui.NewModal(),
		focus:   FocusSidebar,
		asker:   answer.NewClient(cfg.Endpoint, answer.WithTimeout(cfg.RequestTimeout)),
		session: chat.NewSession(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			m.startDir = wd
		} else {
			m.startDir = "."
		}
	}

	m.sidebar.SetFocused(true)
	m.chat.SetMessages(m.session.Messages())

	logger.WithComponent("app").Info("app initialized",
		"version", version, "endpoint", cfg.Endpoint, "theme", ui.CurrentThemeName())
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Selection returns the current subject and topic.
func (m *Model) Selection() selection.Selection {
	return m.selection
}

// Session returns the conversation.
func (m *Model) Session() *chat.Session {
	return m.session
}

// Focus returns the focused panel.
func (m *Model) Focus() Focus {
	return m.focus
}

// setFocus moves keyboard focus to the given panel.
func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.sidebar.SetFocused(f == FocusSidebar)
	m.chat.SetFocused(f == FocusChat)
}

// compact reports whether the terminal is too narrow to show both panels.
func (m *Model) compact() bool {
	return m.width > 0 && m.width < ui.CompactWidth
}

// openOverlay shows the sidebar over the chat in compact mode.
func (m *Model) openOverlay() {
	m.overlayOpen = true
	m.setFocus(FocusSidebar)
}

// closeOverlay hides the compact sidebar and returns focus to the chat.
func (m *Model) closeOverlay() {
	m.overlayOpen = false
	m.setFocus(FocusChat)
}

// toggleFocus switches between the sidebar and the chat. In compact mode the
// sidebar is only reachable through the overlay.
func (m *Model) toggleFocus() {
	if m.compact() {
		if m.overlayOpen {
			m.closeOverlay()
		} else {
			m.openOverlay()
		}
		return
	}
	if m.focus == FocusSidebar {
		m.setFocus(FocusChat)
	} else {
		m.setFocus(FocusSidebar)
	}
}

// setSelection applies a new subject/topic selection to every panel.
func (m *Model) setSelection(sel selection.Selection) {
	m.selection = sel
	m.sidebar.SetSelection(sel)
	m.chat.SetSelection(sel)
	if sel.HasSubject() {
		m.header.SetSelection(catalog.SubjectName(sel.Subject), sel.Topic)
	} else {
		m.header.SetSelection("", "")
	}
	logger.WithComponent("app").Debug("selection changed", "subject", sel.Subject, "topic", sel.Topic)
}

// syncChat pushes the session's messages and attachments into the chat panel.
func (m *Model) syncChat() {
	m.chat.SetMessages(m.session.Messages())
	m.chat.SetPending(m.session.Pending())
}

// sendMessage composes a question from the input and starts the request.
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	if m.session.IsSending() {
		return m, m.ShowFlashWarning("Aguarde o Teacher Bob terminar de responder")
	}

	q, ok := m.session.Compose(m.chat.GetInput(), m.selection)
	if !ok {
		return m, nil
	}
	m.chat.ClearInput()
	m.syncChat()

	logger.WithComponent("app").Info("question sent",
		"subject", m.selection.Subject, "topic", m.selection.Topic, "chars", len(q.Text))

	return m, tea.Batch(m.chat.SetSending(true), askCmd(m.asker, q, m.selection.Subject))
}

// askCmd runs the request off the update loop and reports back with AnswerMsg.
func askCmd(asker answer.Asker, q answer.Question, subject string) tea.Cmd {
	return func() tea.Msg {
		reply, err := asker.Ask(context.Background(), q)
		return AnswerMsg{Reply: reply, Err: err, Subject: subject}
	}
}

// selectFromSidebar applies the item under the sidebar cursor.
func (m *Model) selectFromSidebar() (tea.Model, tea.Cmd) {
	if m.sidebar.Tab() == ui.TabSchedule {
		return shortcutEditSchedule(m)
	}

	if m.sidebar.InTopics() {
		topic, ok := m.sidebar.CursorTopic()
		if !ok {
			return m, nil
		}
		m.setSelection(m.selection.SelectTopic(topic))
		if m.compact() {
			m.closeOverlay()
		} else {
			m.setFocus(FocusChat)
		}
		return m, nil
	}

	subj, ok := m.sidebar.CursorSubject()
	if !ok {
		return m, nil
	}
	m.setSelection(m.selection.SelectSubject(subj.ID))
	if m.compact() {
		m.closeOverlay()
		return m, nil
	}
	m.sidebar.EnterTopics()
	return m, nil
}
