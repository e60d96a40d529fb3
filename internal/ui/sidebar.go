package ui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/teacherbob/teacherbob/internal/catalog"
	"github.com/teacherbob/teacherbob/internal/keys"
	"github.com/teacherbob/teacherbob/internal/schedule"
	"github.com/teacherbob/teacherbob/internal/selection"
)

// SidebarTab is one of the two sidebar pages.
type SidebarTab int

const (
	TabSubjects SidebarTab = iota
	TabSchedule
)

// Title is the label shown in the tab bar.
func (t SidebarTab) Title() string {
	if t == TabSchedule {
		return "Horário"
	}
	return "Matérias"
}

// sidebarPane is the list the cursor moves in on the Matérias tab.
type sidebarPane int

const (
	paneSubjects sidebarPane = iota
	paneTopics
)

// Sidebar text
const (
	SidebarTitle    = "🎓 Teacher Bob"
	SidebarSubtitle = "Seu assistente de estudos"
	ScheduleTitle   = "Cronograma Escolar"
	NoClassesText   = "Nenhuma aula cadastrada"
	NoSubjectText   = "Escolha uma matéria para ver os tópicos"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Sidebar shows the subject catalog, the calendar and the weekly schedule.
// It owns the schedule store; the selection it shows is pushed in by the app.
type Sidebar struct {
	width   int
	height  int
	focused bool
	tab     SidebarTab

	subjects   []catalog.Subject
	pane       sidebarPane
	subjectIdx int
	topicIdx   int
	selection  selection.Selection

	store        *schedule.Store
	scrollOffset int

	now func() time.Time
}

// NewSidebar creates a sidebar holding the given schedule store.
func NewSidebar(store *schedule.Store) *Sidebar {
	return &Sidebar{
		subjects: catalog.Subjects(),
		store:    store,
		now:      time.Now,
	}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// Tab returns the visible tab.
func (s *Sidebar) Tab() SidebarTab {
	return s.tab
}

// SetTab switches the visible tab.
func (s *Sidebar) SetTab(tab SidebarTab) {
	s.tab = tab
	s.scrollOffset = 0
}

// SetSelection updates the highlighted subject and topic. A new subject resets
// the topic cursor; when no subject is selected the cursor returns to the
// subject list.
func (s *Sidebar) SetSelection(sel selection.Selection) {
	if sel.Subject != s.selection.Subject {
		s.topicIdx = 0
	}
	s.selection = sel
	if !sel.HasSubject() {
		s.pane = paneSubjects
	}
}

// Store returns the schedule store.
func (s *Sidebar) Store() *schedule.Store {
	return s.store
}

// Schedule returns a copy of the current schedule.
func (s *Sidebar) Schedule() schedule.Schedule {
	return s.store.Get()
}

// ReplaceSchedule swaps the whole schedule.
func (s *Sidebar) ReplaceSchedule(sched schedule.Schedule) {
	s.store.Replace(sched)
}

// InTopics reports whether the cursor is in the topic list.
func (s *Sidebar) InTopics() bool {
	return s.tab == TabSubjects && s.pane == paneTopics
}

// EnterTopics moves the cursor into the topic list of the selected subject.
// It does nothing when that subject has no topics.
func (s *Sidebar) EnterTopics() {
	if s.tab == TabSubjects && len(s.activeTopics()) > 0 {
		s.pane = paneTopics
	}
}

// CursorSubject returns the subject under the cursor.
func (s *Sidebar) CursorSubject() (catalog.Subject, bool) {
	if s.subjectIdx < 0 || s.subjectIdx >= len(s.subjects) {
		return catalog.Subject{}, false
	}
	return s.subjects[s.subjectIdx], true
}

// CursorTopic returns the topic under the cursor in the topic list of the
// selected subject.
func (s *Sidebar) CursorTopic() (string, bool) {
	topics := s.activeTopics()
	if s.topicIdx < 0 || s.topicIdx >= len(topics) {
		return "", false
	}
	return topics[s.topicIdx], true
}

func (s *Sidebar) activeTopics() []string {
	subj, ok := catalog.SubjectByID(s.selection.Subject)
	if !ok {
		return nil
	}
	return subj.Topics
}

// Update handles cursor movement and tab switching. Selection itself is done by
// the app, which reads CursorSubject and CursorTopic on enter.
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	switch key.String() {
	case "[", "1":
		s.SetTab(TabSubjects)
	case "]", "2":
		s.SetTab(TabSchedule)
	case keys.Up, "k":
		s.move(-1)
	case keys.Down, "j":
		s.move(1)
	case keys.PgUp:
		s.move(-5)
	case keys.PgDown:
		s.move(5)
	case keys.Left, "h":
		s.pane = paneSubjects
	case keys.Right, "l":
		s.EnterTopics()
	}
	return s, nil
}

func (s *Sidebar) move(delta int) {
	if s.tab == TabSchedule {
		s.scrollOffset = max(0, s.scrollOffset+delta)
		return
	}
	if s.pane == paneTopics {
		s.topicIdx = clampIndex(s.topicIdx+delta, len(s.activeTopics()))
		return
	}
	s.subjectIdx = clampIndex(s.subjectIdx+delta, len(s.subjects))
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return max(0, min(i, n-1))
}

// View renders the sidebar panel
func (s *Sidebar) View() string {
	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)

	lines := []string{
		PanelTitleStyle.Render(s.truncate(SidebarTitle, innerWidth-2)),
		SidebarMutedStyle.Render(" " + s.truncate(SidebarSubtitle, innerWidth-1)),
		s.renderTabs(),
		"",
	}

	bodyHeight := max(0, innerHeight-len(lines))
	var body []string
	if s.tab == TabSchedule {
		body = s.renderSchedule(innerWidth)
		maxScroll := max(0, len(body)-bodyHeight)
		s.scrollOffset = min(s.scrollOffset, maxScroll)
		body = body[s.scrollOffset:]
	} else {
		body = s.renderSubjects(innerWidth)
	}
	if len(body) > bodyHeight {
		body = body[:bodyHeight]
	}
	lines = append(lines, body...)

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(s.width).Height(s.height).Render(strings.Join(lines, "\n"))
}

func (s *Sidebar) truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

func (s *Sidebar) renderTabs() string {
	var tabs []string
	for _, tab := range []SidebarTab{TabSubjects, TabSchedule} {
		if tab == s.tab {
			tabs = append(tabs, TabActiveStyle.Render(tab.Title()))
		} else {
			tabs = append(tabs, TabInactiveStyle.Render(tab.Title()))
		}
	}
	return " " + strings.Join(tabs, " ")
}

func (s *Sidebar) renderSubjects(width int) []string {
	lines := []string{SidebarSectionStyle.Render("Matérias")}
	for i, subj := range s.subjects {
		dot := lipgloss.NewStyle().Foreground(SubjectColor(subj.Color)).Render("●")
		name := s.truncate(subj.Name, width-6)
		cursor := s.focused && s.pane == paneSubjects && i == s.subjectIdx
		lines = append(lines, s.renderItem(dot+" "+name, cursor, subj.ID == s.selection.Subject))
	}
	lines = append(lines, "")

	if subj, ok := catalog.SubjectByID(s.selection.Subject); ok {
		header := s.truncate("Tópicos de "+subj.Name, width-2)
		lines = append(lines, SidebarSectionStyle.Render(header))
		for i, topic := range subj.Topics {
			cursor := s.focused && s.pane == paneTopics && i == s.topicIdx
			lines = append(lines, s.renderItem(s.truncate(topic, width-4), cursor, topic == s.selection.Topic))
		}
	} else {
		for _, line := range strings.Split(wrapText(NoSubjectText, width-2), "\n") {
			lines = append(lines, SidebarMutedStyle.Render(" "+line))
		}
	}
	lines = append(lines, "")

	return append(lines, renderCalendar(s.now())...)
}

func (s *Sidebar) renderItem(text string, cursor, selected bool) string {
	switch {
	case selected:
		return SidebarSelectedStyle.Render("› " + text)
	case cursor:
		return SidebarCursorStyle.Render("› " + text)
	default:
		return SidebarItemStyle.Render("  " + text)
	}
}

// renderCalendar draws the month of now with today highlighted. Weeks start
// on Sunday.
func renderCalendar(now time.Time) []string {
	year, month, today := now.Date()
	title := fmt.Sprintf("%s %d", monthNames[month-1], year)
	lines := []string{
		SidebarSectionStyle.Render(strings.ToUpper(title[:1]) + title[1:]),
		" " + CalendarHeaderStyle.Render("  D  S  T  Q  Q  S  S"),
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var week strings.Builder
	for range int(first.Weekday()) {
		week.WriteString("   ")
	}
	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%2d", day)
		if day == today {
			cell = CalendarTodayStyle.Render(cell)
		} else {
			cell = CalendarDayStyle.Render(cell)
		}
		week.WriteString(" " + cell)

		if time.Date(year, month, day, 0, 0, 0, 0, now.Location()).Weekday() == time.Saturday || day == daysInMonth {
			lines = append(lines, " "+week.String())
			week.Reset()
		}
	}
	return lines
}

func (s *Sidebar) renderSchedule(width int) []string {
	lines := []string{SidebarSectionStyle.Render(ScheduleTitle)}
	sched := s.store.Get()
	for _, day := range sched {
		lines = append(lines, "", PanelTitleStyle.Render(s.truncate(day.Name, width-2)))
		if len(day.Classes) == 0 {
			lines = append(lines, SidebarMutedStyle.Render("   "+NoClassesText))
			continue
		}
		for _, class := range day.Classes {
			dot := lipgloss.NewStyle().Foreground(SubjectColor(class.Color)).Render("●")
			text := s.truncate(class.Time+"  "+class.Subject, width-6)
			lines = append(lines, "  "+dot+" "+ChatMessageStyle.Render(text))
		}
	}
	if len(sched) == 0 {
		lines = append(lines, "", SidebarMutedStyle.Render("   "+NoClassesText))
	}
	lines = append(lines, "", SidebarMutedStyle.Render(" e: editar horário"))
	return lines
}
