package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/teacherbob/teacherbob/internal/keys"
	"github.com/teacherbob/teacherbob/internal/schedule"
)

type editorRowKind int

const (
	rowDay editorRowKind = iota
	rowClass
	rowMissingDay
)

// editorRow is one navigable line of the schedule editor.
type editorRow struct {
	kind  editorRowKind
	day   string
	class schedule.ClassEntry
}

// ScheduleEditorAction is what the user asked the editor to do. The app applies
// it to the schedule and pushes the result back with SetSchedule.
type ScheduleEditorAction int

const (
	EditorNone ScheduleEditorAction = iota
	EditorAddClass
	EditorEditClass
	EditorRemoveClass
	EditorAddDay
)

// ScheduleEditorMaxVisible is the number of rows shown before scrolling.
const ScheduleEditorMaxVisible = 14

// ScheduleEditorState edits the weekly timetable. Every day is listed with its
// classes, followed by the weekdays that are not in the schedule yet.
type ScheduleEditorState struct {
	schedule     schedule.Schedule
	rows         []editorRow
	cursor       int
	scrollOffset int
	maxVisible   int
}

func (*ScheduleEditorState) modalState() {}

func (s *ScheduleEditorState) Title() string { return "Editar horário" }

func (s *ScheduleEditorState) Help() string {
	return "↑/↓ navegar  a: nova aula  e: editar  d: remover  n: novo dia  Esc: fechar"
}

// NewScheduleEditorState opens the editor on sched.
func NewScheduleEditorState(sched schedule.Schedule) *ScheduleEditorState {
	s := &ScheduleEditorState{maxVisible: ScheduleEditorMaxVisible}
	s.SetSchedule(sched)
	return s
}

// SetSchedule replaces the schedule being shown, keeping the cursor on the same
// row where possible.
func (s *ScheduleEditorState) SetSchedule(sched schedule.Schedule) {
	s.schedule = sched.Clone()
	s.rows = s.rows[:0]
	for _, day := range s.schedule {
		s.rows = append(s.rows, editorRow{kind: rowDay, day: day.Name})
		for _, class := range day.Classes {
			s.rows = append(s.rows, editorRow{kind: rowClass, day: day.Name, class: class})
		}
	}
	for _, name := range schedule.MissingWeekdays(s.schedule) {
		s.rows = append(s.rows, editorRow{kind: rowMissingDay, day: name})
	}
	s.cursor = max(0, min(s.cursor, len(s.rows)-1))
	s.ensureVisible()
}

// Schedule returns the schedule being shown.
func (s *ScheduleEditorState) Schedule() schedule.Schedule {
	return s.schedule.Clone()
}

func (s *ScheduleEditorState) current() (editorRow, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return editorRow{}, false
	}
	return s.rows[s.cursor], true
}

// FocusedDay returns the scheduled day the cursor is in, either on its header
// or on one of its classes.
func (s *ScheduleEditorState) FocusedDay() (string, bool) {
	row, ok := s.current()
	if !ok || row.kind == rowMissingDay {
		return "", false
	}
	return row.day, true
}

// FocusedClass returns the class under the cursor.
func (s *ScheduleEditorState) FocusedClass() (schedule.ClassEntry, bool) {
	row, ok := s.current()
	if !ok || row.kind != rowClass {
		return schedule.ClassEntry{}, false
	}
	return row.class, true
}

// DayToAdd returns the weekday "n" adds: the missing day under the cursor, or
// the first missing weekday otherwise.
func (s *ScheduleEditorState) DayToAdd() (string, bool) {
	if row, ok := s.current(); ok && row.kind == rowMissingDay {
		return row.day, true
	}
	missing := schedule.MissingWeekdays(s.schedule)
	if len(missing) == 0 {
		return "", false
	}
	return missing[0], true
}

// ActionFor maps a key press to the editor action it triggers at the cursor.
// Enter adds a class on a day header, edits on a class and adds the day on a
// missing weekday.
func (s *ScheduleEditorState) ActionFor(key string) ScheduleEditorAction {
	row, ok := s.current()
	switch key {
	case "a":
		if _, ok := s.FocusedDay(); ok {
			return EditorAddClass
		}
	case "e":
		if ok && row.kind == rowClass {
			return EditorEditClass
		}
	case "d", "x":
		if ok && row.kind == rowClass {
			return EditorRemoveClass
		}
	case "n":
		if _, ok := s.DayToAdd(); ok {
			return EditorAddDay
		}
	case keys.Enter:
		if !ok {
			return EditorNone
		}
		switch row.kind {
		case rowDay:
			return EditorAddClass
		case rowClass:
			return EditorEditClass
		case rowMissingDay:
			return EditorAddDay
		}
	}
	return EditorNone
}

func (s *ScheduleEditorState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case keys.Up, "k":
		s.move(-1)
	case keys.Down, "j":
		s.move(1)
	case keys.Home, "g":
		s.move(-len(s.rows))
	case keys.End, "G":
		s.move(len(s.rows))
	}
	return s, nil
}

func (s *ScheduleEditorState) move(delta int) {
	if len(s.rows) == 0 {
		return
	}
	s.cursor = max(0, min(s.cursor+delta, len(s.rows)-1))
	s.ensureVisible()
}

func (s *ScheduleEditorState) ensureVisible() {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	} else if s.cursor >= s.scrollOffset+s.maxVisible {
		s.scrollOffset = s.cursor - s.maxVisible + 1
	}
	s.scrollOffset = max(0, min(s.scrollOffset, len(s.rows)-s.maxVisible))
}

// SetSize fits the row list between the title and the help line.
func (s *ScheduleEditorState) SetSize(width, height int) {
	const titleAndHelpOverhead = 6
	s.maxVisible = max(3, min(ScheduleEditorMaxVisible, height-titleAndHelpOverhead))
	s.ensureVisible()
}

// PreferredWidth returns the wide modal width.
func (s *ScheduleEditorState) PreferredWidth() int {
	return ModalWidthWide
}

func (s *ScheduleEditorState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	width := ModalWidthWide - 8

	muted := lipgloss.NewStyle().Foreground(ColorTextMuted)
	dayStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)

	var lines []string
	if len(s.rows) == 0 {
		lines = append(lines, muted.Render("  Nenhum dia no horário"))
	}

	end := min(len(s.rows), s.scrollOffset+s.maxVisible)
	for i := s.scrollOffset; i < end; i++ {
		row := s.rows[i]
		selected := i == s.cursor

		var text string
		switch row.kind {
		case rowDay:
			text = dayStyle.Render(TruncateString(row.day, width-2))
			if day, ok := s.schedule.Day(row.day); ok && len(day.Classes) == 0 {
				text += muted.Render("  (sem aulas)")
			}
		case rowClass:
			dot := lipgloss.NewStyle().Foreground(SubjectColor(row.class.Color)).Render("●")
			text = "  " + dot + " " + TruncateString(row.class.Time+"  "+row.class.Subject, width-6)
		case rowMissingDay:
			text = muted.Render("+ " + TruncateString(row.day, width-4))
		}

		if selected {
			lines = append(lines, SidebarSelectedStyle.Render("> "+text))
		} else {
			lines = append(lines, SidebarItemStyle.Render("  "+text))
		}
	}

	if len(s.rows) > s.maxVisible {
		lines = append(lines, muted.Render(strings.Repeat(" ", 2)+scrollHint(s.scrollOffset, end, len(s.rows))))
	}

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"), help)
}

func scrollHint(start, end, total int) string {
	var parts []string
	if start > 0 {
		parts = append(parts, "↑ mais")
	}
	if end < total {
		parts = append(parts, "↓ mais")
	}
	return strings.Join(parts, "  ")
}
