package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/teacherbob/teacherbob/internal/schedule"
)

func pressKey(s ModalState, code rune, times int) {
	for range times {
		s.Update(tea.KeyPressMsg{Code: code})
	}
}

func TestScheduleEditor_Rows(t *testing.T) {
	s := NewScheduleEditorState(schedule.Seed())

	// 2 day headers, 6 classes, 3 missing weekdays
	if len(s.rows) != 11 {
		t.Fatalf("got %d rows, want 11", len(s.rows))
	}

	day, ok := s.FocusedDay()
	if !ok || day != "Segunda-feira" {
		t.Errorf("FocusedDay = %q, %v; want Segunda-feira", day, ok)
	}
	if _, ok := s.FocusedClass(); ok {
		t.Error("day header should not report a focused class")
	}
}

func TestScheduleEditor_ActionFor(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		key   string
		want  ScheduleEditorAction
	}{
		{"add on day header", 0, "a", EditorAddClass},
		{"enter on day header", 0, "enter", EditorAddClass},
		{"edit on day header", 0, "e", EditorNone},
		{"remove on day header", 0, "d", EditorNone},
		{"add on class", 1, "a", EditorAddClass},
		{"edit on class", 1, "e", EditorEditClass},
		{"remove on class", 1, "d", EditorRemoveClass},
		{"enter on class", 1, "enter", EditorEditClass},
		{"enter on missing day", 8, "enter", EditorAddDay},
		{"add on missing day", 8, "a", EditorNone},
		{"new day anywhere", 2, "n", EditorAddDay},
		{"unbound key", 1, "z", EditorNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduleEditorState(schedule.Seed())
			pressKey(s, tea.KeyDown, tt.downs)
			if got := s.ActionFor(tt.key); got != tt.want {
				t.Errorf("ActionFor(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestScheduleEditor_FocusedClass(t *testing.T) {
	s := NewScheduleEditorState(schedule.Seed())
	pressKey(s, tea.KeyDown, 1)

	class, ok := s.FocusedClass()
	if !ok {
		t.Fatal("expected a focused class")
	}
	if class.ID != "1" || class.Subject != "História" {
		t.Errorf("focused class = %+v, want id 1 História", class)
	}
	day, _ := s.FocusedDay()
	if day != "Segunda-feira" {
		t.Errorf("class row day = %q, want Segunda-feira", day)
	}
}

func TestScheduleEditor_DayToAdd(t *testing.T) {
	s := NewScheduleEditorState(schedule.Seed())

	day, ok := s.DayToAdd()
	if !ok || day != "Quarta-feira" {
		t.Errorf("DayToAdd on header = %q, %v; want Quarta-feira", day, ok)
	}

	pressKey(s, tea.KeyEnd, 1)
	day, ok = s.DayToAdd()
	if !ok || day != "Sexta-feira" {
		t.Errorf("DayToAdd on last missing day = %q, %v; want Sexta-feira", day, ok)
	}

	full := schedule.Seed()
	for _, w := range schedule.MissingWeekdays(full) {
		full = schedule.AddDay(full, w)
	}
	s.SetSchedule(full)
	if _, ok := s.DayToAdd(); ok {
		t.Error("full week should have no day to add")
	}
	if got := s.ActionFor("n"); got != EditorNone {
		t.Errorf("ActionFor(n) on full week = %v, want EditorNone", got)
	}
}

func TestScheduleEditor_SetScheduleClampsCursor(t *testing.T) {
	s := NewScheduleEditorState(schedule.Seed())
	pressKey(s, tea.KeyEnd, 1)

	s.SetSchedule(schedule.Schedule{{Name: "Segunda-feira"}})
	// Segunda header + 4 missing weekdays
	if len(s.rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(s.rows))
	}
	if s.cursor != 4 {
		t.Errorf("cursor = %d, want 4", s.cursor)
	}
}

func TestScheduleEditor_NavigationBounds(t *testing.T) {
	s := NewScheduleEditorState(schedule.Seed())
	pressKey(s, tea.KeyUp, 3)
	if s.cursor != 0 {
		t.Errorf("cursor = %d after moving up at the top, want 0", s.cursor)
	}
	pressKey(s, tea.KeyDown, 50)
	if s.cursor != len(s.rows)-1 {
		t.Errorf("cursor = %d after moving past the end, want %d", s.cursor, len(s.rows)-1)
	}
}

func TestScheduleEditor_Render(t *testing.T) {
	s := NewScheduleEditorState(schedule.Seed())
	rendered := s.Render()
	for _, want := range []string{"Editar horário", "Segunda-feira", "7:30 - 8:40", "História", "+ Quarta-feira"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestScheduleEditor_EmptyDayAndEmptySchedule(t *testing.T) {
	s := NewScheduleEditorState(schedule.Schedule{{Name: "Segunda-feira"}})
	if !strings.Contains(s.Render(), "(sem aulas)") {
		t.Error("empty day should be marked")
	}

	var empty schedule.Schedule
	s = NewScheduleEditorState(empty)
	if _, ok := s.FocusedDay(); ok {
		t.Error("schedule without days should have no focused day")
	}
	day, ok := s.DayToAdd()
	if !ok || day != "Segunda-feira" {
		t.Errorf("DayToAdd = %q, %v; want Segunda-feira", day, ok)
	}
}

func TestScheduleEditor_Scrolling(t *testing.T) {
	s := NewScheduleEditorState(schedule.Seed())
	s.SetSize(ModalWidthWide, 9)
	if s.maxVisible != 3 {
		t.Fatalf("maxVisible = %d, want 3", s.maxVisible)
	}

	pressKey(s, tea.KeyEnd, 1)
	if s.scrollOffset != len(s.rows)-3 {
		t.Errorf("scrollOffset = %d, want %d", s.scrollOffset, len(s.rows)-3)
	}
	rendered := s.Render()
	if !strings.Contains(rendered, "↑ mais") {
		t.Error("scrolled list should hint at rows above")
	}
	if strings.Contains(rendered, "História") {
		t.Error("rows above the window should not be rendered")
	}
}
