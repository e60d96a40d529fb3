package schedule

import (
	"reflect"
	"slices"
	"testing"

	"github.com/teacherbob/teacherbob/internal/catalog"
)

func times(t *testing.T, s Schedule, day string) []string {
	t.Helper()
	d, ok := s.Day(day)
	if !ok {
		t.Fatalf("day %q not found", day)
	}
	var out []string
	for _, c := range d.Classes {
		out = append(out, c.Time)
	}
	return out
}

func TestSeed(t *testing.T) {
	s := Seed()
	if len(s) != 2 {
		t.Fatalf("expected 2 days, got %d", len(s))
	}
	if s[0].Name != "Segunda-feira" || s[1].Name != "Terça-feira" {
		t.Errorf("unexpected day names: %q, %q", s[0].Name, s[1].Name)
	}

	ids := make(map[string]bool)
	for _, d := range s {
		for _, c := range d.Classes {
			ids[c.ID] = true
			if c.Color != catalog.ColorFor(c.Subject) {
				t.Errorf("class %s color %q, want %q", c.ID, c.Color, catalog.ColorFor(c.Subject))
			}
		}
	}
	for _, id := range []string{"1", "2", "3", "4", "5", "6"} {
		if !ids[id] {
			t.Errorf("missing seed class id %q", id)
		}
	}
}

func TestAddClass(t *testing.T) {
	s := Seed()
	got := AddClass(s, "Segunda-feira", "10:25 - 11:10", "Artes", "x")

	d, _ := got.Day("Segunda-feira")
	if len(d.Classes) != 4 {
		t.Fatalf("expected 4 classes, got %d", len(d.Classes))
	}

	var added ClassEntry
	for _, c := range d.Classes {
		if c.ID == "x" {
			added = c
		}
	}
	if added.Subject != "Artes" || added.Color != catalog.ColorPurple {
		t.Errorf("added = %+v", added)
	}

	// The original schedule is untouched
	orig, _ := s.Day("Segunda-feira")
	if len(orig.Classes) != 3 {
		t.Errorf("input mutated: %d classes", len(orig.Classes))
	}
}

func TestAddClass_LexicographicOrder(t *testing.T) {
	s := Seed()
	got := AddClass(s, "Segunda-feira", "10:25 - 11:10", "Artes", "x")

	// String ordering puts "10:25" before "7:30"
	want := []string{"10:25 - 11:10", "7:30 - 8:40", "8:45 - 9:30", "9:35 - 10:20"}
	if have := times(t, got, "Segunda-feira"); !reflect.DeepEqual(have, want) {
		t.Errorf("order = %v, want %v", have, want)
	}
}

func TestAddClass_IgnoresInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		time    string
		subject string
	}{
		{"empty time", "Segunda-feira", "", "Artes"},
		{"blank time", "Segunda-feira", "   ", "Artes"},
		{"empty subject", "Segunda-feira", "11:00", ""},
		{"blank subject", "Segunda-feira", "11:00", "\t"},
		{"unknown day", "Domingo", "11:00", "Artes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Seed()
			got := AddClass(s, tt.day, tt.time, tt.subject, "x")
			if !reflect.DeepEqual(got, s) {
				t.Errorf("schedule changed: %+v", got)
			}
		})
	}
}

func TestAddClass_UnknownSubjectGetsNeutralColor(t *testing.T) {
	got := AddClass(Seed(), "Terça-feira", "11:00", "Robótica", "x")
	d, _ := got.Day("Terça-feira")
	for _, c := range d.Classes {
		if c.ID == "x" && c.Color != catalog.NeutralColor {
			t.Errorf("color = %q, want %q", c.Color, catalog.NeutralColor)
		}
	}
}

func TestUpdateClass(t *testing.T) {
	s := Seed()
	got := UpdateClass(s, "Segunda-feira", "1", Patch{Subject: "Inglês"})

	d, _ := got.Day("Segunda-feira")
	idx := slices.IndexFunc(d.Classes, func(c ClassEntry) bool { return c.ID == "1" })
	if idx < 0 {
		t.Fatal("class 1 missing")
	}
	c := d.Classes[idx]
	if c.Subject != "Inglês" || c.Color != catalog.ColorIndigo {
		t.Errorf("updated = %+v", c)
	}
	if c.Time != "7:30 - 8:40" {
		t.Errorf("empty Time in patch should keep the old time, got %q", c.Time)
	}
}

func TestUpdateClass_ResortsDay(t *testing.T) {
	got := UpdateClass(Seed(), "Segunda-feira", "1", Patch{Time: "9:40 - 10:30"})

	want := []string{"8:45 - 9:30", "9:35 - 10:20", "9:40 - 10:30"}
	if have := times(t, got, "Segunda-feira"); !reflect.DeepEqual(have, want) {
		t.Errorf("order = %v, want %v", have, want)
	}
}

func TestUpdateClass_UnknownIDLeavesClasses(t *testing.T) {
	s := Seed()
	got := UpdateClass(s, "Segunda-feira", "nope", Patch{Subject: "Artes"})
	if !reflect.DeepEqual(got, s) {
		t.Errorf("schedule changed: %+v", got)
	}
}

func TestRemoveClass(t *testing.T) {
	s := Seed()
	got := RemoveClass(s, "Segunda-feira", "2")

	want := []string{"7:30 - 8:40", "9:35 - 10:20"}
	if have := times(t, got, "Segunda-feira"); !reflect.DeepEqual(have, want) {
		t.Errorf("remaining = %v, want %v", have, want)
	}
	if have := times(t, s, "Segunda-feira"); len(have) != 3 {
		t.Error("input mutated")
	}
}

func TestRemoveClass_Unknown(t *testing.T) {
	s := Seed()
	if got := RemoveClass(s, "Segunda-feira", "99"); !reflect.DeepEqual(got, s) {
		t.Error("unknown id should be a no-op")
	}
	if got := RemoveClass(s, "Domingo", "1"); !reflect.DeepEqual(got, s) {
		t.Error("unknown day should be a no-op")
	}
}

func TestAddDay(t *testing.T) {
	s := Seed()
	got := AddDay(s, "Quarta-feira")
	if len(got) != 3 || got[2].Name != "Quarta-feira" || len(got[2].Classes) != 0 {
		t.Fatalf("got %+v", got)
	}
	if len(s) != 2 {
		t.Error("input mutated")
	}

	again := AddDay(got, "Quarta-feira")
	if !reflect.DeepEqual(again, got) {
		t.Error("adding an existing day should be a no-op")
	}
	if blank := AddDay(s, " "); len(blank) != 2 {
		t.Error("blank day name should be ignored")
	}
}

func TestMissingWeekdays(t *testing.T) {
	want := []string{"Quarta-feira", "Quinta-feira", "Sexta-feira"}
	if got := MissingWeekdays(Seed()); !reflect.DeepEqual(got, want) {
		t.Errorf("MissingWeekdays(seed) = %v, want %v", got, want)
	}

	full := Seed()
	for _, w := range Weekdays {
		full = AddDay(full, w)
	}
	if got := MissingWeekdays(full); len(got) != 0 {
		t.Errorf("expected none missing, got %v", got)
	}

	// Order follows the calendar, not insertion
	partial := AddDay(Schedule{}, "Sexta-feira")
	want = []string{"Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira"}
	if got := MissingWeekdays(partial); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
