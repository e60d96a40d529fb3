// Package schedule models the student's weekly class timetable.
//
// Every operation is a pure function: it takes a Schedule and returns a new one,
// leaving the input untouched. Invalid input (blank fields, unknown days, unknown
// class ids) is ignored and the schedule comes back unchanged.
package schedule

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/teacherbob/teacherbob/internal/catalog"
)

// Weekdays are the school days, in calendar order.
var Weekdays = []string{
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
}

// ClassEntry is one class slot. Time is free text such as "7:30 - 8:40".
type ClassEntry struct {
	ID      string
	Time    string
	Subject string
	Color   catalog.Color
}

// Day is a named weekday and its classes, ordered by Time.
type Day struct {
	Name    string
	Classes []ClassEntry
}

// Schedule is the ordered list of days. Day names are unique.
type Schedule []Day

// Patch holds the fields to change in UpdateClass. Empty fields are left as is.
type Patch struct {
	Time    string
	Subject string
}

// Seed returns the timetable a new session starts with.
func Seed() Schedule {
	return Schedule{
		{
			Name: "Segunda-feira",
			Classes: []ClassEntry{
				newEntry("1", "7:30 - 8:40", "História"),
				newEntry("2", "8:45 - 9:30", "Matemática"),
				newEntry("3", "9:35 - 10:20", "Português"),
			},
		},
		{
			Name: "Terça-feira",
			Classes: []ClassEntry{
				newEntry("4", "7:30 - 8:40", "Ciências"),
				newEntry("5", "8:45 - 9:30", "Geografia"),
				newEntry("6", "9:35 - 10:20", "Matemática"),
			},
		},
	}
}

func newEntry(id, time, subject string) ClassEntry {
	return ClassEntry{ID: id, Time: time, Subject: subject, Color: catalog.ColorFor(subject)}
}

// Clone returns a deep copy of s.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	for i, d := range s {
		out[i] = Day{Name: d.Name, Classes: slices.Clone(d.Classes)}
	}
	return out
}

// Day returns the day with the given name.
func (s Schedule) Day(name string) (Day, bool) {
	for _, d := range s {
		if d.Name == name {
			return d, true
		}
	}
	return Day{}, false
}

// AddClass appends a class to day and re-sorts that day by time. It is a no-op
// when time or subject is blank or when the day does not exist.
func AddClass(s Schedule, day, time, subject, id string) Schedule {
	if isBlank(time) || isBlank(subject) {
		return s.Clone()
	}
	return mapDay(s, day, func(d Day) Day {
		d.Classes = append(d.Classes, newEntry(id, time, subject))
		sortByTime(d.Classes)
		return d
	})
}

// UpdateClass merges the non-empty fields of patch into the class with the given
// id, recomputes its color from the resulting subject and re-sorts the day.
func UpdateClass(s Schedule, day, id string, patch Patch) Schedule {
	return mapDay(s, day, func(d Day) Day {
		for i, c := range d.Classes {
			if c.ID != id {
				continue
			}
			if !isBlank(patch.Time) {
				c.Time = patch.Time
			}
			if !isBlank(patch.Subject) {
				c.Subject = patch.Subject
			}
			c.Color = catalog.ColorFor(c.Subject)
			d.Classes[i] = c
		}
		sortByTime(d.Classes)
		return d
	})
}

// RemoveClass deletes the class with the given id from day. The order of the
// remaining classes is unchanged.
func RemoveClass(s Schedule, day, id string) Schedule {
	return mapDay(s, day, func(d Day) Day {
		d.Classes = slices.DeleteFunc(d.Classes, func(c ClassEntry) bool {
			return c.ID == id
		})
		return d
	})
}

// AddDay appends an empty day. Adding a day that already exists is a no-op.
func AddDay(s Schedule, name string) Schedule {
	out := s.Clone()
	if isBlank(name) {
		return out
	}
	if _, ok := s.Day(name); ok {
		return out
	}
	return append(out, Day{Name: name})
}

// MissingWeekdays lists the Weekdays that s does not contain yet, in calendar
// order.
func MissingWeekdays(s Schedule) []string {
	var missing []string
	for _, w := range Weekdays {
		if _, ok := s.Day(w); !ok {
			missing = append(missing, w)
		}
	}
	return missing
}

func mapDay(s Schedule, name string, fn func(Day) Day) Schedule {
	out := s.Clone()
	for i := range out {
		if out[i].Name == name {
			out[i] = fn(out[i])
		}
	}
	return out
}

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}

// sortByTime orders classes by their time text using Brazilian Portuguese
// collation. This is a string comparison, so "10:00" sorts before "9:00".
func sortByTime(classes []ClassEntry) {
	c := collate.New(language.BrazilianPortuguese)
	slices.SortStableFunc(classes, func(a, b ClassEntry) int {
		return c.CompareString(a.Time, b.Time)
	})
}
