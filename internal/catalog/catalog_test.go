package catalog

import "testing"

func TestSubjects_UniqueIDsAndTopics(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Subjects() {
		if seen[s.ID] {
			t.Errorf("duplicate subject id %q", s.ID)
		}
		seen[s.ID] = true
		if len(s.Topics) == 0 {
			t.Errorf("subject %q has no topics", s.ID)
		}
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 subjects, got %d", len(seen))
	}
}

func TestSubjects_ReturnsCopy(t *testing.T) {
	got := Subjects()
	got[0].Name = "changed"
	got[0].Topics[0] = "changed"

	again := Subjects()
	if again[0].Name == "changed" || again[0].Topics[0] == "changed" {
		t.Error("mutating the returned slice must not change the catalog")
	}
}

func TestSubjectByID(t *testing.T) {
	s, ok := SubjectByID("history")
	if !ok {
		t.Fatal("expected history to exist")
	}
	if s.Name != "História" {
		t.Errorf("Name = %q, want História", s.Name)
	}

	if _, ok := SubjectByID("astronomy"); ok {
		t.Error("unknown id should not be found")
	}
}

func TestSubjectName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"math", "Matemática"},
		{"geography", "Geografia"},
		{"unknown", "unknown"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SubjectName(tt.id); got != tt.want {
			t.Errorf("SubjectName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"Matemática", ColorBlue},
		{"Português", ColorPink},
		{"Educação Física", ColorOrange},
		{"Inglês", ColorIndigo},
		{"Recreio", ColorGray},
		{"Astronomia", NeutralColor},
		{"", NeutralColor},
		// Lookup is by exact name
		{"matemática", NeutralColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFor(tt.name); got != tt.want {
				t.Errorf("ColorFor(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestClassSubjects_CoverCatalog(t *testing.T) {
	palette := make(map[string]Color)
	for _, cs := range ClassSubjects() {
		palette[cs.Name] = cs.Color
	}
	for _, s := range Subjects() {
		c, ok := palette[s.Name]
		if !ok {
			t.Errorf("subject %q missing from class palette", s.Name)
			continue
		}
		if c != s.Color {
			t.Errorf("subject %q color %q differs from palette %q", s.Name, s.Color, c)
		}
	}
}
