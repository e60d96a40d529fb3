// Package catalog holds the compiled-in school data: the subjects a student can
// pick in the sidebar, with their topics, and the palette used to color classes
// in the weekly schedule.
package catalog

// Color is a named color tag. The UI maps each tag to a concrete terminal color.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorPink   Color = "pink"
	ColorAmber  Color = "amber"
	ColorGreen  Color = "green"
	ColorTeal   Color = "teal"
	ColorOrange Color = "orange"
	ColorPurple Color = "purple"
	ColorIndigo Color = "indigo"
	ColorGray   Color = "gray"
)

// NeutralColor is used for any class whose subject is not in the palette.
const NeutralColor = ColorGray

// Subject is a school course with its topic list.
type Subject struct {
	ID     string
	Name   string
	Color  Color
	Topics []string
}

// ClassSubject is an entry of the schedule palette. It covers every course that
// can appear in a timetable, including ones without topics (breaks, PE).
type ClassSubject struct {
	Name  string
	Color Color
}

var subjects = []Subject{
	{
		ID:     "math",
		Name:   "Matemática",
		Color:  ColorBlue,
		Topics: []string{"Adição e Subtração", "Multiplicação", "Divisão", "Frações", "Geometria"},
	},
	{
		ID:     "portuguese",
		Name:   "Português",
		Color:  ColorPink,
		Topics: []string{"Leitura", "Escrita", "Gramática", "Interpretação de Texto", "Ortografia"},
	},
	{
		ID:     "history",
		Name:   "História",
		Color:  ColorAmber,
		Topics: []string{"História do Brasil", "Descobrimento", "Colonização", "Independência", "República"},
	},
	{
		ID:     "science",
		Name:   "Ciências",
		Color:  ColorGreen,
		Topics: []string{"Corpo Humano", "Animais", "Plantas", "Meio Ambiente", "Experimentos"},
	},
	{
		ID:     "geography",
		Name:   "Geografia",
		Color:  ColorTeal,
		Topics: []string{"Estados do Brasil", "Capitais", "Relevo", "Clima", "População"},
	},
}

var classSubjects = []ClassSubject{
	{Name: "Matemática", Color: ColorBlue},
	{Name: "Português", Color: ColorPink},
	{Name: "História", Color: ColorAmber},
	{Name: "Ciências", Color: ColorGreen},
	{Name: "Geografia", Color: ColorTeal},
	{Name: "Educação Física", Color: ColorOrange},
	{Name: "Artes", Color: ColorPurple},
	{Name: "Inglês", Color: ColorIndigo},
	{Name: "Recreio", Color: ColorGray},
}

// Subjects returns the sidebar catalog in display order. The returned slice is a
// copy; callers may not mutate the catalog.
func Subjects() []Subject {
	out := make([]Subject, len(subjects))
	for i, s := range subjects {
		s.Topics = append([]string(nil), s.Topics...)
		out[i] = s
	}
	return out
}

// SubjectByID looks up a catalog subject by id.
func SubjectByID(id string) (Subject, bool) {
	for _, s := range subjects {
		if s.ID == id {
			s.Topics = append([]string(nil), s.Topics...)
			return s, true
		}
	}
	return Subject{}, false
}

// SubjectName returns the display name for a subject id, or the id itself when
// it is not in the catalog.
func SubjectName(id string) string {
	if s, ok := SubjectByID(id); ok {
		return s.Name
	}
	return id
}

// ClassSubjects returns the schedule palette in display order.
func ClassSubjects() []ClassSubject {
	return append([]ClassSubject(nil), classSubjects...)
}

// ColorFor returns the palette color of a class subject by name, falling back to
// NeutralColor for names the palette does not know.
func ColorFor(name string) Color {
	for _, s := range classSubjects {
		if s.Name == name {
			return s.Color
		}
	}
	return NeutralColor
}
