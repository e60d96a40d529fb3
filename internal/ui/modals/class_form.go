package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/teacherbob/teacherbob/internal/catalog"
	"github.com/teacherbob/teacherbob/internal/schedule"
)

// ClassTimePlaceholder hints the free-text time format.
const ClassTimePlaceholder = "ex: 7:30 - 8:40"

// ClassFormState adds a class to a day or edits an existing one. It returns to
// the schedule editor when closed.
type ClassFormState struct {
	Day       string
	EditingID string // empty when adding

	time    string
	subject string
	form    *huh.Form

	editor *ScheduleEditorState
}

func (*ClassFormState) modalState() {}

func (s *ClassFormState) Title() string {
	if s.IsEdit() {
		return "Editar aula · " + s.Day
	}
	return "Nova aula · " + s.Day
}

func (s *ClassFormState) Help() string {
	return "Tab: próximo campo  Enter: salvar  Esc: voltar"
}

// NewClassFormState opens the form for day. A non-nil existing class puts the
// form in edit mode with its fields filled in. editor is the schedule editor to
// return to.
func NewClassFormState(day string, existing *schedule.ClassEntry, editor *ScheduleEditorState) *ClassFormState {
	s := &ClassFormState{Day: day, editor: editor}

	palette := catalog.ClassSubjects()
	options := make([]huh.Option[string], 0, len(palette))
	for _, cs := range palette {
		options = append(options, huh.NewOption(cs.Name, cs.Name))
	}
	if len(palette) > 0 {
		s.subject = palette[0].Name
	}
	if existing != nil {
		s.EditingID = existing.ID
		s.time = existing.Time
		s.subject = existing.Subject
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Horário").
				Placeholder(ClassTimePlaceholder).
				CharLimit(ModalInputCharLimit).
				Value(&s.time),
			huh.NewSelect[string]().
				Title("Matéria").
				Options(options...).
				Height(8).
				Value(&s.subject),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}

// IsEdit reports whether the form edits an existing class.
func (s *ClassFormState) IsEdit() bool {
	return s.EditingID != ""
}

// GetTime returns the time text, trimmed.
func (s *ClassFormState) GetTime() string {
	return strings.TrimSpace(s.time)
}

// GetSubject returns the chosen subject name.
func (s *ClassFormState) GetSubject() string {
	return s.subject
}

// Editor returns the schedule editor the form came from.
func (s *ClassFormState) Editor() *ScheduleEditorState {
	return s.editor
}

func (s *ClassFormState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	body := s.form.View()

	var preview string
	if s.subject != "" {
		dot := lipgloss.NewStyle().Foreground(SubjectColor(catalog.ColorFor(s.subject))).Render("●")
		text := s.GetTime()
		if text == "" {
			text = ClassTimePlaceholder
		}
		preview = "\n" + lipgloss.NewStyle().Foreground(ColorTextMuted).Render("  "+dot+" "+text+"  "+s.subject)
	}

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, body+preview, help)
}

func (s *ClassFormState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}
