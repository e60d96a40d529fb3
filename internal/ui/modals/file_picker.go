package modals

import (
	"path/filepath"

	"charm.land/bubbles/v2/filepicker"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// AttachPickerHeight is the number of directory entries shown before SetSize
// runs.
const AttachPickerHeight = 12

// AttachFileState browses the file system for a PDF to attach to the next
// message.
type AttachFileState struct {
	picker   filepicker.Model
	selected string
	rejected string
}

func (*AttachFileState) modalState() {}

func (s *AttachFileState) Title() string { return "Anexar PDF" }

func (s *AttachFileState) Help() string {
	return "↑/↓ navegar  →: abrir pasta  ←: voltar  Enter: anexar  Esc: cancelar"
}

// NewAttachFileState opens the picker in dir. The returned command reads the
// directory and must be run for the list to appear.
func NewAttachFileState(dir string) (*AttachFileState, tea.Cmd) {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = []string{".pdf", ".PDF"}
	fp.ShowPermissions = false
	fp.ShowSize = true
	fp.AutoHeight = false
	fp.SetHeight(AttachPickerHeight)

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(ColorPrimary)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(ColorSecondary)
	fp.Styles.File = lipgloss.NewStyle().Foreground(ColorText)
	fp.Styles.DisabledFile = lipgloss.NewStyle().Foreground(ColorTextMuted)
	fp.Styles.EmptyDirectory = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		PaddingLeft(2).
		SetString("Nenhum arquivo nesta pasta.")
	// Esc closes the modal instead of leaving the directory
	fp.KeyMap.Back.SetKeys("h", "backspace", "left")

	s := &AttachFileState{picker: fp}
	return s, fp.Init()
}

// SelectedPath returns the PDF the user chose.
func (s *AttachFileState) SelectedPath() (string, bool) {
	return s.selected, s.selected != ""
}

// CurrentDirectory returns the directory being browsed.
func (s *AttachFileState) CurrentDirectory() string {
	return s.picker.CurrentDirectory
}

func (s *AttachFileState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)

	if ok, path := s.picker.DidSelectFile(msg); ok {
		s.selected = path
		s.rejected = ""
	} else if ok, path := s.picker.DidSelectDisabledFile(msg); ok {
		s.rejected = filepath.Base(path)
	}
	return s, cmd
}

// SetSize fits the directory listing between the header and the help line.
func (s *AttachFileState) SetSize(width, height int) {
	const chromeOverhead = 8
	s.picker.SetHeight(max(3, min(AttachPickerHeight, height-chromeOverhead)))
}

// PreferredWidth returns the wide modal width.
func (s *AttachFileState) PreferredWidth() int {
	return ModalWidthWide
}

func (s *AttachFileState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	dir := lipgloss.NewStyle().Foreground(ColorTextMuted).
		Render(TruncatePath(s.picker.CurrentDirectory, ModalWidthWide-8))

	body := s.picker.View()
	if s.rejected != "" {
		body += "\n" + StatusErrorStyle.Render(TruncateString(s.rejected+" não é um PDF", ModalWidthWide-8))
	}

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, dir, body, help)
}
