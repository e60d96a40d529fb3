package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterContext describes the state that decides which shortcuts are shown.
type FooterContext struct {
	SidebarFocused bool
	ScheduleTab    bool // sidebar is on the Horário tab
	Sending        bool // an answer is on its way
	HasAttachments bool
	HasReply       bool // there is an assistant reply to copy
	Compact        bool
	OverlayOpen    bool // compact mode with the sidebar overlay shown
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width int
	ctx   FooterContext
	flash *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(ctx FooterContext) {
	f.ctx = ctx
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// Bindings returns the shortcuts for the current context, most important first.
func (f *Footer) Bindings() []KeyBinding {
	c := f.ctx
	var b []KeyBinding

	if c.SidebarFocused {
		b = append(b, KeyBinding{Key: "↑/↓", Desc: "navegar"})
		if c.ScheduleTab {
			b = append(b, KeyBinding{Key: "e", Desc: "editar horário"})
		} else {
			b = append(b,
				KeyBinding{Key: "enter", Desc: "selecionar"},
				KeyBinding{Key: "←/→", Desc: "matérias/tópicos"},
			)
		}
		b = append(b, KeyBinding{Key: "[/]", Desc: "abas"})
		if c.OverlayOpen {
			b = append(b, KeyBinding{Key: "esc", Desc: "fechar"})
		} else {
			b = append(b, KeyBinding{Key: "tab", Desc: "chat"})
		}
		return append(b,
			KeyBinding{Key: "?", Desc: "ajuda"},
			KeyBinding{Key: "q", Desc: "sair"},
		)
	}

	if c.Sending {
		b = append(b, KeyBinding{Key: "…", Desc: "aguardando resposta"})
	} else {
		b = append(b, KeyBinding{Key: "enter", Desc: "enviar"})
	}
	b = append(b, KeyBinding{Key: "ctrl+o", Desc: "anexar PDF"})
	if c.HasAttachments {
		b = append(b, KeyBinding{Key: "ctrl+x", Desc: "remover anexo"})
	}
	if c.HasReply {
		b = append(b, KeyBinding{Key: "ctrl+y", Desc: "copiar resposta"})
	}
	if c.Compact {
		b = append(b, KeyBinding{Key: "ctrl+b", Desc: "matérias"})
	} else {
		b = append(b, KeyBinding{Key: "tab", Desc: "matérias"})
	}
	return append(b, KeyBinding{Key: "pgup/dn", Desc: "rolar"})
}

// View renders the footer
func (f *Footer) View() string {
	if f.flash != nil {
		return FooterStyle.Width(f.width).Render(f.renderFlash())
	}

	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	if f.width > InputPaddingWidth {
		content = ansi.Truncate(content, f.width-InputPaddingWidth, "…")
	}
	return FooterStyle.Width(f.width).Render(content)
}
