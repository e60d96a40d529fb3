package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

func TestHeader_View(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		subject string
		topic   string
		want    []string
		notWant []string
	}{
		{"no selection", 80, "", "", []string{"Teacher Bob"}, []string{"›"}},
		{"subject only", 80, "Matemática", "", []string{"Teacher Bob", "Matemática"}, []string{"›"}},
		{"subject and topic", 80, "Matemática", "Frações", []string{"Matemática › Frações"}, nil},
		{"too narrow for breadcrumb", 20, "Língua Portuguesa", "Interpretação de Texto", []string{"Teacher Bob"}, []string{"Língua"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeader()
			h.SetWidth(tt.width)
			h.SetSelection(tt.subject, tt.topic)

			view := ansi.Strip(h.View())
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("header %q missing %q", view, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(view, w) {
					t.Errorf("header %q should not contain %q", view, w)
				}
			}
		})
	}
}

func TestHeader_View_FillsWidth(t *testing.T) {
	h := NewHeader()
	h.SetWidth(100)
	h.SetSelection("Ciências", "Células")

	view := ansi.Strip(h.View())
	if got := uniseg.StringWidth(view); got != 100 {
		t.Errorf("header width = %d, want 100", got)
	}
	if !strings.HasSuffix(view, "Ciências › Células ") {
		t.Errorf("breadcrumb should be right aligned, got %q", view)
	}
}

func TestHeader_View_Empty(t *testing.T) {
	h := NewHeader()
	if ansi.Strip(h.View()) != HeaderTitle {
		t.Errorf("zero-width header should still render the title")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#2563EB", 0x25, 0x63, 0xEB},
		{"#000000", 0, 0, 0},
		{"#FFFFFF", 255, 255, 255},
		{"invalid", 0, 0, 0},
		{"#FFF", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = (%d, %d, %d), want (%d, %d, %d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestHeader_ThemeChange(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme) })

	h := NewHeader()
	h.SetWidth(60)
	for _, name := range ThemeNames() {
		SetTheme(name)
		if !strings.Contains(ansi.Strip(h.View()), "Teacher Bob") {
			t.Errorf("theme %s: header lost its title", name)
		}
	}
}
