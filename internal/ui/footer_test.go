package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func bindingKeys(f *Footer) []string {
	var keys []string
	for _, b := range f.Bindings() {
		keys = append(keys, b.Key)
	}
	return keys
}

func hasKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func TestFooter_Bindings(t *testing.T) {
	tests := []struct {
		name    string
		ctx     FooterContext
		want    []string
		notWant []string
	}{
		{
			name:    "sidebar subjects tab",
			ctx:     FooterContext{SidebarFocused: true},
			want:    []string{"enter", "[/]", "tab", "q"},
			notWant: []string{"e", "ctrl+o"},
		},
		{
			name:    "sidebar schedule tab",
			ctx:     FooterContext{SidebarFocused: true, ScheduleTab: true},
			want:    []string{"e"},
			notWant: []string{"enter"},
		},
		{
			name:    "overlay open",
			ctx:     FooterContext{SidebarFocused: true, Compact: true, OverlayOpen: true},
			want:    []string{"esc"},
			notWant: []string{"tab"},
		},
		{
			name:    "chat idle",
			ctx:     FooterContext{},
			want:    []string{"enter", "ctrl+o", "tab"},
			notWant: []string{"ctrl+x", "ctrl+y", "q"},
		},
		{
			name:    "chat sending",
			ctx:     FooterContext{Sending: true},
			want:    []string{"…"},
			notWant: []string{"enter"},
		},
		{
			name: "chat with attachments and reply",
			ctx:  FooterContext{HasAttachments: true, HasReply: true},
			want: []string{"ctrl+x", "ctrl+y"},
		},
		{
			name:    "chat compact",
			ctx:     FooterContext{Compact: true},
			want:    []string{"ctrl+b"},
			notWant: []string{"tab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFooter()
			f.SetContext(tt.ctx)
			keys := bindingKeys(f)
			for _, k := range tt.want {
				if !hasKey(keys, k) {
					t.Errorf("bindings %v missing %q", keys, k)
				}
			}
			for _, k := range tt.notWant {
				if hasKey(keys, k) {
					t.Errorf("bindings %v should not include %q", keys, k)
				}
			}
		})
	}
}

func TestFooter_View(t *testing.T) {
	f := NewFooter()
	f.SetWidth(200)
	f.SetContext(FooterContext{SidebarFocused: true})

	view := ansi.Strip(f.View())
	if !strings.Contains(view, "enter: selecionar") {
		t.Errorf("footer should render bindings, got %q", view)
	}
	if !strings.Contains(view, "|") {
		t.Error("bindings should be separated")
	}
}

func TestFooter_View_Truncates(t *testing.T) {
	f := NewFooter()
	f.SetWidth(30)

	for _, line := range strings.Split(ansi.Strip(f.View()), "\n") {
		if w := ansi.StringWidth(line); w > 30 {
			t.Errorf("footer line width %d exceeds 30", w)
		}
	}
}

func TestFooter_Flash(t *testing.T) {
	f := NewFooter()
	f.SetWidth(80)

	if f.HasFlash() {
		t.Fatal("no flash expected initially")
	}

	f.SetFlash("Resposta copiada", FlashSuccess)
	if !f.HasFlash() {
		t.Fatal("flash should be set")
	}
	if f.flash.Duration != DefaultFlashDuration {
		t.Errorf("Duration = %v, want %v", f.flash.Duration, DefaultFlashDuration)
	}

	view := ansi.Strip(f.View())
	if !strings.Contains(view, "✓ Resposta copiada") {
		t.Errorf("flash not rendered: %q", view)
	}
	if strings.Contains(view, "enviar") {
		t.Error("flash should replace the bindings")
	}

	f.ClearFlash()
	if f.HasFlash() {
		t.Error("ClearFlash should remove the flash")
	}
}

func TestFooter_FlashIcons(t *testing.T) {
	tests := []struct {
		flashType FlashType
		icon      string
	}{
		{FlashError, "✕"},
		{FlashWarning, "⚠"},
		{FlashInfo, "ℹ"},
		{FlashSuccess, "✓"},
	}

	for _, tt := range tests {
		f := NewFooter()
		f.SetWidth(80)
		f.SetFlash("msg", tt.flashType)
		if !strings.Contains(f.View(), tt.icon) {
			t.Errorf("flash type %d should render %q", tt.flashType, tt.icon)
		}
	}
}

func TestFooter_ClearIfExpired(t *testing.T) {
	f := NewFooter()

	f.SetFlash("fresh", FlashInfo)
	if f.ClearIfExpired() {
		t.Error("fresh flash should not be cleared")
	}

	f.flash = &FlashMessage{
		Text:      "old",
		CreatedAt: time.Now().Add(-10 * time.Second),
		Duration:  5 * time.Second,
	}
	if !f.ClearIfExpired() {
		t.Error("expired flash should be cleared")
	}
	if f.HasFlash() {
		t.Error("flash should be gone")
	}
}
