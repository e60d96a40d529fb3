package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// FlashType selects the icon and color of a footer flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays in the footer.
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often expiry is checked while a flash is shown.
const flashTickInterval = 500 * time.Millisecond

// FlashMessage is a transient notice that replaces the footer shortcuts.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

func (t FlashType) icon() string {
	switch t {
	case FlashSuccess:
		return "✓"
	case FlashWarning:
		return "⚠"
	case FlashError:
		return "✕"
	default:
		return "ℹ"
	}
}

// FlashTickMsg drives flash expiry.
type FlashTickMsg struct{}

// FlashTick schedules the next expiry check.
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(time.Time) tea.Msg {
		return FlashTickMsg{}
	})
}

// SetFlash shows a message for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for the given duration.
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flash = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// HasFlash reports whether a flash message is showing.
func (f *Footer) HasFlash() bool {
	return f.flash != nil
}

// ClearFlash removes the flash message.
func (f *Footer) ClearFlash() {
	f.flash = nil
}

// ClearIfExpired removes an expired flash and reports whether it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flash != nil && f.flash.IsExpired() {
		f.flash = nil
		return true
	}
	return false
}

func (f *Footer) renderFlash() string {
	style := FooterDescStyle
	switch f.flash.Type {
	case FlashSuccess:
		style = StatusSuccessStyle
	case FlashWarning:
		style = FooterDescStyle.Foreground(ColorWarning)
	case FlashError:
		style = StatusErrorStyle
	}
	return style.Render(f.flash.Type.icon() + " " + f.flash.Text)
}
