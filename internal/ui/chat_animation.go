package ui

import (
	"fmt"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// TypingTickMsg advances the typing indicator.
type TypingTickMsg time.Time

// typingTickInterval is the frame time of the typing indicator.
const typingTickInterval = 120 * time.Millisecond

// typingVerbs cycle while Teacher Bob prepares an answer
var typingVerbs = []string{
	"Pensando",
	"Consultando os livros",
	"Preparando a explicação",
	"Organizando as ideias",
	"Procurando um bom exemplo",
	"Fazendo as contas",
	"Revisando a matéria",
	"Escrevendo no quadro",
}

// typingFrames are the spinner characters
var typingFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// verbHoldFrames is how many frames a verb stays before the next one.
const verbHoldFrames = 25

// typingIndicator is the animated "Teacher Bob está digitando" line.
type typingIndicator struct {
	active  bool
	frame   int
	verbIdx int
	started time.Time
}

func (t *typingIndicator) start(now time.Time) {
	t.active = true
	t.frame = 0
	t.verbIdx = rand.IntN(len(typingVerbs))
	t.started = now
}

func (t *typingIndicator) stop() {
	t.active = false
}

// advance moves to the next frame and rotates the verb every verbHoldFrames.
func (t *typingIndicator) advance() {
	t.frame++
	if t.frame%verbHoldFrames == 0 {
		t.verbIdx = (t.verbIdx + 1) % len(typingVerbs)
	}
}

func (t *typingIndicator) verb() string {
	return typingVerbs[t.verbIdx%len(typingVerbs)]
}

// render draws the spinner, the verb and the time waited so far.
func (t *typingIndicator) render(now time.Time) string {
	frame := typingFrames[t.frame%len(typingFrames)]
	spinner := lipgloss.NewStyle().Foreground(ColorAssistant).Bold(true).Render(frame)
	elapsed := ChatTimestampStyle.Render(formatElapsed(now.Sub(t.started)))
	return spinner + " " + ChatTypingStyle.Render(t.verb()+"...") + " " + elapsed
}

// TypingTick schedules the next typing indicator frame.
func TypingTick() tea.Cmd {
	return tea.Tick(typingTickInterval, func(t time.Time) tea.Msg {
		return TypingTickMsg(t)
	})
}

// formatElapsed formats a duration as a stopwatch string (e.g., "1.2s", "1:23")
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
