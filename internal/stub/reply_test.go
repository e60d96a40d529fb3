package stub

import (
	"strings"
	"testing"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		subject string
		topic   string
		want    string
	}{
		{"subject and topic", "Quem descobriu o Brasil?", "history", "Descobrimento", "Vou te ajudar com História sobre Descobrimento."},
		{"subject only", "Como somar?", "math", "", "Vou te ajudar com Matemática."},
		{"nothing", "Como somar?", "", "", "Vou te ajudar com esse assunto."},
		{"greeting", "Bom dia", "math", "", Introduction},
		{"who are you", "quem é você?", "", "", Introduction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.text, tt.subject, tt.topic)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Compose() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestIsGreeting(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"oi", true},
		{"Olá, Bob!", true},
		{"boa noite professor", true},
		{"oi, pode me explicar como funciona a fotossíntese nas plantas?", false},
		{"Explique frações", false},
		{"", false},
		{"noite", false},
	}
	for _, tt := range tests {
		if got := isGreeting(tt.text); got != tt.want {
			t.Errorf("isGreeting(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
