package stub

import (
	"fmt"
	"slices"
	"strings"

	"github.com/teacherbob/teacherbob/internal/catalog"
)

var greetings = []string{"olá", "ola", "oi", "bom dia", "boa tarde", "boa noite", "quem é você"}

// Introduction answers greetings.
const Introduction = "Olá! Eu sou o Professor Bob, seu professor virtual. " +
	"Estou aqui para te ajudar a entender o conteúdo das suas apostilas. " +
	"Qual dúvida sobre os estudos você quer tirar hoje?"

// Compose builds the canned reply for a question. subject is a catalog subject
// id; unknown ids are used as given.
func Compose(text, subject, topic string) string {
	if isGreeting(text) {
		return Introduction
	}

	about := "esse assunto"
	if subject != "" {
		about = catalog.SubjectName(subject)
	}
	if topic != "" {
		about += " sobre " + topic
	}
	return fmt.Sprintf("Ótima pergunta! Vou te ajudar com %s.\n\n"+
		"Aqui está uma explicação simples e fácil de entender...", about)
}

// isGreeting matches short messages (five words or fewer) that contain a
// greeting.
func isGreeting(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = strings.Trim(normalized, "!?.,")
	words := strings.Fields(normalized)
	if len(words) == 0 || len(words) > 5 {
		return false
	}
	for _, g := range greetings {
		if strings.Contains(g, " ") {
			if strings.Contains(normalized, g) {
				return true
			}
			continue
		}
		if slices.ContainsFunc(words, func(w string) bool { return strings.Trim(w, "!?.,") == g }) {
			return true
		}
	}
	return false
}
