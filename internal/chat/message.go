package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Label is the name shown above a message.
func (r Role) Label() string {
	if r == RoleAssistant {
		return "Teacher Bob"
	}
	return "Você"
}

// Attachment is a file the student attached to a message. Only its metadata is
// kept; the file itself is never read beyond type detection.
type Attachment struct {
	Name string
	Path string
	Size int64
}

// Message is one entry of the conversation.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Files     []Attachment
	Subject   string
	Topic     string
	Timestamp time.Time
}

// Greeting is the first assistant message of every session.
const Greeting = "Oi! Eu sou o Teacher Bob! 🎓 Estou aqui para te ajudar com seus estudos. " +
	"Escolha uma matéria na barra lateral e me faça qualquer pergunta sobre o que você está aprendendo na escola!"

// Fallback replaces the reply whenever the answer service cannot be reached or
// answers with an error.
const Fallback = "Desculpe, não consegui me conectar com meu cérebro agora. 🧠 " +
	"Verifique se o servidor está rodando e tente novamente."

// newID returns a time-ordered message id.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
