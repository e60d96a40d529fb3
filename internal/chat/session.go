// Package chat holds the conversation state: the message history, the files
// waiting to be sent with the next message, and whether a question is in flight.
//
// A Session is owned by the Bubble Tea model and is not safe for concurrent use.
// The network call itself happens elsewhere; the session only produces the
// outgoing question and records the outcome.
package chat

import (
	"strings"
	"time"

	"github.com/teacherbob/teacherbob/internal/answer"
	"github.com/teacherbob/teacherbob/internal/logger"
	"github.com/teacherbob/teacherbob/internal/selection"
)

// State is the request lifecycle state.
type State int

const (
	StateIdle State = iota
	StateSending
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSending:
		return "Sending"
	default:
		return "Unknown"
	}
}

// Session is a single conversation.
type Session struct {
	messages []Message
	pending  []Attachment
	state    State

	// now is replaced in tests.
	now func() time.Time
}

// NewSession starts a conversation with the greeting message.
func NewSession() *Session {
	s := &Session{now: time.Now}
	s.messages = append(s.messages, Message{
		ID:        newID(),
		Role:      RoleAssistant,
		Content:   Greeting,
		Timestamp: s.now(),
	})
	return s
}

// Messages returns the conversation in append order.
func (s *Session) Messages() []Message {
	return append([]Message(nil), s.messages...)
}

// Pending returns the attachments waiting for the next message.
func (s *Session) Pending() []Attachment {
	return append([]Attachment(nil), s.pending...)
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// IsSending reports whether a question is awaiting its reply.
func (s *Session) IsSending() bool {
	return s.state == StateSending
}

// Compose turns the typed text and the pending attachments into a user message
// and returns the question to send. It returns false, changing nothing, when
// there is nothing to send or a question is already in flight.
//
// The text is stored and sent as typed. Attachments appear on the message but
// are not part of the question.
func (s *Session) Compose(text string, sel selection.Selection) (answer.Question, bool) {
	if s.state == StateSending {
		logger.WithComponent("chat").Debug("compose ignored while sending")
		return answer.Question{}, false
	}
	if strings.TrimSpace(text) == "" && len(s.pending) == 0 {
		return answer.Question{}, false
	}

	s.messages = append(s.messages, Message{
		ID:        newID(),
		Role:      RoleUser,
		Content:   text,
		Files:     s.pending,
		Subject:   sel.Subject,
		Topic:     sel.Topic,
		Timestamp: s.now(),
	})
	s.pending = nil
	s.state = StateSending

	return answer.NewQuestion(text, sel.Subject, sel.Topic), true
}

// Succeed records the assistant's reply and returns to Idle.
func (s *Session) Succeed(reply string) {
	s.finish(reply)
}

// Fail records the fixed fallback message and returns to Idle. The error itself
// is only logged.
func (s *Session) Fail(err error) {
	logger.WithComponent("chat").Error("question failed", "error", err)
	s.finish(Fallback)
}

func (s *Session) finish(content string) {
	if s.state != StateSending {
		logger.WithComponent("chat").Warn("reply arrived while idle, dropping")
		return
	}
	s.messages = append(s.messages, Message{
		ID:        newID(),
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: s.now(),
	})
	s.state = StateIdle
}

// Attach adds path to the pending attachments if it is a PDF. Other files are
// ignored. It reports whether the file was added; an error means the file
// could not be inspected.
func (s *Session) Attach(path string) (bool, error) {
	att, ok, err := InspectPDF(path)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.WithComponent("chat").Debug("ignoring non-PDF attachment", "path", path)
		return false, nil
	}
	s.pending = append(s.pending, att)
	return true, nil
}

// RemoveAttachment drops the pending attachment at index i. Out of range
// indexes are ignored.
func (s *Session) RemoveAttachment(i int) {
	if i < 0 || i >= len(s.pending) {
		return
	}
	s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
}

// LastReply returns the content of the most recent assistant message.
func (s *Session) LastReply() (string, bool) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == RoleAssistant {
			return s.messages[i].Content, true
		}
	}
	return "", false
}
