package notification

import (
	"errors"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{"successful notification", "Título", "Mensagem", nil, false},
		{"notification error", "Título", "Mensagem", errors.New("notification failed"), true},
		{"empty title", "", "Mensagem sem título", nil, false},
		{"unicode content", "Teacher Bob 🎓", "Resposta pronta ✨", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			call := mock.calls[0]
			if call.title != tt.title || call.message != tt.message {
				t.Errorf("got (%q, %q), want (%q, %q)", call.title, call.message, tt.title, tt.message)
			}
		})
	}
}

func TestReplyReady(t *testing.T) {
	tests := []struct {
		name            string
		subject         string
		expectedMessage string
	}{
		{"no subject", "", "Sua resposta está pronta!"},
		{"catalog subject", "science", "Sua resposta de Ciências está pronta!"},
		{"unknown subject", "robotics", "Sua resposta de robotics está pronta!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := ReplyReady(tt.subject); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != AppName {
				t.Errorf("title = %q", mock.calls[0].title)
			}
			if mock.calls[0].message != tt.expectedMessage {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.expectedMessage)
			}
		})
	}
}
