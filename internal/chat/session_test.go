package chat

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/teacherbob/teacherbob/internal/selection"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func writePDF(t *testing.T, name string) string {
	return writeFile(t, name, "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")
}

func fixedSession() *Session {
	s := NewSession()
	s.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestNewSession_Greeting(t *testing.T) {
	s := NewSession()
	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Role != RoleAssistant || msgs[0].Content != Greeting {
		t.Errorf("unexpected greeting: %+v", msgs[0])
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want Idle", s.State())
	}
}

func TestCompose(t *testing.T) {
	s := fixedSession()
	sel := selection.Selection{}.SelectSubject("math").SelectTopic("Frações")

	q, ok := s.Compose("  O que é 1/2?  ", sel)
	if !ok {
		t.Fatal("expected a question")
	}
	if q.Text != "  O que é 1/2?  " {
		t.Errorf("text should be sent as typed, got %q", q.Text)
	}
	if q.Subject == nil || *q.Subject != "math" || q.Topic == nil || *q.Topic != "Frações" {
		t.Errorf("unexpected question: %+v", q)
	}

	msgs := s.Messages()
	last := msgs[len(msgs)-1]
	if last.Role != RoleUser || last.Subject != "math" || last.Topic != "Frações" {
		t.Errorf("unexpected user message: %+v", last)
	}
	if !s.IsSending() {
		t.Error("expected Sending after Compose")
	}
}

func TestCompose_NothingToSend(t *testing.T) {
	tests := []string{"", "   ", "\n\t"}
	for _, text := range tests {
		s := fixedSession()
		if _, ok := s.Compose(text, selection.Selection{}); ok {
			t.Errorf("Compose(%q) should be a no-op", text)
		}
		if len(s.Messages()) != 1 || s.IsSending() {
			t.Errorf("Compose(%q) changed the session", text)
		}
	}
}

func TestCompose_AttachmentOnly(t *testing.T) {
	s := fixedSession()
	if ok, err := s.Attach(writePDF(t, "apostila.pdf")); !ok || err != nil {
		t.Fatalf("Attach = %v, %v", ok, err)
	}

	q, ok := s.Compose("", selection.Selection{})
	if !ok {
		t.Fatal("attachment alone should be sendable")
	}
	if q.Text != "" || q.Subject != nil || q.Topic != nil {
		t.Errorf("unexpected question: %+v", q)
	}

	msgs := s.Messages()
	last := msgs[len(msgs)-1]
	if len(last.Files) != 1 || last.Files[0].Name != "apostila.pdf" {
		t.Errorf("files = %+v", last.Files)
	}
	if len(s.Pending()) != 0 {
		t.Error("pending attachments should be cleared")
	}
}

func TestCompose_WhileSending(t *testing.T) {
	s := fixedSession()
	if _, ok := s.Compose("primeira", selection.Selection{}); !ok {
		t.Fatal("first compose failed")
	}
	if _, ok := s.Compose("segunda", selection.Selection{}); ok {
		t.Error("second compose while sending should be a no-op")
	}
	if n := len(s.Messages()); n != 2 {
		t.Errorf("messages = %d, want 2", n)
	}
}

func TestSucceed(t *testing.T) {
	s := fixedSession()
	s.Compose("oi", selection.Selection{})
	s.Succeed("Olá! Em que posso ajudar?")

	if s.IsSending() {
		t.Error("expected Idle after Succeed")
	}
	reply, ok := s.LastReply()
	if !ok || reply != "Olá! Em que posso ajudar?" {
		t.Errorf("LastReply = %q, %v", reply, ok)
	}
}

func TestFail_UsesFallback(t *testing.T) {
	s := fixedSession()
	s.Compose("oi", selection.Selection{})
	s.Fail(errors.New("connection refused"))

	reply, _ := s.LastReply()
	if reply != Fallback {
		t.Errorf("reply = %q, want fallback", reply)
	}
	if s.IsSending() {
		t.Error("expected Idle after Fail")
	}
}

func TestFinish_WhileIdleIsDropped(t *testing.T) {
	s := fixedSession()
	s.Succeed("stray")
	if len(s.Messages()) != 1 {
		t.Error("reply without a question should be dropped")
	}
}

func TestRepliesFollowSendOrder(t *testing.T) {
	s := fixedSession()
	s.Compose("q1", selection.Selection{})
	s.Succeed("a1")
	s.Compose("q2", selection.Selection{})
	s.Fail(errors.New("down"))

	var got []string
	for _, m := range s.Messages()[1:] {
		got = append(got, m.Content)
	}
	want := []string{"q1", "a1", "q2", Fallback}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMessageIDsUnique(t *testing.T) {
	s := fixedSession()
	for i := 0; i < 20; i++ {
		s.Compose("q", selection.Selection{})
		s.Succeed("a")
	}
	seen := make(map[string]bool)
	for _, m := range s.Messages() {
		if seen[m.ID] {
			t.Fatalf("duplicate id %s", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestAttach(t *testing.T) {
	tests := []struct {
		name   string
		path   func(t *testing.T) string
		wantOK bool
	}{
		{"pdf", func(t *testing.T) string { return writePDF(t, "a.pdf") }, true},
		{"pdf without extension", func(t *testing.T) string { return writePDF(t, "apostila") }, true},
		{"text with pdf extension", func(t *testing.T) string { return writeFile(t, "fake.pdf", "just text") }, false},
		{"text file", func(t *testing.T) string { return writeFile(t, "notes.txt", "hello") }, false},
		{"directory", func(t *testing.T) string { return t.TempDir() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fixedSession()
			ok, err := s.Attach(tt.path(t))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("Attach = %v, want %v", ok, tt.wantOK)
			}
			if got := len(s.Pending()); (got == 1) != tt.wantOK {
				t.Errorf("pending = %d", got)
			}
		})
	}
}

func TestAttach_Missing(t *testing.T) {
	s := fixedSession()
	ok, err := s.Attach(filepath.Join(t.TempDir(), "nope.pdf"))
	if ok || err == nil {
		t.Errorf("Attach = %v, %v; want false with error", ok, err)
	}
}

func TestAttach_RecordsSize(t *testing.T) {
	path := writePDF(t, "a.pdf")
	info, _ := os.Stat(path)

	s := fixedSession()
	s.Attach(path)
	if got := s.Pending()[0].Size; got != info.Size() {
		t.Errorf("Size = %d, want %d", got, info.Size())
	}
}

func TestRemoveAttachment(t *testing.T) {
	s := fixedSession()
	s.Attach(writePDF(t, "a.pdf"))
	s.Attach(writePDF(t, "b.pdf"))
	s.Attach(writePDF(t, "c.pdf"))

	s.RemoveAttachment(-1)
	s.RemoveAttachment(3)
	if len(s.Pending()) != 3 {
		t.Fatal("out of range removal should be a no-op")
	}

	s.RemoveAttachment(1)
	p := s.Pending()
	if len(p) != 2 || p[0].Name != "a.pdf" || p[1].Name != "c.pdf" {
		t.Errorf("pending = %+v", p)
	}
}

func TestRoleLabel(t *testing.T) {
	if RoleAssistant.Label() != "Teacher Bob" || RoleUser.Label() != "Você" {
		t.Error("unexpected role labels")
	}
}
