package app

import (
	"context"
	"testing"

	"github.com/teacherbob/teacherbob/internal/chat"
	"github.com/teacherbob/teacherbob/internal/errors"
	"github.com/teacherbob/teacherbob/internal/keys"
)

func TestAnswerFailure_FlashByKind(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		flash bool
	}{
		{"timeout", errors.AnswerTimeout("http://x/perguntar", context.DeadlineExceeded), true},
		{"unreachable", errors.AnswerRequestFailed("http://x/perguntar", context.Canceled), false},
		{"service", errors.AnswerStatus(503, "ocupado"), false},
		{"decode", errors.AnswerDecodeFailed(context.Canceled), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(t, &fakeAsker{}, 120, 40)
			m.Update(keyPress(keys.Tab))
			typeText(m, "oi")
			m.Update(keyPress(keys.Enter))

			_, cmd := m.Update(AnswerMsg{Err: tt.err})

			if reply, _ := m.Session().LastReply(); reply != chat.Fallback {
				t.Errorf("last reply = %q, want the fallback", reply)
			}
			if got := m.footer.HasFlash(); got != tt.flash {
				t.Errorf("flash shown = %v, want %v", got, tt.flash)
			}
			if (cmd != nil) != tt.flash {
				t.Errorf("cmd = %v, want a flash tick only with a flash", cmd)
			}
		})
	}
}
