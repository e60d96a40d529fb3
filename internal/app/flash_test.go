package app

import (
	"testing"
	"time"

	"github.com/teacherbob/teacherbob/internal/ui"
)

func TestShowFlash(t *testing.T) {
	m := testModelWithSize(t, &fakeAsker{}, 120, 40)

	for _, show := range []func(string){
		func(s string) { m.ShowFlashInfo(s) },
		func(s string) { m.ShowFlashSuccess(s) },
		func(s string) { m.ShowFlashWarning(s) },
		func(s string) { m.ShowFlashError(s) },
	} {
		m.footer.ClearFlash()
		show("mensagem")
		if !m.footer.HasFlash() {
			t.Error("flash helper should set a footer flash")
		}
	}
}

func TestHandleFlashTick(t *testing.T) {
	m := testModelWithSize(t, &fakeAsker{}, 120, 40)

	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd != nil {
		t.Error("no flash, no further ticks")
	}

	if cmd := m.ShowFlashInfo("oi"); cmd == nil {
		t.Fatal("ShowFlash should start the expiry ticks")
	}
	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd == nil {
		t.Error("a fresh flash should keep ticking")
	}

	m.footer.SetFlashWithDuration("oi", ui.FlashInfo, time.Nanosecond)
	time.Sleep(time.Millisecond)
	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd != nil {
		t.Error("an expired flash stops the ticks")
	}
	if m.footer.HasFlash() {
		t.Error("an expired flash should be cleared")
	}
}
