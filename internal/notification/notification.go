// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/teacherbob/teacherbob/internal/catalog"
	"github.com/teacherbob/teacherbob/internal/logger"
)

// AppName is the notification title.
const AppName = "Teacher Bob"

var (
	mu       sync.Mutex
	notifier = beeep.Notify
)

// SetNotifier replaces the function used to deliver notifications (for testing).
func SetNotifier(fn func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()
	notifier = fn
}

// ResetNotifier restores beeep as the notifier.
func ResetNotifier() {
	mu.Lock()
	defer mu.Unlock()
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	mu.Lock()
	notify := notifier
	mu.Unlock()

	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Use empty string for icon - beeep handles platform defaults
	err := notify(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// ReplyReady tells the student that Teacher Bob has answered. subject is a
// catalog subject id and may be empty.
func ReplyReady(subject string) error {
	if subject == "" {
		return Send(AppName, "Sua resposta está pronta!")
	}
	return Send(AppName, "Sua resposta de "+catalog.SubjectName(subject)+" está pronta!")
}
