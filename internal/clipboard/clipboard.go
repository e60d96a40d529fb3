// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/teacherbob/teacherbob/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
	// writer is swapped out in tests so they never touch the real clipboard.
	writer = systemWrite
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := clipboard.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	logger.WithComponent("clipboard").Debug("initialized")
	return nil
}

func systemWrite(text string) error {
	if err := initLocked(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := writer(text); err != nil {
		return err
	}
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// SetWriter replaces the function used to write text (for testing).
func SetWriter(fn func(string) error) {
	mu.Lock()
	defer mu.Unlock()
	writer = fn
}

// ResetWriter restores the system clipboard writer.
func ResetWriter() {
	mu.Lock()
	defer mu.Unlock()
	writer = systemWrite
}
