package modals

import (
	"os"
	"testing"

	"github.com/teacherbob/teacherbob/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	// Initialize modal constants for tests
	ModalWidth = 60
	ModalWidthWide = 76
	ModalInputWidth = 40
	ModalInputCharLimit = 32

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
