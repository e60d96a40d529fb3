package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teacherbob/teacherbob/internal/logger"
	"github.com/teacherbob/teacherbob/internal/stub"
)

// shutdownTimeout bounds how long in-flight requests get after a signal.
const shutdownTimeout = 5 * time.Second

var (
	stubAddr   string
	stubWarmup time.Duration
	stubDelay  time.Duration
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a local answer service with canned replies",
	Long: `Serves POST /perguntar with canned replies so the TUI can be tried without
the real answer service.

Examples:
  teacherbob stub                        # Listen on :8000
  teacherbob stub --addr :9000           # Listen elsewhere
  teacherbob stub --warmup 10s           # Answer 503 for the first 10 seconds
  teacherbob stub --delay 2s             # Hold every reply for 2 seconds`,
	RunE: runStub,
}

func init() {
	stubCmd.Flags().StringVar(&stubAddr, "addr", ":8000", "Listen address")
	stubCmd.Flags().DurationVar(&stubWarmup, "warmup", 0, "Answer 503 for this long after starting")
	stubCmd.Flags().DurationVar(&stubDelay, "delay", 0, "Hold every reply for this long")
	rootCmd.AddCommand(stubCmd)
}

func runStub(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	defer logger.Close()

	srv := stub.NewServer(stubAddr, stub.WithWarmup(stubWarmup), stub.WithDelay(stubDelay))

	// Set up signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	fmt.Fprintf(cmd.OutOrStdout(), "Teacher Bob stub listening on %s (log: %s)\n", stubAddr, logger.Path())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.WithComponent("stub").Info("received signal, shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error stopping stub: %v\n", err)
		return err
	}
	return <-errCh
}
