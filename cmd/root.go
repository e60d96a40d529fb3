package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/teacherbob/teacherbob/internal/app"
	"github.com/teacherbob/teacherbob/internal/clipboard"
	"github.com/teacherbob/teacherbob/internal/config"
	"github.com/teacherbob/teacherbob/internal/logger"
)

var (
	clearLog              bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "teacherbob",
	Short: "Terminal study assistant for elementary school students",
	Long: `Teacher Bob is a terminal study assistant. Pick a subject and a topic from
the sidebar, keep your weekly class schedule, and ask questions in Portuguese.
Questions are sent to a Teacher Bob answer service (see "teacherbob stub" for a
local stand-in).`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("endpoint", config.DefaultEndpoint, "Answer service URL")
	flags.Duration("timeout", 0, "Give up on a question after this long (0 = wait forever)")
	flags.String("theme", config.DefaultTheme, "Color theme")
	flags.Bool("notify", false, "Send a desktop notification when a reply arrives")
	flags.String("log-file", config.DefaultLogFile, "Debug log location")
	flags.Bool("debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&clearLog, "clear-log", false, "Remove the debug log file and exit")
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("teacherbob %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("teacherbob %s\n", version)
}

// loadConfig reads the configuration with the command's flags on top and
// points the logger at the configured file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(config.Options{Flags: cmd.Flags()})
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := logger.Init(cfg.LogFile); err != nil {
		return nil, err
	}
	logger.SetDebug(cfg.Debug)
	return cfg, nil
}

// runClearLog removes the configured log file. It runs before the logger opens it.
func runClearLog(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{Flags: cmd.Flags()})
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	removed, err := logger.ClearLog(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("error removing log file: %w", err)
	}
	if removed {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", cfg.LogFile)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "No log file at %s\n", cfg.LogFile)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if clearLog {
		return runClearLog(cmd)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Ensure logger is closed on exit
	defer logger.Close()

	log := logger.WithComponent("main")
	log.Info("starting", "version", version, "endpoint", cfg.Endpoint,
		"timeout", cfg.RequestTimeout.Round(time.Millisecond))

	if err := clipboard.Init(); err != nil {
		// Copying is optional; everything else still works
		log.Warn("clipboard unavailable", "error", err)
	}

	p := tea.NewProgram(app.New(cfg, version))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w (details in %s)", err, logger.Path())
	}
	return nil
}
