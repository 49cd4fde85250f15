// Package main provides the CLI entrypoint for focuslock.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/focuslock/internal/config"
	"github.com/verte-zerg/focuslock/internal/logging"
	"github.com/verte-zerg/focuslock/internal/model"
	"github.com/verte-zerg/focuslock/internal/report"
	"github.com/verte-zerg/focuslock/internal/session"
	"github.com/verte-zerg/focuslock/internal/store"
	"github.com/verte-zerg/focuslock/internal/tui"
)

var (
	sessionLimit         int
	sessionGuardianEmail string
	sessionTickInterval  time.Duration
	sessionNoticeTTL     time.Duration
	sessionLight         bool
	sessionLogFile       string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "focuslock",
		Short:         "Screen-time lock with guardian OTP unlock",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSessionCmd,
	}

	rootCmd.Flags().IntVar(&sessionLimit, "limit", session.DefaultDailyLimit, "daily limit in minutes")
	rootCmd.Flags().StringVar(&sessionGuardianEmail, "guardian-email", session.DefaultGuardianEmail, "guardian email shown as the OTP destination")
	rootCmd.Flags().DurationVar(&sessionTickInterval, "tick-interval", session.DefaultTickInterval, "real time per simulated minute")
	rootCmd.Flags().DurationVar(&sessionNoticeTTL, "notice-ttl", session.DefaultNoticeTTL, "how long notices stay visible")
	rootCmd.Flags().BoolVar(&sessionLight, "light", false, "start with the light theme")
	rootCmd.Flags().StringVar(&sessionLogFile, "log-file", "", "write debug logs to this file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runSessionCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFileConfig(cmd, fileCfg.Session); err != nil {
		return err
	}

	cfg := model.Config{
		DailyLimit:    sessionLimit,
		GuardianEmail: sessionGuardianEmail,
		TickInterval:  sessionTickInterval,
		NoticeTTL:     sessionNoticeTTL,
		DarkMode:      !sessionLight,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, logCloser, err := logging.Open(sessionLogFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logCloser.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	st, err := store.Open(store.MemoryDSN)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctrl := session.New(cfg, session.WithLogger(logger))
	logger.Info("session started", "session", ctrl.ID(), "limit", cfg.DailyLimit, "tick", cfg.TickInterval.String())

	m := tui.NewModel(ctrl, st, cfg, logger)
	defer m.Close()
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print weekly usage and unlock history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(store.MemoryDSN)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return writeHistory(cmd.Context(), cmd.OutOrStdout(), st, report.TerminalWidth(os.Stdout))
}

func writeHistory(ctx context.Context, w io.Writer, st *store.Store, width int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	weekly, err := st.WeeklyUsage(ctx)
	if err != nil {
		return fmt.Errorf("failed to load weekly usage: %w", err)
	}
	history, err := st.UnlockHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to load unlock history: %w", err)
	}

	lines := []string{"Weekly Usage"}
	lines = append(lines, report.RenderBars(report.WeeklySeries(weekly, 0), width)...)
	lines = append(lines, "", fmt.Sprintf("Weekly Avg: %d min", report.WeeklyAverageMinutes), "", "Unlock History")
	lines = append(lines, report.FormatHistory(history)...)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyFileConfig(cmd *cobra.Command, fc config.SessionConfig) error {
	applyIntConfig(cmd, "limit", &sessionLimit, fc.DailyLimit)
	applyStringConfig(cmd, "guardian-email", &sessionGuardianEmail, fc.GuardianEmail)
	if err := applyDurationConfig(cmd, "tick-interval", &sessionTickInterval, fc.TickInterval); err != nil {
		return err
	}
	if err := applyDurationConfig(cmd, "notice-ttl", &sessionNoticeTTL, fc.NoticeTTL); err != nil {
		return err
	}
	if fc.DarkMode != nil && !cmd.Flags().Changed("light") {
		sessionLight = !*fc.DarkMode
	}
	applyStringConfig(cmd, "log-file", &sessionLogFile, fc.LogFile)
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *string) error {
	if value == nil {
		return nil
	}
	if cmd.Flags().Changed(name) {
		return nil
	}
	parsed, err := time.ParseDuration(*value)
	if err != nil {
		return fmt.Errorf("invalid %s in config: %w", name, err)
	}
	*target = parsed
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# focuslock configuration
# Uncomment a value to enable it. CLI flags override config values.

[session]
# daily-limit = %d              # Daily limit in minutes
# guardian-email = %q  # Shown as the OTP destination
# tick-interval = %q          # Real time per simulated minute
# notice-ttl = %q                # How long notices stay visible
# dark-mode = true               # Start with the dark theme
# log-file = %q
`,
		session.DefaultDailyLimit,
		session.DefaultGuardianEmail,
		session.DefaultTickInterval.String(),
		session.DefaultNoticeTTL.String(),
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.DailyLimit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	if strings.TrimSpace(cfg.GuardianEmail) == "" {
		return fmt.Errorf("--guardian-email must not be empty")
	}
	if cfg.TickInterval <= 0 {
		return fmt.Errorf("--tick-interval must be > 0")
	}
	if cfg.NoticeTTL <= 0 {
		return fmt.Errorf("--notice-ttl must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
