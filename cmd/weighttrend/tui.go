package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"weighttrend/internal/adapter/tui"
	"weighttrend/internal/config"
	"weighttrend/internal/domain"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive month grid (default command)",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Logs would tear the alt screen, so they go to a file.
	logPath := filepath.Join(config.DataDir(), "weighttrend.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	e, err := setup(logFile)
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	p := tea.NewProgram(tui.New(e.svc, domain.Today()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
