package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weighttrend/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if _, err := os.Stat(config.Path()); err == nil {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Backend:     %s\n", cfg.Storage.Backend)
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		fmt.Fprintf(out, "  SQLite path: %s\n", cfg.Storage.SQLitePath)
	case config.BackendPostgres:
		if cfg.Storage.DatabaseURL != "" {
			fmt.Fprintln(out, "  Database:    configured")
		} else {
			fmt.Fprintln(out, "  Database:    not configured")
		}
	}
	fmt.Fprintf(out, "  Unit:        %s\n", cfg.Display.Unit)
	fmt.Fprintf(out, "  Listen addr: %s\n", cfg.Server.Addr)
	fmt.Fprintf(out, "  Log:         %s (%s)\n", cfg.Log.Level, cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "\n  %v\n", err)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := config.Path()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s\n", path)
	return nil
}
