package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"weighttrend/internal/adapter/memory"
	"weighttrend/internal/adapter/postgres"
	"weighttrend/internal/adapter/sqlite"
	"weighttrend/internal/app"
	"weighttrend/internal/config"
	"weighttrend/internal/domain"
	"weighttrend/internal/logging"
)

var (
	flagBackend string
	flagDB      string
	flagUnit    string
)

var rootCmd = &cobra.Command{
	Use:          "weighttrend",
	Short:        "Track daily weight against a monthly target",
	Long:         "weighttrend keeps one weight and comment per day and shows each month as a grid of nine-box trend indicators.",
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: sqlite, postgres or memory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite file path or PostgreSQL URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagUnit, "unit", "", "Unit stored weights are expressed in: kg or lb (overrides config)")
}

// store is a DayRepository with a lifecycle.
type store interface {
	domain.DayRepository
	Close() error
}

// env bundles what every command needs.
type env struct {
	cfg   config.Config
	log   *slog.Logger
	store store
	svc   *app.MonthService
}

func (e *env) Close() error {
	return e.store.Close()
}

// setup loads config, applies flag overrides and opens the store. logOut
// receives log output; interactive commands pass a quieter writer.
func setup(logOut io.Writer) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagDB != "" {
		switch cfg.Storage.Backend {
		case config.BackendPostgres:
			cfg.Storage.DatabaseURL = flagDB
		default:
			cfg.Storage.SQLitePath = flagDB
		}
	}
	if flagUnit != "" {
		cfg.Display.Unit = flagUnit
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	logger, err := logging.New(logOut, level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	st, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("open store failed", "backend", cfg.Storage.Backend, "error", err)
		return nil, err
	}

	return &env{
		cfg:   cfg,
		log:   logger,
		store: st,
		svc:   app.NewMonthService(st, cfg.Display.Unit, logger),
	}, nil
}

func openStore(cfg config.Config, logger *slog.Logger) (store, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := postgres.Open(cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db open: %w", err)
		}
		return db, nil
	case config.BackendMemory:
		return memory.New(), nil
	default:
		db, err := sqlite.Open(cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("db open: %w", err)
		}
		return db, nil
	}
}

// parseMonthArg parses an optional YYYY-MM argument, defaulting to the
// current month.
func parseMonthArg(args []string) (domain.Month, error) {
	if len(args) == 0 || args[0] == "" {
		return domain.CurrentMonth(), nil
	}
	return domain.ParseMonth(args[0])
}
