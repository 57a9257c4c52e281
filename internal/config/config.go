// Package config loads weighttrend settings from defaults, an optional TOML
// file, a .env file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"weighttrend/internal/domain"
	"weighttrend/internal/logging"
)

// Storage backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds all weighttrend configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StorageConfig selects and locates the day store.
type StorageConfig struct {
	Backend     string `toml:"backend"`
	SQLitePath  string `toml:"sqlite_path"`
	DatabaseURL string `toml:"database_url,omitempty"`
}

// DisplayConfig holds presentation preferences.
type DisplayConfig struct {
	// Unit is the unit stored weights are expressed in.
	Unit string `toml:"unit"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		Storage: StorageConfig{Backend: BackendSQLite, SQLitePath: filepath.Join(DataDir(), "weighttrend.db")},
		Display: DisplayConfig{Unit: domain.UnitLb},
		Log:     LogConfig{Level: "info", Format: logging.FormatText},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "weighttrend")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "weighttrend")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "weighttrend")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "weighttrend")
}

// Path returns the config file path, honouring WEIGHTTREND_CONFIG.
func Path() string {
	if p := os.Getenv("WEIGHTTREND_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file (if any), then .env (if any), then applies
// environment overrides.
func Load() (Config, error) {
	cfg := Default()

	if err := loadFile(Path(), &cfg); err != nil {
		return cfg, err
	}

	// A missing .env is normal; only malformed ones are reported.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("reading .env: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.Server.Addr, "WEIGHTTREND_ADDR")
	setFromEnv(&cfg.Storage.Backend, "WEIGHTTREND_BACKEND")
	setFromEnv(&cfg.Storage.SQLitePath, "WEIGHTTREND_SQLITE_PATH")
	setFromEnv(&cfg.Storage.DatabaseURL, "DATABASE_URL")
	setFromEnv(&cfg.Display.Unit, "WEIGHTTREND_UNIT")
	setFromEnv(&cfg.Log.Level, "WEIGHTTREND_LOG_LEVEL")
	setFromEnv(&cfg.Log.Format, "WEIGHTTREND_LOG_FORMAT")
}

func setFromEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var problems []string

	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			problems = append(problems, "sqlite_path cannot be empty when using the sqlite backend")
		}
	case BackendPostgres:
		if c.Storage.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required when using the postgres backend")
		}
	case BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("invalid backend %q: must be one of %s, %s, %s",
			c.Storage.Backend, BackendSQLite, BackendPostgres, BackendMemory))
	}

	if err := domain.ValidUnit(c.Display.Unit); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	if f := strings.ToLower(c.Log.Format); f != logging.FormatText && f != logging.FormatJSON {
		problems = append(problems, fmt.Sprintf("invalid log format %q", c.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
