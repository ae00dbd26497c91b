package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers understood by StorageConfig.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	// Driver is one of "sqlite", "memory" or "postgres".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Path is the SQLite database file.
	Path string `mapstructure:"path" yaml:"path"`

	// DSN is the PostgreSQL connection string. When empty it is read from
	// WELLUP_POSTGRES_DSN or the system keyring.
	DSN string `mapstructure:"dsn" yaml:"dsn"`
}

// FocusConfig holds the focus timer presets.
type FocusConfig struct {
	WorkMinutes       int `mapstructure:"work_minutes" yaml:"work_minutes"`
	ShortBreakMinutes int `mapstructure:"short_break_minutes" yaml:"short_break_minutes"`
	LongBreakMinutes  int `mapstructure:"long_break_minutes" yaml:"long_break_minutes"`
	SessionXP         int `mapstructure:"session_xp" yaml:"session_xp"`
}

// Durations returns the countdown length of each mode.
func (c FocusConfig) Durations() map[TimerMode]time.Duration {
	return map[TimerMode]time.Duration{
		ModeWork:       time.Duration(c.WorkMinutes) * time.Minute,
		ModeShortBreak: time.Duration(c.ShortBreakMinutes) * time.Minute,
		ModeLongBreak:  time.Duration(c.LongBreakMinutes) * time.Minute,
	}
}

// StudyConfig holds study log settings.
type StudyConfig struct {
	WeeklyGoalHours float64 `mapstructure:"weekly_goal_hours" yaml:"weekly_goal_hours"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Focus   FocusConfig   `mapstructure:"focus" yaml:"focus"`
	Study   StudyConfig   `mapstructure:"study" yaml:"study"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/wellup/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "wellup", "config.yaml")
}

// DefaultDBPath returns ~/.local/share/wellup/wellup.db.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "wellup.db")
	}
	return filepath.Join(home, ".local", "share", "wellup", "wellup.db")
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			Driver: DriverSQLite,
			Path:   DefaultDBPath(),
		},
		Focus: FocusConfig{
			WorkMinutes:       25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			SessionXP:         15,
		},
		Study: StudyConfig{
			WeeklyGoalHours: 20,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

func setDefaults(v *viper.Viper) {
	def := DefaultAppConfig()
	v.SetDefault("storage.driver", def.Storage.Driver)
	v.SetDefault("storage.path", def.Storage.Path)
	v.SetDefault("storage.dsn", "")
	v.SetDefault("focus.work_minutes", def.Focus.WorkMinutes)
	v.SetDefault("focus.short_break_minutes", def.Focus.ShortBreakMinutes)
	v.SetDefault("focus.long_break_minutes", def.Focus.LongBreakMinutes)
	v.SetDefault("focus.session_xp", def.Focus.SessionXP)
	v.SetDefault("study.weekly_goal_hours", def.Study.WeeklyGoalHours)
	v.SetDefault("log.level", def.Log.Level)
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Environment variables prefixed with WELLUP_ override file values
// (WELLUP_STORAGE_DRIVER, WELLUP_LOG_LEVEL, ...). If the file does not
// exist, defaults are used.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("WELLUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		_, pathErr := err.(*os.PathError)
		if !notFound && !pathErr {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that would break the engine's invariants.
func (c *AppConfig) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverMemory, DriverPostgres:
	default:
		return &ValidationError{Field: "storage.driver", Reason: fmt.Sprintf("unknown driver %q", c.Storage.Driver)}
	}
	if c.Focus.WorkMinutes <= 0 || c.Focus.ShortBreakMinutes <= 0 || c.Focus.LongBreakMinutes <= 0 {
		return &ValidationError{Field: "focus", Reason: "durations must be positive"}
	}
	if c.Focus.SessionXP < 0 {
		return &ValidationError{Field: "focus.session_xp", Reason: "must not be negative"}
	}
	if c.Study.WeeklyGoalHours <= 0 {
		return &ValidationError{Field: "study.weekly_goal_hours", Reason: "must be positive"}
	}
	return nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("focus", cfg.Focus)
	v.Set("study", cfg.Study)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
