package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Export ExportConfig `yaml:"export"`
	Import ImportConfig `yaml:"import"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

type ImportConfig struct {
	DropEmptyColumns bool `yaml:"drop_empty_columns"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		DB: DBConfig{
			Path: "dataal.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("DATAAL_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("DATAAL_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("DATAAL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if dir := os.Getenv("DATAAL_EXPORT_DIR"); dir != "" {
		cfg.Export.Dir = dir
	}
	if drop := os.Getenv("DATAAL_DROP_EMPTY_COLUMNS"); drop != "" {
		v, err := strconv.ParseBool(drop)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DATAAL_DROP_EMPTY_COLUMNS: %w", err)
		}
		cfg.Import.DropEmptyColumns = v
	}

	return cfg, nil
}

// LogLevel maps the configured level name to a slog level.
// Unknown names fall back to info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
