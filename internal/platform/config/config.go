package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
	"gopkg.in/yaml.v3"

	apperrors "sleeptrack/internal/platform/errors"
)

const (
	appName             = "sleeptrack"
	DefaultHistoryLimit = 10
)

type Config struct {
	DataDir      string `yaml:"-"`
	DBPath       string `yaml:"db_path" env:"SLEEPTRACK_DB_PATH"`
	LogPath      string `yaml:"log_path" env:"SLEEPTRACK_LOG_PATH"`
	LogLevel     string `yaml:"log_level" env:"SLEEPTRACK_LOG_LEVEL"`
	LogFormat    string `yaml:"log_format" env:"SLEEPTRACK_LOG_FORMAT"`
	HistoryLimit int    `yaml:"history_limit" env:"SLEEPTRACK_HISTORY_LIMIT"`
}

// Options carries command-line overrides. Empty fields fall back to the
// XDG locations.
type Options struct {
	DataDir    string
	ConfigPath string
}

// Load resolves configuration from defaults, the YAML file, an optional
// .env file in the data dir and finally the process environment.
func Load(opts Options) (Config, error) {
	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = defaultDataDir()
	}
	cfg := Defaults(dataDir)

	configPath := opts.ConfigPath
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath()
	}
	if err := mergeFile(&cfg, configPath, explicit); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(filepath.Join(dataDir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Load(&cfg, &env.Options{Source: setEnvSource{}}); err != nil {
		return Config{}, fmt.Errorf("load environment variables: %w", err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setEnvSource treats variables exported with an empty value as unset, so
// `SLEEPTRACK_HISTORY_LIMIT=` keeps the file or default value.
type setEnvSource struct{}

func (setEnvSource) LookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func Defaults(dataDir string) Config {
	return Config{
		DataDir:      dataDir,
		DBPath:       filepath.Join(dataDir, appName+".db"),
		LogPath:      filepath.Join(dataDir, appName+".log"),
		LogLevel:     "info",
		LogFormat:    "text",
		HistoryLimit: DefaultHistoryLimit,
	}
}

// DefaultConfigPath returns the config file path (for help text).
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, "config.yaml")
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

func mergeFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.DBPath == "" {
		return fmt.Errorf("%w: db path is required", apperrors.ErrInvalidInput)
	}
	if cfg.HistoryLimit <= 0 {
		return fmt.Errorf("%w: history limit must be positive, got %d", apperrors.ErrInvalidInput, cfg.HistoryLimit)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format must be text or json, got %q", apperrors.ErrInvalidInput, cfg.LogFormat)
	}
	return nil
}
