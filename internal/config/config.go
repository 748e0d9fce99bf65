package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/ab-modules/internal/logger"
)

// Config holds the settings used by the demo driver, the server and the clients.
type Config struct {
	// ServerAddress is the gRPC address the server listens on and clients dial.
	ServerAddress string `yaml:"server_addr" env:"AB_SERVER_ADDR"`
	// Threshold is the alarm threshold; results strictly above it trigger the alarm.
	Threshold int `yaml:"threshold" env:"AB_THRESHOLD"`
	// Timeout bounds every RPC made by the clients.
	Timeout time.Duration `yaml:"timeout" env:"AB_TIMEOUT"`
	// LogLevel is the minimum level of the global logger.
	LogLevel string `yaml:"log_level" env:"AB_LOG_LEVEL"`
}

const (
	// DefaultConfigFilename is the settings file looked up when no path is given.
	DefaultConfigFilename = "ab-modules.yaml"

	// DefaultEnvFilename is the dotenv file Load reads when present.
	DefaultEnvFilename = ".env"

	// DefaultServerAddress is used when the settings file does not set one.
	DefaultServerAddress = "127.0.0.1:50061"

	// DefaultThreshold matches the demo driver's notification threshold.
	DefaultThreshold = 100

	// DefaultTimeout is the default RPC timeout.
	DefaultTimeout = 5 * time.Second

	// DefaultLogLevel is the default logger level.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the mode of files written by Save.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerAddressRequired is returned when the server address is empty.
	errServerAddressRequired = errors.New("server address must be provided")
	// errInvalidLogLevel is returned for an unknown log level name.
	errInvalidLogLevel = errors.New("invalid log level")
)

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		ServerAddress: DefaultServerAddress,
		Threshold:     DefaultThreshold,
		Timeout:       DefaultTimeout,
		LogLevel:      DefaultLogLevel,
	}
}

// Load reads settings from path on top of the defaults, applies environment
// overrides (including DefaultEnvFilename when present) and validates the result.
// A missing settings file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))

	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Keep defaults.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	// Variables already exported win over the dotenv file.
	if err = LoadEnvFile(DefaultEnvFilename); err != nil {
		return nil, err
	}

	if err = env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadEnvFile exports variables from a dotenv file without overriding
// variables that are already set. A missing file is ignored.
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFilename
	}

	err := godotenv.Load(filepath.Clean(path))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}

	return nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks required fields and fills in defaults for optional ones.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ServerAddress == "" {
		return errServerAddressRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server address: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}
