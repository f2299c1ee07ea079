// Package config resolves the transpose command configuration from defaults,
// an optional YAML file, and environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory
// when no explicit path is given.
const DefaultFile = "transpose.yml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TRANSPOSE_"

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config captures the settings shared by all transpose subcommands.
type Config struct {
	// Cipher is the default cipher name for encrypt, decrypt and show.
	Cipher string `yaml:"cipher"`
	// Key is the default cipher key. Prefer the environment or the prompt
	// over storing keys in files.
	Key string `yaml:"key"`
	// Alphabet is the plain-text alphabet; empty means the Latin default.
	Alphabet string `yaml:"alphabet"`
	// Seed seeds the padding source; 0 picks a fresh seed per run.
	Seed int64 `yaml:"seed"`
	// KeepSpaces keeps spaces when dist filters its input.
	KeepSpaces bool      `yaml:"keep_spaces"`
	Log        LogConfig `yaml:"log"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cipher:   "",
		Key:      "",
		Alphabet: "",
		Seed:     0,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load resolves the configuration. The precedence, lowest first, is:
//  1. built-in defaults;
//  2. the YAML file at path, or ./transpose.yml when path is empty and the
//     file exists (an explicit path must exist);
//  3. environment variables prefixed with TRANSPOSE_.
//
// The result is validated before it is returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := loadFile(&cfg, path); err != nil {
		return Config{}, err
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

func loadFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := applyFileConfig(cfg, data); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// fileConfig uses pointers so that keys absent from the file leave the
// defaults untouched.
type fileConfig struct {
	Cipher     *string        `yaml:"cipher"`
	Key        *string        `yaml:"key"`
	Alphabet   *string        `yaml:"alphabet"`
	Seed       *int64         `yaml:"seed"`
	KeepSpaces *bool          `yaml:"keep_spaces"`
	Log        *fileLogConfig `yaml:"log"`
}

type fileLogConfig struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
}

func applyFileConfig(cfg *Config, data []byte) error {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if fc.Cipher != nil {
		cfg.Cipher = strings.TrimSpace(*fc.Cipher)
	}
	if fc.Key != nil {
		cfg.Key = *fc.Key
	}
	if fc.Alphabet != nil {
		cfg.Alphabet = strings.TrimSpace(*fc.Alphabet)
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.KeepSpaces != nil {
		cfg.KeepSpaces = *fc.KeepSpaces
	}
	if fc.Log != nil {
		if fc.Log.Level != nil {
			cfg.Log.Level = strings.TrimSpace(*fc.Log.Level)
		}
		if fc.Log.Format != nil {
			cfg.Log.Format = strings.TrimSpace(*fc.Log.Format)
		}
	}

	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if val := strings.TrimSpace(os.Getenv(EnvPrefix + "CIPHER")); val != "" {
		cfg.Cipher = val
	}
	if val := os.Getenv(EnvPrefix + "KEY"); val != "" {
		cfg.Key = val
	}
	if val := strings.TrimSpace(os.Getenv(EnvPrefix + "ALPHABET")); val != "" {
		cfg.Alphabet = val
	}
	if val := strings.TrimSpace(os.Getenv(EnvPrefix + "SEED")); val != "" {
		seed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q", ErrInvalidConfig, EnvPrefix, val)
		}
		cfg.Seed = seed
	}
	if val := strings.TrimSpace(os.Getenv(EnvPrefix + "KEEP_SPACES")); val != "" {
		keep, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%w: %sKEEP_SPACES=%q", ErrInvalidConfig, EnvPrefix, val)
		}
		cfg.KeepSpaces = keep
	}
	if val := strings.TrimSpace(os.Getenv(EnvPrefix + "LOG_LEVEL")); val != "" {
		cfg.Log.Level = val
	}
	if val := strings.TrimSpace(os.Getenv(EnvPrefix + "LOG_FORMAT")); val != "" {
		cfg.Log.Format = val
	}
	return nil
}
