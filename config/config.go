// Package config loads and validates keyrelay run settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/keyrelay/logging"
	"github.com/katalvlaran/keyrelay/relay"
)

// validate is a singleton validator instance
var validate = validator.New()

// Config holds the settings of one keyrelay run.
type Config struct {
	// Levels lists the relay counts to score, one report per entry.
	Levels []int `yaml:"levels" validate:"required,min=1,max=8,dive,min=1,max=32"`
	// Workers bounds concurrent line scoring; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"min=0,max=256"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"required,oneof=debug info warn error"`
	// OnMalformed is abort or skip.
	OnMalformed string `yaml:"on_malformed" validate:"required,oneof=abort skip"`
	// MetricsFile, when set, receives a Prometheus text dump after the run.
	MetricsFile string `yaml:"metrics_file" validate:"omitempty"`
}

// Default returns the baseline-and-deep configuration.
func Default() Config {
	return Config{
		Levels:      []int{relay.BaselineLevels, relay.DeepLevels},
		Workers:     0,
		LogLevel:    "info",
		OnMalformed: relay.AbortOnMalformed.String(),
	}
}

// Load reads path over Default. Keys absent from the file keep their
// default values. The result is normalised and validated.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize lower-cases and trims the enum fields.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.OnMalformed = strings.ToLower(strings.TrimSpace(c.OnMalformed))
	if c.LogLevel == "warning" {
		c.LogLevel = "warn"
	}
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Policy maps OnMalformed to a relay.MalformedPolicy.
func (c Config) Policy() relay.MalformedPolicy {
	if c.OnMalformed == relay.SkipMalformed.String() {
		return relay.SkipMalformed
	}
	return relay.AbortOnMalformed
}

// Level maps LogLevel to a logging.Level.
func (c Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := e.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		param := e.Param()

		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s: field is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s: must be at least %s", field, param))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s: must not exceed %s", field, param))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: must be one of [%s], got %q", field, param, e.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: validation failed (%s)", field, e.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
