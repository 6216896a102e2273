// Package config holds the demo driver's configuration. The library
// packages never read it; expansion inputs and rendering choices flow in
// from here only through function arguments.
package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wick/pairing"
	"github.com/katalvlaran/wick/render"
)

// Config is the full driver configuration.
type Config struct {
	// Tokens is the moment to expand: one symbolic time offset per variable
	// occurrence, length must be even.
	Tokens []string `mapstructure:"tokens"`

	// Names optionally overrides the display offsets used in covariance
	// labels; index 0 is the base time and renders empty.
	Names []string `mapstructure:"names"`

	// Format selects the output syntax: "text" or "latex".
	Format string `mapstructure:"format"`

	// Color enables ANSI-colored coefficients (text format).
	Color bool `mapstructure:"color"`

	// Align right-aligns the coefficient column (text format).
	Align bool `mapstructure:"align"`

	// Strategy selects pairing generation: "direct" or "filter".
	Strategy string `mapstructure:"strategy"`

	// Logging configures the driver's structured logger.
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig configures zap output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
	Output string `mapstructure:"output"` // stdout, stderr, or a file path
}

// DefaultConfig returns the configuration used when no file is supplied:
// the squared-moment example E{X_t² X_{t+t_1}² X_{t+t_2}² X_{t+t_3}²}.
func DefaultConfig() *Config {
	return &Config{
		Tokens: []string{
			"t", "t", "t+t_1", "t+t_1", "t+t_2", "t+t_2", "t+t_3", "t+t_3",
		},
		Format:   "text",
		Strategy: "direct",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}

	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for valid values. Token-sequence
// validation (even length) belongs to the library and is not duplicated
// here.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if _, err := c.RenderFormat(); err != nil {
		errs = append(errs, ValidationError{Field: "format", Message: err.Error()})
	}
	if _, err := c.PairingOptions(); err != nil {
		errs = append(errs, ValidationError{Field: "strategy", Message: err.Error()})
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q", c.Logging.Level),
		})
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q", c.Logging.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RenderFormat parses the configured output format.
func (c *Config) RenderFormat() (render.Format, error) {
	switch c.Format {
	case "", "text":
		return render.Text, nil
	case "latex":
		return render.LaTeX, nil
	default:
		return render.Text, fmt.Errorf("unknown format %q (want text or latex)", c.Format)
	}
}

// PairingOptions parses the configured enumeration strategy.
func (c *Config) PairingOptions() (pairing.Options, error) {
	switch c.Strategy {
	case "", "direct":
		return pairing.Options{Strategy: pairing.DirectRecursive}, nil
	case "filter":
		return pairing.Options{Strategy: pairing.PermutationFilter}, nil
	default:
		return pairing.Options{}, fmt.Errorf("unknown strategy %q (want direct or filter)", c.Strategy)
	}
}
