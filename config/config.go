// SPDX-License-Identifier: MIT
// Package config loads and validates the run configuration of the
// valveflow command.
//
// Loading order (lowest to highest priority):
//  1. Defaults (in code)
//  2. YAML file, when a path is given
//  3. Command-line flags, applied by the caller
//
// Validate must be called after the last layer is applied.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate; the message lists every violation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	// Input is the path of the valve description file.
	Input string `yaml:"input" validate:"required"`

	// Start is the valve both agents depart from.
	Start string `yaml:"start" validate:"required,alpha"`

	// SoloBudget is the single-agent time budget.
	SoloBudget int `yaml:"solo_budget" validate:"gte=0"`

	// PairBudget is the per-agent budget of the two-agent search.
	PairBudget int `yaml:"pair_budget" validate:"gte=0"`

	// PairMode is "partition" or "relay".
	PairMode string `yaml:"pair_mode" validate:"oneof=partition relay"`

	// Workers bounds root-level parallelism (0 or 1: sequential).
	Workers int `yaml:"workers" validate:"gte=0,lte=256"`

	// Memo toggles memoization of search states.
	Memo bool `yaml:"memo"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Development switches zap to its human-readable console encoder.
	Development bool `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Start:      "AA",
		SoloBudget: 30,
		PairBudget: 26,
		PairMode:   "partition",
		Workers:    1,
		Memo:       true,
		LogLevel:   "info",
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// yields the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	if err = Decode(f, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Decode overlays the YAML document in r onto cfg.
func Decode(r io.Reader, cfg *Config) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	return dec.Decode(cfg)
}

var validate = validator.New()

// Validate checks every field constraint and reports all violations at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// formatFieldError renders one violation.
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "alpha":
		return fmt.Sprintf("%s must contain letters only", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
