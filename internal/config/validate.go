package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Sources lists the supported input source kinds.
var Sources = []string{"dir", "mbox", "json", "lines", "sqlite"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScoring(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScoring() error {
	if math.IsNaN(c.Scoring.Threshold) || c.Scoring.Threshold < 0 || c.Scoring.Threshold > 1 {
		return errors.New("scoring.threshold must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateInput() error {
	if !slices.Contains(Sources, c.Input.Source) {
		return fmt.Errorf("input.source: unsupported value %q (expected one of %v)", c.Input.Source, Sources)
	}
	if c.Input.MaxMessageBytes < 0 {
		return errors.New("input.max_message_bytes must not be negative (0 disables the limit)")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output.format: unsupported value %q (expected table or json)", c.Output.Format)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return errors.New("output.precision must be between 0 and 17")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
