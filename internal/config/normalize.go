package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeScoring(); err != nil {
		return err
	}
	c.normalizeInput()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeScoring() error {
	if value, ok := os.LookupEnv("ZEROSPAM_THRESHOLD"); ok && strings.TrimSpace(value) != "" {
		threshold, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("ZEROSPAM_THRESHOLD: %w", err)
		}
		c.Scoring.Threshold = threshold
	}
	return nil
}

func (c *Config) normalizeInput() {
	c.Input.Source = strings.ToLower(strings.TrimSpace(c.Input.Source))
	if c.Input.Source == "" {
		c.Input.Source = defaultSource
	}
	c.Input.SQLiteQuery = strings.TrimSpace(c.Input.SQLiteQuery)
	if c.Input.SQLiteQuery == "" {
		c.Input.SQLiteQuery = defaultSQLiteQuery
	}
}

func (c *Config) normalizeOutput() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	if strings.TrimSpace(c.Output.ReportPath) == "" {
		c.Output.ReportPath = ""
		return nil
	}
	var err error
	if c.Output.ReportPath, err = expandPath(c.Output.ReportPath); err != nil {
		return fmt.Errorf("output.report_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("ZEROSPAM_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = ""
		return nil
	}
	var err error
	if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
