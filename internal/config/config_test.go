package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"zerospam/internal/config"
)

func TestLoadDefaultConfigWhenAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "zerospam", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.Scoring.Threshold != 0.5 {
		t.Fatalf("unexpected default threshold: %v", cfg.Scoring.Threshold)
	}
	if cfg.Input.Source != "dir" {
		t.Fatalf("unexpected default source: %q", cfg.Input.Source)
	}
	if cfg.Output.Format != "table" {
		t.Fatalf("unexpected default format: %q", cfg.Output.Format)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	configPath := filepath.Join(t.TempDir(), "zerospam.toml")

	type payload struct {
		Scoring struct {
			Threshold float64 `toml:"threshold"`
		} `toml:"scoring"`
		Input struct {
			Source string `toml:"source"`
		} `toml:"input"`
		Output struct {
			Format     string `toml:"format"`
			ReportPath string `toml:"report_path"`
		} `toml:"output"`
		Logging struct {
			Dir string `toml:"dir"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Scoring.Threshold = 0.8
	custom.Input.Source = " MBOX "
	custom.Output.Format = "json"
	custom.Output.ReportPath = "~/reports/latest.json"
	custom.Logging.Dir = "~/logs"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Scoring.Threshold != 0.8 {
		t.Fatalf("expected threshold 0.8, got %v", cfg.Scoring.Threshold)
	}
	if cfg.Input.Source != "mbox" {
		t.Fatalf("expected normalized source mbox, got %q", cfg.Input.Source)
	}
	if cfg.Input.SQLiteQuery != config.Default().Input.SQLiteQuery {
		t.Fatalf("expected default sqlite query, got %q", cfg.Input.SQLiteQuery)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Output.Format)
	}
	if cfg.Output.ReportPath != filepath.Join(tempHome, "reports", "latest.json") {
		t.Fatalf("expected expanded report path, got %q", cfg.Output.ReportPath)
	}
	if cfg.Logging.Dir != filepath.Join(tempHome, "logs") {
		t.Fatalf("expected expanded log dir, got %q", cfg.Logging.Dir)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing file error, got %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "zerospam.toml")
	if err := os.WriteFile(configPath, []byte("[scoring]\nthreshhold = 0.2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected parse error for unknown key")
	}
}

func TestLoadZeroMessageLimitDisablesCheck(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "zerospam.toml")
	if err := os.WriteFile(configPath, []byte("[input]\nmax_message_bytes = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Input.MaxMessageBytes != 0 {
		t.Fatalf("expected disabled limit to stay 0, got %d", cfg.Input.MaxMessageBytes)
	}
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "zerospam.toml")
	if err := os.WriteFile(configPath, []byte("[scoring]\nthreshold = 0.3\n[logging]\nlevel = \"info\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ZEROSPAM_THRESHOLD", "0.9")
	t.Setenv("ZEROSPAM_LOG_LEVEL", "DEBUG")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Scoring.Threshold != 0.9 {
		t.Errorf("expected threshold from env, got %v", cfg.Scoring.Threshold)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level from env, got %q", cfg.Logging.Level)
	}

	t.Setenv("ZEROSPAM_THRESHOLD", "high")
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for unparsable ZEROSPAM_THRESHOLD")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "threshold = 0.5") {
		t.Fatalf("sample config missing threshold: %s", contents)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if *cfg != config.Default() {
		t.Fatalf("sample config diverges from defaults: %+v", cfg)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Scoring.Threshold = 0.7
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal encoded config: %v", err)
	}
	if decoded.Scoring.Threshold != 0.7 {
		t.Fatalf("decoded threshold = %v", decoded.Scoring.Threshold)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"threshold above one", func(c *config.Config) { c.Scoring.Threshold = 1.5 }, "scoring.threshold"},
		{"negative threshold", func(c *config.Config) { c.Scoring.Threshold = -0.1 }, "scoring.threshold"},
		{"unknown source", func(c *config.Config) { c.Input.Source = "imap" }, "input.source"},
		{"negative size limit", func(c *config.Config) { c.Input.MaxMessageBytes = -1 }, "input.max_message_bytes"},
		{"unknown format", func(c *config.Config) { c.Output.Format = "xml" }, "output.format"},
		{"precision too large", func(c *config.Config) { c.Output.Precision = 40 }, "output.precision"},
		{"unknown log format", func(c *config.Config) { c.Logging.Format = "logfmt" }, "logging.format"},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
