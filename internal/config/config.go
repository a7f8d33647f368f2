// Package config loads the siteforge configuration file and applies
// environment overrides.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	sferrors "git.home.luguber.info/inful/siteforge/internal/errors"
)

// OutputConfig controls where generated bundles land.
type OutputConfig struct {
	// Dir is the bundle output directory.
	Dir string `yaml:"dir"`
	// SingleArtifact additionally writes the concatenated archive form.
	SingleArtifact bool `yaml:"single_artifact"`
}

// GenerateConfig tunes bundle generation.
type GenerateConfig struct {
	// Variant limits generation to one named variant ("" = all).
	Variant  string `yaml:"variant"`
	Locale   string `yaml:"locale"`
	Currency string `yaml:"currency"`
}

// PreviewConfig tunes the preview daemon.
type PreviewConfig struct {
	Addr             string        `yaml:"addr"`
	QuietWindow      time.Duration `yaml:"quiet_window"`
	MaxDelay         time.Duration `yaml:"max_delay"`
	AutosaveInterval time.Duration `yaml:"autosave_interval"`
	// JournalPath is the SQLite mutation journal ("" disables journaling,
	// ":memory:" keeps it session-local).
	JournalPath string `yaml:"journal_path"`
	Metrics     bool   `yaml:"metrics"`
}

// NATSConfig enables optional event publishing. Empty URL disables it.
type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// Config is the root configuration.
type Config struct {
	// Record is the business record YAML path.
	Record   string         `yaml:"record"`
	Output   OutputConfig   `yaml:"output"`
	Generate GenerateConfig `yaml:"generate"`
	Preview  PreviewConfig  `yaml:"preview"`
	NATS     NATSConfig     `yaml:"nats"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Record: "business.yaml",
		Output: OutputConfig{Dir: "./site"},
		Generate: GenerateConfig{
			Locale:   "en-US",
			Currency: "USD",
		},
		Preview: PreviewConfig{
			Addr:             ":8090",
			QuietWindow:      150 * time.Millisecond,
			MaxDelay:         time.Second,
			AutosaveInterval: 30 * time.Second,
			JournalPath:      ":memory:",
		},
		NATS: NATSConfig{Subject: "siteforge.preview"},
	}
}

// Load reads the configuration file, filling defaults for absent keys and
// applying environment overrides last.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sferrors.ConfigNotFound(path)
		}
		return nil, sferrors.Wrap(err, sferrors.CategoryConfig, sferrors.SeverityFatal, "config read failed")
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, sferrors.Wrap(err, sferrors.CategoryConfig, sferrors.SeverityFatal, "config parse failed")
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to defaults (plus env
// overrides) when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return Load(path)
}

// Save writes the configuration to path as YAML.
func Save(cfg *Config, path string) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return sferrors.Wrap(err, sferrors.CategoryConfig, sferrors.SeverityFatal, "config marshal failed")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return sferrors.Wrap(err, sferrors.CategoryConfig, sferrors.SeverityFatal, "config write failed")
	}
	return nil
}

// applyEnv maps SITEFORGE_* variables onto config fields. Environment wins
// over the file, matching how the daemon is deployed.
func (c *Config) applyEnv() {
	if v := os.Getenv("SITEFORGE_RECORD"); v != "" {
		c.Record = v
	}
	if v := os.Getenv("SITEFORGE_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("SITEFORGE_PREVIEW_ADDR"); v != "" {
		c.Preview.Addr = v
	}
	if v := os.Getenv("SITEFORGE_NATS_URL"); v != "" {
		c.NATS.URL = v
	}
	if v := os.Getenv("SITEFORGE_JOURNAL_PATH"); v != "" {
		c.Preview.JournalPath = v
	}
}
