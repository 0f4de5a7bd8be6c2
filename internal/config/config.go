package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/vibeshield/vibeshield/internal/detectors"
	"github.com/vibeshield/vibeshield/internal/logging"
)

var (
	ErrNoConfig      = errors.New("no config file")
	ErrInvalidConfig = errors.New("invalid config")
)

// LocalNames are searched, in order, in the directory being scanned.
var LocalNames = []string{".vibeshield.yml", ".vibeshield.yaml", "vibeshield.yml", "vibeshield.yaml"}

// FileConfig is the on-disk YAML configuration shape for VibeShield. Unset
// keys stay nil so that precedence can fall through to the next source.
type FileConfig struct {
	EntropyThreshold *float64 `yaml:"entropy_threshold,omitempty"`
	MaxBytes         *int64   `yaml:"max_bytes,omitempty"`
	Timeout          *string  `yaml:"timeout,omitempty"`
	Redact           *bool    `yaml:"redact,omitempty"`

	// Sweep scope
	Include         *string `yaml:"include,omitempty"`
	Exclude         *string `yaml:"exclude,omitempty"`
	DefaultExcludes *bool   `yaml:"default_excludes,omitempty"`
	Workers         *int    `yaml:"workers,omitempty"`

	// Rule selection and custom rules
	Enable    *string                `yaml:"enable,omitempty"`
	Disable   *string                `yaml:"disable,omitempty"`
	Rules     []detectors.Definition `yaml:"rules,omitempty"`
	RulesFile *string                `yaml:"rules_file,omitempty"`

	LogLevel *string `yaml:"log_level,omitempty"`
	NoColor  *bool   `yaml:"no_color,omitempty"`

	// dir is where the file was loaded from; rules_file is relative to it.
	dir string
}

// LoadFile reads a YAML config file from the provided path and validates it.
// A leading ~ expands to the home directory.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	cfg.dir = filepath.Dir(path)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .vibeshield.yml/.yaml and vibeshield.yml/.yaml.
func LoadLocal(repoRoot string) (FileConfig, error) {
	for _, name := range LocalNames {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNoConfig
}

// GlobalPath returns the global config location from the XDG base
// directory or ~/.config, or "" when neither is known.
func GlobalPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := homedir.Dir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, "vibeshield", "config.yml")
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, error) {
	p := GlobalPath()
	if p == "" {
		return FileConfig{}, ErrNoConfig
	}
	if _, err := os.Stat(p); err != nil {
		return FileConfig{}, ErrNoConfig
	}
	return LoadFile(p)
}

// Validate checks value ranges. Custom rule patterns are validated later
// when the catalog is built.
func (fc FileConfig) Validate() error {
	if fc.EntropyThreshold != nil && *fc.EntropyThreshold < 0 {
		return fmt.Errorf("%w: entropy_threshold must not be negative", ErrInvalidConfig)
	}
	if fc.MaxBytes != nil && *fc.MaxBytes < 0 {
		return fmt.Errorf("%w: max_bytes must not be negative", ErrInvalidConfig)
	}
	if fc.Workers != nil && *fc.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}
	if _, err := fc.TimeoutDuration(); err != nil {
		return err
	}
	if fc.LogLevel != nil && !logging.ValidLevel(*fc.LogLevel) {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, *fc.LogLevel)
	}
	return nil
}

// TimeoutDuration parses timeout, returning 0 when unset.
func (fc FileConfig) TimeoutDuration() (time.Duration, error) {
	if fc.Timeout == nil || *fc.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(*fc.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: timeout %q is not a valid duration", ErrInvalidConfig, *fc.Timeout)
	}
	return d, nil
}

// CustomRules returns the rules declared inline and in rules_file.
func (fc FileConfig) CustomRules() ([]detectors.Rule, error) {
	rules, err := detectors.FromDefinitions(fc.Rules)
	if err != nil {
		return nil, err
	}
	if fc.RulesFile != nil && *fc.RulesFile != "" {
		p, err := homedir.Expand(*fc.RulesFile)
		if err != nil {
			return nil, err
		}
		if !filepath.IsAbs(p) && fc.dir != "" {
			p = filepath.Join(fc.dir, p)
		}
		more, err := detectors.LoadTOMLRules(p)
		if err != nil {
			return nil, err
		}
		rules = append(rules, more...)
	}
	return rules, nil
}
