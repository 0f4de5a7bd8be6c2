package detectors

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/vibeshield/vibeshield/internal/types"
	"github.com/vibeshield/vibeshield/internal/validate"
)

// typeAlphabet is what custom rule types may be spelled with, so they stay
// usable as SARIF rule ids and in enable/disable lists.
const typeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-."

// Definition is a user-supplied rule as written in a YAML config file or a
// gitleaks-style TOML rules file.
type Definition struct {
	Type       string `yaml:"type" toml:"id"`
	Label      string `yaml:"label" toml:"description"`
	Pattern    string `yaml:"pattern" toml:"regex"`
	Confidence string `yaml:"confidence" toml:"confidence"`
}

// FromDefinitions converts definitions into rules. Validation of patterns is
// left to NewCatalog so that every rule source fails the same way.
func FromDefinitions(defs []Definition) ([]Rule, error) {
	out := make([]Rule, 0, len(defs))
	for i, d := range defs {
		typ := strings.TrimSpace(d.Type)
		if typ == "" {
			return nil, fmt.Errorf("%w: rule #%d has no type", ErrInvalidRule, i+1)
		}
		if !validate.LengthBetween(typ, 1, 64) || !validate.IsAlphabet(typ, typeAlphabet) {
			return nil, fmt.Errorf("%w: rule type %q must be 1-64 letters, digits, '_', '-' or '.'", ErrInvalidRule, typ)
		}
		r := Rule{Type: typ, Label: strings.TrimSpace(d.Label), Pattern: d.Pattern}
		if c := strings.TrimSpace(strings.ToLower(d.Confidence)); c != "" {
			conf, ok := types.ParseConfidence(c)
			if !ok {
				return nil, fmt.Errorf("%w: %s: unknown confidence %q", ErrInvalidRule, typ, d.Confidence)
			}
			r.Baseline = conf
		}
		out = append(out, r)
	}
	return out, nil
}

type tomlRules struct {
	Rules []Definition `toml:"rules"`
}

// LoadTOMLRules reads [[rules]] tables (id, description, regex) from path.
func LoadTOMLRules(path string) ([]Rule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var doc tomlRules
	if err := toml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	rules, err := FromDefinitions(doc.Rules)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return rules, nil
}
