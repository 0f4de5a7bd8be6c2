package core

import (
	"context"
	"log/slog"

	"github.com/vibeshield/vibeshield/internal/detectors"
	"github.com/vibeshield/vibeshield/internal/engine"
	"github.com/vibeshield/vibeshield/internal/remediation"
	"github.com/vibeshield/vibeshield/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Finding     = types.Finding
	ScanResult  = types.ScanResult
	Confidence  = types.Confidence
	Options     = engine.Options
	SweepConfig = engine.SweepConfig
	SweepResult = engine.SweepResult
)

const (
	ConfLow    = types.ConfLow
	ConfMedium = types.ConfMedium
	ConfHigh   = types.ConfHigh
)

// DefaultThreshold is the entropy threshold used when Options leaves it zero.
const DefaultThreshold = detectors.DefaultThreshold

var builtin = engine.New(nil, nil)

// Scan reads and scans one file with the built-in rules.
func Scan(ctx context.Context, path string, opts Options) ScanResult {
	return builtin.Scan(ctx, path, opts)
}

// ScanText scans in-memory content. name is reported as the result's file and
// selects the language.
func ScanText(ctx context.Context, name string, data []byte, opts Options) ScanResult {
	return builtin.ScanText(ctx, name, data, opts)
}

// Sweep scans a directory tree concurrently. logger may be nil.
func Sweep(ctx context.Context, root string, cfg SweepConfig, logger *slog.Logger) (SweepResult, error) {
	return engine.New(nil, logger).Sweep(ctx, root, cfg)
}

// EnvVarName returns the environment variable suggested for a finding type.
func EnvVarName(findingType string) string { return remediation.EnvVarName(findingType) }

// Rules returns the built-in finding types in catalog order.
func Rules() []string { return builtin.Catalog().Types() }
