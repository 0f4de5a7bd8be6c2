package report

import (
	"github.com/vibeshield/vibeshield/internal/engine"
	"github.com/vibeshield/vibeshield/internal/types"
)

// Exit codes shared by every command.
const (
	ExitClean    = 0 // scan completed, nothing at or above the fail-on level
	ExitFindings = 1 // scan completed with findings
	ExitFailure  = 2 // scan failed, or a usage or configuration error
)

// ShouldFail reports whether any finding is at or above failOn (low, medium
// or high). An empty or unknown level means low, so any finding fails.
func ShouldFail(findings []types.Finding, failOn string) bool {
	th, ok := types.ParseConfidence(failOn)
	if !ok {
		th = types.ConfLow
	}
	for _, f := range findings {
		if f.Confidence.Rank() >= th.Rank() {
			return true
		}
	}
	return false
}

// ExitCode maps a single-file result to a process exit code.
func ExitCode(r types.ScanResult, failOn string) int {
	if !r.Success {
		return ExitFailure
	}
	if ShouldFail(r.Findings, failOn) {
		return ExitFindings
	}
	return ExitClean
}

// SweepExitCode maps a sweep to a process exit code. A failed file wins
// over findings.
func SweepExitCode(s engine.SweepResult, failOn string) int {
	code := ExitClean
	for _, r := range s.Results {
		switch c := ExitCode(r, failOn); {
		case c == ExitFailure:
			return ExitFailure
		case c > code:
			code = c
		}
	}
	return code
}
