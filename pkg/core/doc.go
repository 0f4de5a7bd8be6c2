// Package core provides a small, stable facade over VibeShield's internal
// engine for editor integrations and other programs. It re-exports a narrow
// API surface so callers can depend on a stable import path without
// importing internal packages.
//
// Example:
//
//	res := core.Scan(ctx, "src/app.js", core.Options{})
//	if !res.Success { /* res.Error explains why */ }
//	_ = core.MarshalResult(os.Stdout, res)
package core
