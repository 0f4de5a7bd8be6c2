// Package detectors holds the rule catalog used by VibeShield: one Rule per
// provider credential shape plus a generic fallback for quoted literals,
// the Shannon entropy evaluator, and loaders for user-defined rules.
//
// Every pattern is compiled with Go's RE2 engine and must have a bounded
// maximum length, so matching time is linear in the input.
package detectors
