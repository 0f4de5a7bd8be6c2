// Package vibeshield provides the command-line interface for the VibeShield
// scanner. It configures subcommands (scan, sweep, rules, suggest, etc.),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/vibeshield/vibeshield/cmd/vibeshield"
//	func main() { vibeshield.Execute() }
package vibeshield
