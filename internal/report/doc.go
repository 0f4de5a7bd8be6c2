// Package report renders scan results: the JSON contract consumed by
// editor integrations, SARIF for code scanning, and human-readable terminal
// output. It also maps results to process exit codes.
package report
