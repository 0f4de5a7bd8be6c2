package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/vibeshield/vibeshield/internal/classify"
	"github.com/vibeshield/vibeshield/internal/detectors"
	"github.com/vibeshield/vibeshield/internal/extract"
	"github.com/vibeshield/vibeshield/internal/logging"
	"github.com/vibeshield/vibeshield/internal/types"
)

const (
	// TimeoutMessage is the error reported when a scan exceeds its deadline.
	TimeoutMessage = "scan timed out"
	// IgnoreFileDirective anywhere in a file suppresses all of its findings.
	IgnoreFileDirective = "vibeshield:ignore-file"
)

// Options controls a single scan.
type Options struct {
	// EntropyThreshold gates generic literals and raises provider
	// confidence. Zero means detectors.DefaultThreshold.
	EntropyThreshold float64
	// MaxBytes rejects larger files. Zero means no limit.
	MaxBytes int64
	// Timeout bounds the scan in addition to the caller's context.
	Timeout time.Duration
	// Redact masks secrets in the returned findings.
	Redact bool
}

func (o Options) threshold() float64 {
	if o.EntropyThreshold <= 0 {
		return detectors.DefaultThreshold
	}
	return o.EntropyThreshold
}

// Engine scans text against an immutable rule catalog. It holds no mutable
// state, so one Engine may serve any number of concurrent scans.
type Engine struct {
	catalog *detectors.Catalog
	log     *slog.Logger
}

// New returns an engine over cat. A nil catalog means the built-in rules and
// a nil logger discards output.
func New(cat *detectors.Catalog, logger *slog.Logger) *Engine {
	if cat == nil {
		cat = detectors.Builtin()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Engine{catalog: cat, log: logger}
}

// Catalog returns the rules this engine scans with.
func (e *Engine) Catalog() *detectors.Catalog { return e.catalog }

// Scan reads path and scans its contents. Failures are reported in the
// result, never as a panic or error return.
func (e *Engine) Scan(ctx context.Context, path string, opts Options) types.ScanResult {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return e.fail(path, "File not found: "+path)
	}
	if err != nil {
		return e.fail(path, fmt.Sprintf("Error reading file: %v", err))
	}
	if !info.Mode().IsRegular() {
		return e.fail(path, "Error reading file: not a regular file")
	}
	if opts.MaxBytes > 0 && info.Size() > opts.MaxBytes {
		return e.fail(path, tooLarge(info.Size(), opts.MaxBytes))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return e.fail(path, fmt.Sprintf("Error reading file: %v", err))
	}
	return e.ScanText(ctx, path, data, opts)
}

// ScanText scans data as if it were the contents of the file name.
func (e *Engine) ScanText(ctx context.Context, name string, data []byte, opts Options) types.ScanResult {
	if opts.MaxBytes > 0 && int64(len(data)) > opts.MaxBytes {
		return e.fail(name, tooLarge(int64(len(data)), opts.MaxBytes))
	}
	if msg := textProblem(data); msg != "" {
		return e.fail(name, msg)
	}
	if bytes.Contains(data, []byte(IgnoreFileDirective)) {
		e.log.Debug("file ignored by directive", "file", name)
		return succeeded(name, nil)
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	started := time.Now()
	threshold := opts.threshold()

	var accepted []ranked
	for c := range extract.Candidates(ctx, data, e.catalog) {
		f, ok := classify.Classify(c, detectors.Entropy(c.Text), threshold)
		if !ok {
			continue
		}
		accepted = append(accepted, ranked{
			Finding:  f,
			generic:  c.Rule.Generic,
			position: e.catalog.Position(c.Rule.Type),
		})
	}
	if err := ctx.Err(); err != nil {
		return e.aborted(name, err)
	}

	findings, err := dedupe(ctx, accepted)
	if err != nil {
		return e.aborted(name, err)
	}
	sortFindings(findings)
	if opts.Redact {
		for i := range findings {
			m := Mask(findings[i].Secret)
			findings[i].LineContent = strings.ReplaceAll(findings[i].LineContent, findings[i].Secret, m)
			findings[i].Secret = m
		}
	}
	e.log.Debug("scanned", "file", name, "bytes", len(data), "findings", len(findings), "dur", time.Since(started))
	return succeeded(name, findings)
}

func succeeded(name string, findings []types.Finding) types.ScanResult {
	if findings == nil {
		findings = []types.Finding{}
	}
	return types.ScanResult{
		Success:       true,
		File:          name,
		Language:      DetectLanguage(name),
		Findings:      findings,
		TotalFindings: len(findings),
	}
}

func (e *Engine) fail(name, msg string) types.ScanResult {
	e.log.Debug("scan failed", "file", name, "reason", msg)
	return types.Failed(name, msg)
}

func (e *Engine) aborted(name string, err error) types.ScanResult {
	e.log.Warn("scan aborted", "file", name, "err", err)
	if errors.Is(err, context.DeadlineExceeded) {
		return e.fail(name, TimeoutMessage)
	}
	return e.fail(name, "scan cancelled")
}

func tooLarge(size, limit int64) string {
	return fmt.Sprintf("file too large: %d bytes exceeds limit of %d", size, limit)
}
