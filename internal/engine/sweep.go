package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vibeshield/vibeshield/internal/ignore"
	"github.com/vibeshield/vibeshield/internal/types"
)

// SweepConfig controls scope and concurrency of a sweep over a tree.
type SweepConfig struct {
	Options

	// Include and Exclude are comma-separated doublestar globs matched
	// against slash-separated paths relative to the root.
	Include string
	Exclude string
	// DefaultExcludes skips dependency, build and VCS directories plus
	// binary and generated artifacts.
	DefaultExcludes bool
	// Workers bounds concurrent file scans. Zero means GOMAXPROCS.
	Workers int
	// Progress, when set, is called once per file after it is scanned.
	// It may be called from several goroutines at once.
	Progress func(rel string)
}

// SweepResult lists the per-file results worth reporting: files with
// findings and files that failed. Results are in path order.
type SweepResult struct {
	Root         string             `json:"root"`
	FilesScanned int                `json:"files_scanned"`
	Results      []types.ScanResult `json:"results"`
	Duration     time.Duration      `json:"-"`
}

// TotalFindings sums findings across results.
func (r SweepResult) TotalFindings() int {
	n := 0
	for _, res := range r.Results {
		n += res.TotalFindings
	}
	return n
}

// Failures counts results whose scan did not complete.
func (r SweepResult) Failures() int {
	n := 0
	for _, res := range r.Results {
		if !res.Success {
			n++
		}
	}
	return n
}

// Sweep scans every eligible file under root, one file per task. Binary
// files are skipped rather than reported. The returned error covers the
// walk itself and cancellation; per-file problems land in Results.
func (e *Engine) Sweep(ctx context.Context, root string, cfg SweepConfig) (SweepResult, error) {
	started := time.Now()
	res := SweepResult{Root: root, Results: []types.ScanResult{}}

	info, err := os.Stat(root)
	if err != nil {
		return res, fmt.Errorf("sweep %s: %w", root, err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("sweep %s: not a directory", root)
	}

	ign, err := ignore.Load(filepath.Join(root, ignore.FileName))
	if err != nil {
		e.log.Warn("could not read ignore file", "root", root, "err", err)
	}
	targets, err := walk(ctx, root, cfg, ign)
	if err != nil {
		return res, fmt.Errorf("sweep %s: %w", root, err)
	}
	e.log.Debug("sweep targets", "root", root, "files", len(targets), "ignore_patterns", ign.Len())

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	slots := make([]*types.ScanResult, len(targets))
	var scanned atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, t := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, ok := e.sweepFile(gctx, t, cfg.Options)
			if ok {
				scanned.Add(1)
				if !r.Success || r.TotalFindings > 0 {
					slots[i] = &r
				}
			}
			if cfg.Progress != nil {
				cfg.Progress(t.rel)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	for _, r := range slots {
		if r != nil {
			res.Results = append(res.Results, *r)
		}
	}
	res.FilesScanned = int(scanned.Load())
	res.Duration = time.Since(started)
	e.log.Info("sweep complete", "root", root, "files", res.FilesScanned, "findings", res.TotalFindings(), "dur", res.Duration)
	return res, nil
}

// sweepFile scans one target. ok is false for files skipped as non-text.
func (e *Engine) sweepFile(ctx context.Context, t target, opts Options) (types.ScanResult, bool) {
	data, err := os.ReadFile(t.abs)
	if err != nil {
		return e.fail(t.rel, fmt.Sprintf("Error reading file: %v", err)), true
	}
	if textProblem(data) != "" {
		e.log.Debug("skipping non-text file", "file", t.rel)
		return types.ScanResult{}, false
	}
	return e.ScanText(ctx, t.rel, data, opts), true
}
