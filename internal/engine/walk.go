package engine

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vibeshield/vibeshield/internal/ignore"
)

// target is a file selected for a sweep.
type target struct {
	abs string
	rel string
}

// walk traverses root and returns, in lexical order, every file that
// passes the default excludes, the glob filter, the ignore matcher and the
// size limit.
func walk(ctx context.Context, root string, cfg SweepConfig, ign ignore.Matcher) ([]target, error) {
	filter := newGlobFilter(cfg.Include, cfg.Exclude)
	var out []target
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, p)
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if p == root {
				return nil
			}
			// Default exclude directories
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			if ign.Match(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !filter.allowed(rel) || ign.Match(rel) {
			return nil
		}
		// Cheap extension-based skips
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if info, err := d.Info(); err == nil && info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		out = append(out, target{abs: p, rel: rel})
		return nil
	})
	return out, err
}
