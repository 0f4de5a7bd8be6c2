package detectors

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Select narrows the catalog. enable and disable are comma-separated glob
// patterns over rule types (e.g. "github_*"). When enable is set only
// matching provider rules are kept. The generic rule survives enable lists
// and is only removed when disable names it exactly.
func (c *Catalog) Select(enable, disable string) (*Catalog, error) {
	if strings.TrimSpace(enable) == "" && strings.TrimSpace(disable) == "" {
		return c, nil
	}
	en, err := compileGlobs(enable)
	if err != nil {
		return nil, err
	}
	dis, err := compileGlobs(disable)
	if err != nil {
		return nil, err
	}
	var kept []Rule
	for _, r := range c.rules {
		if r.Generic {
			if !containsExact(disable, r.Type) {
				kept = append(kept, r)
			}
			continue
		}
		if len(en) > 0 && !anyMatch(en, r.Type) {
			continue
		}
		if anyMatch(dis, r.Type) {
			continue
		}
		kept = append(kept, r)
	}
	return NewCatalog(kept...)
}

func compileGlobs(list string) ([]glob.Glob, error) {
	var out []glob.Glob
	for _, p := range strings.Split(list, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("rule selector %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func anyMatch(gs []glob.Glob, s string) bool {
	for _, g := range gs {
		if g.Match(s) {
			return true
		}
	}
	return false
}

func containsExact(list, s string) bool {
	for _, p := range strings.Split(list, ",") {
		if strings.TrimSpace(p) == s {
			return true
		}
	}
	return false
}
