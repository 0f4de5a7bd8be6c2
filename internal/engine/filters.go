package engine

import (
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

var defaultExcludeDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"target":       true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"coverage":     true,
	"bin":          true,
	"obj":          true,
	".dart_tool":   true,
	".next":        true,
	".gradle":      true,
}

// suffixes treated as non-text/big or noisy artifacts when default excludes enabled
var defaultExcludeFileSuffixes = []string{
	".min.js", ".map",
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".ico",
	".pdf", ".zip", ".gz", ".tar", ".tgz", ".7z",
	".jar", ".class", ".exe", ".dll", ".so", ".dylib",
	".wasm", ".pyc",
	// common generated code outputs
	".pb.go", ".gen.go", ".g.dart", ".freezed.dart",
}

// exact filenames commonly safe to exclude when default excludes enabled
var defaultExcludeFileNames = map[string]bool{
	// lockfiles (package managers)
	"yarn.lock":         true,
	"package-lock.json": true,
	"pnpm-lock.yaml":    true,
	"composer.lock":     true,
	"poetry.lock":       true,
	"pubspec.lock":      true,
	// OS cruft (names are compared lowercased)
	".ds_store": true,
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name] || strings.HasPrefix(name, ".git")
}

// isDefaultFileExcluded expects a lowercased, slash-separated path.
func isDefaultFileExcluded(lowerRel string) bool {
	// fast check for any *.lock
	if strings.HasSuffix(lowerRel, ".lock") {
		return true
	}
	for _, s := range defaultExcludeFileSuffixes {
		if strings.HasSuffix(lowerRel, s) {
			return true
		}
	}
	// generic generated artifacts pattern
	if strings.Contains(lowerRel, ".gen.") {
		return true
	}
	return defaultExcludeFileNames[path.Base(lowerRel)]
}

// globFilter applies comma-separated include and exclude doublestar globs
// to slash-separated relative paths. Includes, when present, act as a
// positive filter; excludes are subtracted last.
type globFilter struct {
	includes []string
	excludes []string
}

func newGlobFilter(include, exclude string) globFilter {
	return globFilter{includes: parseGlobsList(include), excludes: parseGlobsList(exclude)}
}

func (g globFilter) allowed(relPath string) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	if len(g.includes) > 0 && !matchAnyGlob(rp, g.includes) {
		return false
	}
	if len(g.excludes) > 0 && matchAnyGlob(rp, g.excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, path.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
