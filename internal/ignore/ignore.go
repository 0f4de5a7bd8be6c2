// Package ignore reads .vibeshieldignore files: one doublestar pattern per
// line, # comments, and a trailing slash to exclude a whole directory.
package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// FileName is the per-tree ignore file consulted by sweeps.
const FileName = ".vibeshieldignore"

// Matcher reports whether a slash-separated relative path is ignored.
// The zero value ignores nothing.
type Matcher struct {
	patterns []string
}

// Load reads patterns from p. A missing file yields an empty matcher.
func Load(p string) (Matcher, error) {
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return Matcher{}, nil
	}
	if err != nil {
		return Matcher{}, err
	}
	defer f.Close()
	var m Matcher
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.add(line)
	}
	return m, sc.Err()
}

// New builds a matcher from patterns in the same syntax as the file.
func New(patterns ...string) Matcher {
	var m Matcher
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			m.add(p)
		}
	}
	return m
}

func (m *Matcher) add(p string) {
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	if strings.HasSuffix(p, "/") {
		p += "**"
	}
	if !doublestar.ValidatePattern(p) {
		return
	}
	m.patterns = append(m.patterns, p)
	// patterns without a slash match at any depth, as in .gitignore
	if !strings.Contains(strings.TrimSuffix(p, "/**"), "/") {
		m.patterns = append(m.patterns, "**/"+p)
	}
}

// Len returns the number of compiled patterns.
func (m Matcher) Len() int { return len(m.patterns) }

// Match reports whether rel is ignored.
func (m Matcher) Match(rel string) bool {
	rel = strings.TrimPrefix(strings.ReplaceAll(rel, "\\", "/"), "./")
	for _, p := range m.patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if !strings.Contains(p, "/") {
			if ok, _ := doublestar.Match(p, path.Base(rel)); ok {
				return true
			}
		}
	}
	return false
}

// Append adds pattern to the ignore file in root, creating the file when
// missing. A pattern already present is left alone. It reports whether the
// file changed.
func Append(root, pattern string) (bool, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false, errors.New("empty ignore pattern")
	}
	if !doublestar.ValidatePattern(strings.TrimPrefix(strings.TrimSuffix(pattern, "/"), "/")) {
		return false, fmt.Errorf("invalid ignore pattern %q", pattern)
	}
	p := filepath.Join(root, FileName)
	b, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) == pattern {
			return false, nil
		}
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return false, err
	}
	defer f.Close()
	// keep the previous last line intact when it has no newline
	if len(b) > 0 && b[len(b)-1] != '\n' {
		pattern = "\n" + pattern
	}
	if _, err := f.WriteString(pattern + "\n"); err != nil {
		return false, err
	}
	return true, nil
}
