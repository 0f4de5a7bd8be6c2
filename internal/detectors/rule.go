package detectors

import (
	"errors"
	"fmt"
	"regexp"
	"regexp/syntax"

	"github.com/vibeshield/vibeshield/internal/types"
	"github.com/vibeshield/vibeshield/internal/validate"
)

var (
	ErrInvalidRule      = errors.New("invalid rule")
	ErrDuplicateRule    = errors.New("duplicate rule type")
	ErrUnboundedPattern = errors.New("pattern has unbounded repetition")
	ErrMissingPrefix    = errors.New("provider pattern must start with a literal prefix")
)

// Rule describes one credential shape. Provider rules are matched anywhere
// in a line; the generic rule is matched against the inner text of quoted
// literals only.
type Rule struct {
	Type     string
	Label    string
	Pattern  string
	// Baseline is the rule's default SARIF level. It does not change the
	// confidence of a finding.
	Baseline types.Confidence
	Generic  bool

	re *regexp.Regexp
}

// Prefix returns the literal prefix every match of a provider rule starts with.
func (r Rule) Prefix() string {
	if r.re == nil {
		return ""
	}
	p, _ := r.re.LiteralPrefix()
	return p
}

// FindAll returns the [start,end) byte spans of r in line. Matches that do
// not begin at a token boundary are dropped.
func (r Rule) FindAll(line string) [][2]int {
	if r.re == nil || r.Generic {
		return nil
	}
	var out [][2]int
	for _, m := range r.re.FindAllStringIndex(line, -1) {
		if m[0] > 0 && isWordByte(line[m[0]-1]) {
			continue
		}
		out = append(out, [2]int{m[0], m[1]})
	}
	return out
}

// MatchLiteral reports whether the inner text of a quoted literal has the
// generic secret shape: the rule's charset and length plus at least two
// character classes.
func (r Rule) MatchLiteral(s string) bool {
	if r.re == nil || !r.Generic {
		return false
	}
	return r.re.MatchString(s) && validate.CharClasses(s) >= 2
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// compile validates r and returns it with its pattern compiled.
func compile(r Rule) (Rule, error) {
	if r.Type == "" {
		return r, fmt.Errorf("%w: empty type", ErrInvalidRule)
	}
	if r.Pattern == "" {
		return r, fmt.Errorf("%w: %s: empty pattern", ErrInvalidRule, r.Type)
	}
	if r.Baseline == "" {
		r.Baseline = types.ConfMedium
	}
	if r.Baseline.Rank() == 0 {
		return r, fmt.Errorf("%w: %s: unknown confidence %q", ErrInvalidRule, r.Type, r.Baseline)
	}
	if r.Label == "" {
		r.Label = r.Type
	}
	tree, err := syntax.Parse(r.Pattern, syntax.Perl)
	if err != nil {
		return r, fmt.Errorf("%w: %s: %v", ErrInvalidRule, r.Type, err)
	}
	if !bounded(tree) {
		return r, fmt.Errorf("%w: %s: %s", ErrUnboundedPattern, r.Type, r.Pattern)
	}
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return r, fmt.Errorf("%w: %s: %v", ErrInvalidRule, r.Type, err)
	}
	r.re = re
	if !r.Generic && r.Prefix() == "" {
		return r, fmt.Errorf("%w: %s: %s", ErrMissingPrefix, r.Type, r.Pattern)
	}
	return r, nil
}

// bounded reports whether the parsed expression has a finite maximum match length.
func bounded(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpStar, syntax.OpPlus:
		return false
	case syntax.OpRepeat:
		if re.Max < 0 {
			return false
		}
	}
	for _, sub := range re.Sub {
		if !bounded(sub) {
			return false
		}
	}
	return true
}
