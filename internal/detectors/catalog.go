package detectors

import (
	"fmt"
)

// Catalog is an ordered, validated and immutable set of rules. Position in
// the catalog breaks ties when two rules claim the same span.
type Catalog struct {
	rules   []Rule
	index   map[string]int
	generic int
}

// NewCatalog validates rules and returns them as a catalog. A duplicate
// type, a malformed or unbounded pattern, a provider rule without a literal
// prefix or more than one generic rule is an error.
func NewCatalog(rules ...Rule) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(rules)), generic: -1}
	for _, r := range rules {
		cr, err := compile(r)
		if err != nil {
			return nil, err
		}
		if _, dup := c.index[cr.Type]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, cr.Type)
		}
		if cr.Generic {
			if c.generic >= 0 {
				return nil, fmt.Errorf("%w: %s: only one generic rule is allowed", ErrInvalidRule, cr.Type)
			}
			c.generic = len(c.rules)
		}
		c.index[cr.Type] = len(c.rules)
		c.rules = append(c.rules, cr)
	}
	return c, nil
}

// MustCatalog is NewCatalog that panics on error. It is meant for tables
// compiled into the binary.
func MustCatalog(rules ...Rule) *Catalog {
	c, err := NewCatalog(rules...)
	if err != nil {
		panic(err)
	}
	return c
}

// Rules returns a copy of the catalog in order.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Providers returns the non-generic rules in catalog order.
func (c *Catalog) Providers() []Rule {
	out := make([]Rule, 0, len(c.rules))
	for _, r := range c.rules {
		if !r.Generic {
			out = append(out, r)
		}
	}
	return out
}

// Generic returns the fallback rule, if the catalog has one.
func (c *Catalog) Generic() (Rule, bool) {
	if c.generic < 0 {
		return Rule{}, false
	}
	return c.rules[c.generic], true
}

// Lookup finds a rule by type.
func (c *Catalog) Lookup(typ string) (Rule, bool) {
	i, ok := c.index[typ]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}

// Position returns the catalog index of typ, or Len() when unknown.
func (c *Catalog) Position(typ string) int {
	if i, ok := c.index[typ]; ok {
		return i
	}
	return len(c.rules)
}

// Len is the number of rules.
func (c *Catalog) Len() int { return len(c.rules) }

// Types lists rule types in catalog order.
func (c *Catalog) Types() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Type
	}
	return out
}

// With returns a new catalog with extra rules inserted after the built-in
// providers and before the generic rule.
func (c *Catalog) With(extra ...Rule) (*Catalog, error) {
	if len(extra) == 0 {
		return c, nil
	}
	merged := make([]Rule, 0, len(c.rules)+len(extra))
	merged = append(merged, c.Providers()...)
	merged = append(merged, extra...)
	if g, ok := c.Generic(); ok {
		merged = append(merged, g)
	}
	return NewCatalog(merged...)
}
