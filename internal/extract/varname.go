package extract

import (
	"regexp"
	"strings"
)

const maxLHS = 256

// declKeywords follow var or const in other languages (Kotlin const val).
var declKeywords = map[string]bool{"val": true, "var": true, "let": true, "final": true}

var (
	// Go style typed declaration: var name Type
	reGoTypedDecl = regexp.MustCompile(`(?:^|[^\w$])(?:var|const)\s+([A-Za-z_][\w]*)\s+[\w.\[\]*]+$`)
	// last identifier, optionally followed by a type annotation (name: string)
	reTailIdent = regexp.MustCompile(`([A-Za-z_$][\w$]*)(?:\s*:\s*[\w$.<>\[\]|?, ]{1,64})?$`)
	// object or mapping key: identifiers, dotted and dashed YAML keys
	reKeyIdent   = regexp.MustCompile(`([A-Za-z_$][\w$.-]*)$`)
	reQuotedKey  = regexp.MustCompile("[\"'`]([^\"'`]{1,128})[\"'`]$")
	reBracketKey = regexp.MustCompile("\\[\\s*[\"'`]([^\"'`]{1,128})[\"'`]\\s*\\]$")
)

// VariableName resolves the name a value at line[anchor:] is assigned to by
// scanning leftwards: optional whitespace, then = (or :=) for assignments,
// or : and => for keys, then the name. When the value is not directly
// assigned, as in a call argument or the right side of ||, the nearest
// enclosing assignment in the same statement names it. It returns nil when
// the statement has no such shape. anchor is the position of the literal's opening quote, or
// of the value itself when it is unquoted.
func VariableName(line string, anchor int) *string {
	if anchor > len(line) {
		return nil
	}
	p := stripStringPrefix(line, anchor)
	lhs := strings.TrimRight(line[:p], " \t")
	if lhs == "" {
		return nil
	}
	var name string
	switch {
	case strings.HasSuffix(lhs, "=>"):
		name = keyName(lhs[:len(lhs)-2])
	case strings.HasSuffix(lhs, "="):
		name = assignedName(lhs[:len(lhs)-1])
	case strings.HasSuffix(lhs, ":"):
		rest := lhs[:len(lhs)-1]
		if strings.HasSuffix(rest, ":") {
			return nil
		}
		name = keyName(rest)
	}
	if name == "" {
		name = enclosingAssignment(lhs)
	}
	if name == "" {
		return nil
	}
	return &name
}

// stripStringPrefix steps over string prefixes such as Python's f"" or
// C#'s @"" that sit between the operator and the quote.
func stripStringPrefix(line string, p int) int {
	q := p
	for n := 0; n < 2 && q > 0 && strings.IndexByte("rRbBfFuU@$", line[q-1]) >= 0; n++ {
		q--
	}
	if q == p || q == 0 || !isIdentByte(line[q-1]) {
		return q
	}
	return p
}

func assignedName(lhs string) string {
	lhs = strings.TrimSuffix(lhs, ":")
	if lhs == "" {
		return ""
	}
	if strings.IndexByte("=!<>+-*/%&|^~?.", lhs[len(lhs)-1]) >= 0 {
		return ""
	}
	lhs = tail(strings.TrimRight(lhs, " \t"))
	if m := reBracketKey.FindStringSubmatch(lhs); m != nil {
		return m[1]
	}
	if m := reGoTypedDecl.FindStringSubmatch(lhs); m != nil && !declKeywords[m[1]] {
		return m[1]
	}
	if m := reTailIdent.FindStringSubmatch(lhs); m != nil {
		return m[1]
	}
	return ""
}

// enclosingAssignment walks lhs leftwards to the nearest plain = outside
// quotes and names its target. Comparison operators are stepped over; a
// statement or block boundary, or an arrow function, ends the search.
func enclosingAssignment(lhs string) string {
	lhs = tail(lhs)
	lits := quotedLiterals(lhs)
	li := len(lits) - 1
	for i := len(lhs) - 1; i >= 0; i-- {
		for li >= 0 && lits[li].open > i {
			li--
		}
		if li >= 0 && i <= lits[li].end {
			i = lits[li].open
			li--
			continue
		}
		switch lhs[i] {
		case ';', '{', '}':
			return ""
		case '=':
			if i+1 < len(lhs) && lhs[i+1] == '>' {
				return ""
			}
			if i+1 < len(lhs) && lhs[i+1] == '=' || i > 0 && strings.IndexByte("=!<>", lhs[i-1]) >= 0 {
				continue
			}
			if name := assignedName(lhs[:i]); name != "" {
				return name
			}
		}
	}
	return ""
}

func keyName(lhs string) string {
	lhs = tail(strings.TrimRight(lhs, " \t"))
	if m := reQuotedKey.FindStringSubmatch(lhs); m != nil {
		// cond ? "a" : "b" is a ternary, not a key
		before := strings.TrimRight(lhs[:len(lhs)-len(m[0])], " \t")
		if strings.HasSuffix(before, "?") {
			return ""
		}
		return m[1]
	}
	if m := reKeyIdent.FindStringSubmatch(lhs); m != nil {
		return strings.TrimLeft(m[1], ".-")
	}
	return ""
}

// tail bounds the text handed to the regexps so very long lines stay cheap.
func tail(s string) string {
	if len(s) > maxLHS {
		return s[len(s)-maxLHS:]
	}
	return s
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
