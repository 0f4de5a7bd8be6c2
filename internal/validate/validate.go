package validate

import (
	"strings"
	"unicode"
)

// LengthBetween returns true if n is within [min,max].
func LengthBetween(s string, min, max int) bool {
	n := len(s)
	return n >= min && n <= max
}

// IsAlphabet returns true if all characters in s are in allowed set.
func IsAlphabet(s, allowed string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(allowed, rune(s[i])) {
			return false
		}
	}
	return true
}

// CharClasses counts how many of lowercase, uppercase and digit occur in s.
func CharClasses(s string) int {
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	n := 0
	for _, b := range []bool{lower, upper, digit} {
		if b {
			n++
		}
	}
	return n
}

// DistinctRunes counts the distinct characters of s, ignoring case.
func DistinctRunes(s string) int {
	seen := map[rune]struct{}{}
	for _, r := range strings.ToLower(s) {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// DominantRatio is the share of s taken by its most frequent character.
func DominantRatio(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	n, top := 0, 0
	for _, r := range s {
		count[r]++
		n++
		if count[r] > top {
			top = count[r]
		}
	}
	return float64(top) / float64(n)
}

// placeholderTokens are fragments commonly left in sample code in place of a
// real credential.
var placeholderTokens = []string{
	"YOUR_API_KEY",
	"API_KEY_HERE",
	"REPLACE_ME",
	"CHANGE_THIS",
	"PUT_YOUR_KEY_HERE",
	"INSERT_KEY_HERE",
	"ENTER_API_KEY",
	"EXAMPLE",
	"PLACEHOLDER",
	"XXXX",
}

// LooksLikePlaceholder reports whether s is most likely a stand-in value: a
// known placeholder token makes up more than half of it, it uses fewer than
// five distinct characters, or one character exceeds 40% of it.
func LooksLikePlaceholder(s string) bool {
	if s == "" {
		return true
	}
	upper := strings.ToUpper(s)
	for _, tok := range placeholderTokens {
		if strings.Contains(upper, tok) && float64(len(tok))/float64(len(s)) > 0.5 {
			return true
		}
	}
	if DistinctRunes(s) < 5 {
		return true
	}
	return DominantRatio(s) > 0.4
}
