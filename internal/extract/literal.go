package extract

import "strings"

// literal is a quoted string on a single line. open is the index of the
// opening quote; [start,end) is the text between the quotes.
type literal struct {
	open, start, end int
}

// quotedLiterals finds ", ' and ` delimited strings closed on the same line.
// Backslash escapes are honoured. An unterminated quote, such as the
// apostrophe in a comment, is skipped along with any later quote of the same
// kind, and scanning resumes after it.
func quotedLiterals(line string) []literal {
	var out []literal
	var open [3]bool
	for i := 0; i < len(line); i++ {
		q := line[i]
		k := strings.IndexByte("\"'`", q)
		if k < 0 || open[k] {
			continue
		}
		j := i + 1
		for j < len(line) && line[j] != q {
			if line[j] == '\\' {
				j++
			}
			j++
		}
		if j >= len(line) {
			open[k] = true
			continue
		}
		out = append(out, literal{open: i, start: i + 1, end: j})
		i = j
	}
	return out
}

// enclosing returns the literal that fully contains span.
func enclosing(lits []literal, span [2]int) (literal, bool) {
	for _, l := range lits {
		if l.start <= span[0] && span[1] <= l.end {
			return l, true
		}
	}
	return literal{}, false
}

// directives tracks inline suppression comments across lines:
//
//	vibeshield:ignore              skip this line
//	vibeshield:ignore-next-line    skip the following line
//	vibeshield:ignore-start/-end   skip the enclosed region
type directives struct {
	region   bool
	skipNext bool
}

func (d *directives) skip(line string) bool {
	if !strings.Contains(line, "vibeshield:") {
		if d.skipNext {
			d.skipNext = false
			return true
		}
		return d.region
	}
	switch {
	case strings.Contains(line, "vibeshield:ignore-start"):
		d.region = true
		return true
	case strings.Contains(line, "vibeshield:ignore-end"):
		d.region = false
		return true
	case strings.Contains(line, "vibeshield:ignore-next-line"):
		d.skipNext = true
		return true
	case strings.Contains(line, "vibeshield:ignore"):
		d.skipNext = false
		return true
	}
	if d.skipNext {
		d.skipNext = false
		return true
	}
	return d.region
}
