// Package extract finds candidate secret spans in source text.
package extract

import (
	"bytes"
	"context"
	"iter"
	"sort"

	"github.com/vibeshield/vibeshield/internal/detectors"
)

// Candidate is an unclassified span that may hold a secret. Start and End
// are byte offsets into the scanned data; Line is 1-based.
type Candidate struct {
	Text     string
	Line     int
	Start    int
	End      int
	LineText string
	Variable *string
	Rule     detectors.Rule
}

// Candidates walks data once, line by line, and yields every provider rule
// match plus every quoted literal with the generic shape that no provider
// match covers. Each call returns a fresh sequence. The sequence stops early
// when ctx is done; callers detect that through ctx.Err().
func Candidates(ctx context.Context, data []byte, cat *detectors.Catalog) iter.Seq[Candidate] {
	providers := cat.Providers()
	gen, hasGeneric := cat.Generic()
	return func(yield func(Candidate) bool) {
		var dir directives
		lineNo := 0
		for start := 0; start < len(data); {
			if ctx.Err() != nil {
				return
			}
			lineNo++
			end, next := len(data), len(data)
			if i := bytes.IndexByte(data[start:], '\n'); i >= 0 {
				end, next = start+i, start+i+1
			}
			raw := data[start:end]
			if n := len(raw); n > 0 && raw[n-1] == '\r' {
				raw = raw[:n-1]
			}
			line := string(raw)
			if !dir.skip(line) {
				for _, c := range scanLine(line, start, lineNo, providers, gen, hasGeneric) {
					if !yield(c) {
						return
					}
				}
			}
			start = next
		}
	}
}

// scanLine returns the candidates of one line ordered by position.
func scanLine(line string, offset, lineNo int, providers []detectors.Rule, gen detectors.Rule, hasGeneric bool) []Candidate {
	var lits []literal
	if hasGeneric || len(providers) > 0 {
		lits = quotedLiterals(line)
	}
	var out []Candidate
	var covered [][2]int
	for _, r := range providers {
		for _, span := range r.FindAll(line) {
			covered = append(covered, span)
			out = append(out, newCandidate(line, offset, lineNo, span, r, lits))
		}
	}
	if hasGeneric {
		for _, lit := range lits {
			span := [2]int{lit.start, lit.end}
			if overlapsAny(covered, span) {
				continue
			}
			if !gen.MatchLiteral(line[lit.start:lit.end]) {
				continue
			}
			out = append(out, newCandidate(line, offset, lineNo, span, gen, lits))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func newCandidate(line string, offset, lineNo int, span [2]int, r detectors.Rule, lits []literal) Candidate {
	anchor := span[0]
	if lit, ok := enclosing(lits, span); ok {
		anchor = lit.open
	}
	return Candidate{
		Text:     line[span[0]:span[1]],
		Line:     lineNo,
		Start:    offset + span[0],
		End:      offset + span[1],
		LineText: line,
		Variable: VariableName(line, anchor),
		Rule:     r,
	}
}

func overlapsAny(spans [][2]int, s [2]int) bool {
	for _, o := range spans {
		if s[0] < o[1] && o[0] < s[1] {
			return true
		}
	}
	return false
}
