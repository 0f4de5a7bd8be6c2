package engine

import (
	"context"
	"sort"
	"unicode/utf8"

	"github.com/vibeshield/vibeshield/internal/types"
)

// ranked carries what overlap resolution needs to know about a finding.
type ranked struct {
	types.Finding
	generic  bool
	position int
}

// beats reports whether a should be kept over b when their spans overlap:
// provider over generic, then earlier catalog position, then longer span.
func (a ranked) beats(b ranked) bool {
	if a.generic != b.generic {
		return !a.generic
	}
	if a.position != b.position {
		return a.position < b.position
	}
	la, lb := a.EndPos-a.StartPos, b.EndPos-b.StartPos
	if la != lb {
		return la > lb
	}
	return a.StartPos < b.StartPos
}

func overlaps(a, b types.Finding) bool {
	return a.StartPos < b.EndPos && b.StartPos < a.EndPos
}

// checkEvery is how many findings dedupe handles between context checks.
const checkEvery = 1024

// dedupe keeps one finding per group of overlapping byte ranges and returns
// them ordered by start offset. Findings are swept by start offset into
// clusters of transitively overlapping spans; within a cluster they are
// visited strongest first so a kept finding is never displaced later.
func dedupe(ctx context.Context, in []ranked) ([]types.Finding, error) {
	order := make([]ranked, len(in))
	copy(order, in)
	sort.SliceStable(order, func(i, j int) bool { return order[i].StartPos < order[j].StartPos })

	kept := make([]types.Finding, 0, len(order))
	for i := 0; i < len(order); {
		j, end := i+1, order[i].EndPos
		for j < len(order) && order[j].StartPos < end {
			end = max(end, order[j].EndPos)
			j++
		}
		if j-i == 1 {
			kept = append(kept, order[i].Finding)
		} else {
			kept = append(kept, resolve(order[i:j])...)
		}
		if i/checkEvery != j/checkEvery {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		i = j
	}
	return kept, nil
}

// resolve picks the winners of one overlap cluster, in start order.
func resolve(cluster []ranked) []types.Finding {
	byStrength := make([]ranked, len(cluster))
	copy(byStrength, cluster)
	sort.SliceStable(byStrength, func(i, j int) bool { return byStrength[i].beats(byStrength[j]) })

	var kept []types.Finding
	for _, r := range byStrength {
		clash := false
		for _, k := range kept {
			if overlaps(r.Finding, k) {
				clash = true
				break
			}
		}
		if !clash {
			kept = append(kept, r.Finding)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].StartPos < kept[j].StartPos })
	return kept
}

func sortFindings(fs []types.Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].Line != fs[j].Line {
			return fs[i].Line < fs[j].Line
		}
		return fs[i].StartPos < fs[j].StartPos
	})
}

// Mask keeps the first and last four characters of a secret. Secrets of
// twelve characters or fewer are fully hidden.
func Mask(s string) string {
	n := utf8.RuneCountInString(s)
	if n <= 12 {
		return "********"
	}
	r := []rune(s)
	return string(r[:4]) + "…" + string(r[n-4:])
}
