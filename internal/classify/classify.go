// Package classify turns extracted candidates into findings.
package classify

import (
	"math"
	"strings"

	"github.com/vibeshield/vibeshield/internal/extract"
	"github.com/vibeshield/vibeshield/internal/types"
	"github.com/vibeshield/vibeshield/internal/validate"
)

// GenericHighMargin is how far above the threshold a generic literal's
// entropy must be to be reported with high confidence.
const GenericHighMargin = 1.0

// Classify decides whether c is reported and at what confidence.
//
// Provider matches are always reported: high confidence when entropy reaches
// threshold, medium otherwise. A rule's Baseline does not affect the finding;
// it only sets the rule's default SARIF level. Generic literals are
// reported only when they do not look like placeholders and their entropy
// reaches threshold; they are high confidence at threshold+GenericHighMargin.
func Classify(c extract.Candidate, entropy, threshold float64) (types.Finding, bool) {
	var conf types.Confidence
	switch {
	case c.Rule.Type == "":
		return types.Finding{}, false
	case !c.Rule.Generic:
		conf = types.ConfMedium
		if entropy >= threshold {
			conf = types.ConfHigh
		}
	default:
		if validate.LooksLikePlaceholder(c.Text) || entropy < threshold {
			return types.Finding{}, false
		}
		conf = types.ConfMedium
		if entropy >= threshold+GenericHighMargin {
			conf = types.ConfHigh
		}
	}
	return types.Finding{
		Type:         c.Rule.Type,
		Secret:       c.Text,
		Line:         c.Line,
		LineContent:  strings.TrimSpace(c.LineText),
		VariableName: c.Variable,
		Entropy:      Round(entropy),
		Confidence:   conf,
		StartPos:     c.Start,
		EndPos:       c.End,
	}, true
}

// Round keeps three decimals for display.
func Round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
