package detectors

import "github.com/vibeshield/vibeshield/internal/types"

var (
	stripeLive       = Rule{Type: "stripe_live", Label: "Stripe", Pattern: `sk_live_[0-9a-zA-Z]{24,99}`}
	stripeRestricted = Rule{Type: "stripe_restricted", Label: "Stripe", Pattern: `rk_live_[0-9a-zA-Z]{24,99}`}
	// Test-mode keys cannot move money.
	stripeTest = Rule{Type: "stripe_test", Label: "Stripe", Pattern: `sk_test_[0-9a-zA-Z]{24,99}`, Baseline: types.ConfLow}
)
