package detectors

import "github.com/vibeshield/vibeshield/internal/types"

var (
	linear  = Rule{Type: "linear", Label: "Linear", Pattern: `lin_api_[A-Za-z0-9]{40}`}
	shopify = Rule{Type: "shopify", Label: "Shopify", Pattern: `shp(?:at|ca|pa|ss)_[a-fA-F0-9]{32}`}
	// Project keys (phc_) are meant to ship to browsers; personal keys are not.
	postHogProject  = Rule{Type: "posthog_project", Label: "PostHog", Pattern: `phc_[A-Za-z0-9]{32,48}`, Baseline: types.ConfLow}
	postHogPersonal = Rule{Type: "posthog_personal", Label: "PostHog", Pattern: `phx_[A-Za-z0-9]{32,48}`}
)
