package detectors

// GitHub token families. Classic PATs (ghp_) map to GITHUB_TOKEN during
// remediation; the others keep their own types so they stay distinguishable.
var (
	gitHubFineGrained = Rule{Type: "github_fine_grained", Label: "GitHub", Pattern: `github_pat_[A-Za-z0-9_]{60,120}`}
	gitHubPAT         = Rule{Type: "github_pat", Label: "GitHub", Pattern: `ghp_[A-Za-z0-9]{36,80}`}
	gitHubOAuth       = Rule{Type: "github_oauth", Label: "GitHub", Pattern: `gho_[A-Za-z0-9]{36,80}`}
	gitHubApp         = Rule{Type: "github_app", Label: "GitHub", Pattern: `gh[su]_[A-Za-z0-9]{36,80}`}
)
