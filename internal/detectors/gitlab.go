package detectors

var gitLabPAT = Rule{Type: "gitlab_pat", Label: "GitLab", Pattern: `glpat-[A-Za-z0-9_-]{20,64}`}
