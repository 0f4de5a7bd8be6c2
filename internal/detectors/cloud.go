package detectors

// Hosting and platform tokens.
var (
	digitalOcean = Rule{Type: "digitalocean", Label: "DigitalOcean", Pattern: `dop_v1_[a-f0-9]{64}`}
	flyIO        = Rule{Type: "flyio", Label: "Fly.io", Pattern: `flyv1_[A-Za-z0-9_-]{43,120}`}
	dockerHub    = Rule{Type: "dockerhub", Label: "Docker Hub", Pattern: `dckr_pat_[A-Za-z0-9_-]{27,64}`}
	databricks   = Rule{Type: "databricks", Label: "Databricks", Pattern: `dapi[a-f0-9]{32}`}
)
