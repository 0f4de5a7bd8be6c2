package detectors

var anthropic = Rule{Type: "anthropic", Label: "Anthropic", Pattern: `sk-ant-(?:api|admin)[0-9]{2}-[A-Za-z0-9_-]{80,120}`}
