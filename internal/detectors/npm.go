package detectors

var npmToken = Rule{Type: "npm_token", Label: "npm", Pattern: `npm_[A-Za-z0-9]{36}`}
