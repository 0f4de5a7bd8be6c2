package detectors

// Google API keys are AIza plus 35 characters; the upper bound tolerates
// keys pasted with trailing material from the same token.
var google = Rule{Type: "google", Label: "Google", Pattern: `AIza[0-9A-Za-z_-]{35,64}`}
