package detectors

// generic matches the inner text of a quoted literal. It is the fallback for
// secrets without a recognised prefix and only fires when no provider rule
// covers the literal.
var generic = Rule{Type: "generic", Label: "Generic", Pattern: `^[A-Za-z0-9_+/=-]{20,512}$`, Generic: true}
