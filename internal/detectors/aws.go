package detectors

// Long-term (AKIA) and temporary (ASIA) access key IDs.
var awsAccessKey = Rule{Type: "aws_access_key", Label: "AWS", Pattern: `(?:AKIA|ASIA)[0-9A-Z]{16}`}
