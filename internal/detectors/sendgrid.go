package detectors

var sendGrid = Rule{Type: "sendgrid", Label: "SendGrid", Pattern: `SG\.[A-Za-z0-9_-]{16,32}\.[A-Za-z0-9_-]{32,64}`}
