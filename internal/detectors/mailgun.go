package detectors

var mailgun = Rule{Type: "mailgun", Label: "Mailgun", Pattern: `key-[0-9a-f]{32}`}
