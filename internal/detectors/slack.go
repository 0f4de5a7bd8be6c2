package detectors

var slackToken = Rule{Type: "slack_token", Label: "Slack", Pattern: `xox[abprs]-[A-Za-z0-9-]{10,120}`}
