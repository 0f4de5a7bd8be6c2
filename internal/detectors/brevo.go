package detectors

// Brevo (formerly Sendinblue) v3 keys end in a dash-separated suffix.
var brevo = Rule{Type: "brevo", Label: "Brevo", Pattern: `xkeysib-[A-Za-z0-9-]{60,120}`}
