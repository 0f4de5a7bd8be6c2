package types

// Confidence is the engine's certainty label for a finding.
type Confidence string

const (
	ConfLow    Confidence = "low"
	ConfMedium Confidence = "medium"
	ConfHigh   Confidence = "high"
)

// Rank orders confidences so they can be compared; unknown values rank 0.
func (c Confidence) Rank() int {
	switch c {
	case ConfLow:
		return 1
	case ConfMedium:
		return 2
	case ConfHigh:
		return 3
	}
	return 0
}

// ParseConfidence accepts low, medium or high.
func ParseConfidence(s string) (Confidence, bool) {
	switch c := Confidence(s); c {
	case ConfLow, ConfMedium, ConfHigh:
		return c, true
	}
	return "", false
}

// Finding describes one reported credential literal. Field names are part of
// the JSON contract consumed by editor integrations and must not change.
type Finding struct {
	Type         string     `json:"type"`
	Secret       string     `json:"secret"`
	Line         int        `json:"line"`
	LineContent  string     `json:"line_content"`
	VariableName *string    `json:"variable_name"`
	Entropy      float64    `json:"entropy"`
	Confidence   Confidence `json:"confidence"`
	StartPos     int        `json:"start_pos"`
	EndPos       int        `json:"end_pos"`
}

// Variable returns the enclosing variable name or "" when none was resolved.
func (f Finding) Variable() string {
	if f.VariableName == nil {
		return ""
	}
	return *f.VariableName
}

// ScanResult is the outcome of scanning a single file. Error is always
// serialized (null on success) and Findings is never null.
type ScanResult struct {
	Success       bool      `json:"success"`
	File          string    `json:"file"`
	Language      *string   `json:"language"`
	Findings      []Finding `json:"findings"`
	TotalFindings int       `json:"total_findings"`
	Error         *string   `json:"error"`
}

// Failed builds an unsuccessful result carrying msg.
func Failed(file, msg string) ScanResult {
	return ScanResult{
		File:     file,
		Findings: []Finding{},
		Error:    &msg,
	}
}

// ErrorText returns the error message or "".
func (r ScanResult) ErrorText() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}
