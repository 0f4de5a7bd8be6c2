package core

import (
	"encoding/json"
	"io"
)

// MarshalResult writes r as one line of JSON, the shape editor integrations
// consume.
func MarshalResult(w io.Writer, r ScanResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// UnmarshalResult decodes a result written by MarshalResult or `scan --json`.
func UnmarshalResult(r io.Reader) (ScanResult, error) {
	var res ScanResult
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return ScanResult{}, err
	}
	if res.Findings == nil {
		res.Findings = []Finding{}
	}
	return res, nil
}

// MarshalFindings pretty-prints findings as JSON for humans or pipelines.
func MarshalFindings(w io.Writer, findings []Finding) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(findings)
}
