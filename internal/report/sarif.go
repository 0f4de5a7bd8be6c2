package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/vibeshield/vibeshield/internal/detectors"
	"github.com/vibeshield/vibeshield/internal/remediation"
	"github.com/vibeshield/vibeshield/internal/types"
)

const sarifSchema = "https://json.schemastore.org/sarif-2.1.0.json"

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool              sarifTool         `json:"tool"`
	AutomationDetails sarifAutomation   `json:"automationDetails"`
	Invocations       []sarifInvocation `json:"invocations"`
	Results           []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	ShortDescription sarifMessage        `json:"shortDescription"`
	Help             sarifMessage        `json:"help"`
	Default          *sarifConfiguration `json:"defaultConfiguration,omitempty"`
}

type sarifConfiguration struct {
	Level string `json:"level"`
}

type sarifAutomation struct {
	ID string `json:"id"`
}

type sarifInvocation struct {
	ExecutionSuccessful bool                `json:"executionSuccessful"`
	Notifications       []sarifNotification `json:"toolExecutionNotifications,omitempty"`
}

type sarifNotification struct {
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations,omitempty"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	RuleIndex           int               `json:"ruleIndex"`
	Level               string            `json:"level"`
	Message             sarifMessage      `json:"message"`
	Locations           []sarifLoc        `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints"`
	Properties          map[string]any    `json:"properties,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt     `json:"artifactLocation"`
	Region           *sarifRegion `json:"region,omitempty"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int          `json:"startLine"`
	Snippet   sarifMessage `json:"snippet"`
}

func confToLevel(c types.Confidence) string {
	switch c {
	case types.ConfHigh:
		return "error"
	case types.ConfMedium:
		return "warning"
	default:
		return "note"
	}
}

// Fingerprint identifies a finding across runs without exposing the secret.
func Fingerprint(file string, f types.Finding) string {
	h := xxhash.New()
	_, _ = h.WriteString(file)
	_, _ = h.WriteString("\x00" + f.Type + "\x00")
	_, _ = h.WriteString(f.Secret)
	return strconv.FormatUint(h.Sum64(), 16)
}

// WriteSARIF writes results as a SARIF 2.1.0 log with one run. Rules lists
// the catalog so that ruleIndex is stable; findings of types missing from
// it are appended without a default level. A catalog rule's Baseline
// becomes its defaultConfiguration level. Failed scans become tool execution notifications.
func WriteSARIF(w io.Writer, results []types.ScanResult, rules []detectors.Rule, version string) error {
	driver := sarifDriver{Name: "vibeshield", Version: version, Rules: []sarifRule{}}
	index := map[string]int{}
	addRule := func(id, label string, baseline types.Confidence) int {
		if i, ok := index[id]; ok {
			return i
		}
		if label == "" {
			label = id
		}
		rule := sarifRule{
			ID:               id,
			Name:             id,
			ShortDescription: sarifMessage{Text: label + " credential"},
			Help:             sarifMessage{Text: "Move the value to the " + remediation.EnvVarName(id) + " environment variable and rotate it."},
		}
		if baseline != "" {
			rule.Default = &sarifConfiguration{Level: confToLevel(baseline)}
		}
		index[id] = len(driver.Rules)
		driver.Rules = append(driver.Rules, rule)
		return index[id]
	}
	for _, r := range rules {
		addRule(r.Type, r.Label, r.Baseline)
	}

	inv := sarifInvocation{ExecutionSuccessful: true}
	run := sarifRun{
		AutomationDetails: sarifAutomation{ID: "vibeshield/" + uuid.NewString()},
		Results:           []sarifResult{},
	}
	for _, res := range results {
		if !res.Success {
			inv.ExecutionSuccessful = false
			inv.Notifications = append(inv.Notifications, sarifNotification{
				Level:     "error",
				Message:   sarifMessage{Text: res.ErrorText()},
				Locations: []sarifLoc{{PhysicalLocation: sarifPhys{ArtifactLocation: sarifArt{URI: res.File}}}},
			})
			continue
		}
		for _, f := range res.Findings {
			msg := fmt.Sprintf("Hard-coded %s credential", f.Type)
			if v := f.Variable(); v != "" {
				msg += " assigned to " + v
			}
			run.Results = append(run.Results, sarifResult{
				RuleID:    f.Type,
				RuleIndex: addRule(f.Type, "", ""),
				Level:     confToLevel(f.Confidence),
				Message:   sarifMessage{Text: msg},
				Locations: []sarifLoc{{
					PhysicalLocation: sarifPhys{
						ArtifactLocation: sarifArt{URI: res.File},
						Region:           &sarifRegion{StartLine: f.Line, Snippet: sarifMessage{Text: f.LineContent}},
					},
				}},
				PartialFingerprints: map[string]string{"vibeshield/v1": Fingerprint(res.File, f)},
				Properties: map[string]any{
					"confidence": string(f.Confidence),
					"entropy":    f.Entropy,
				},
			})
		}
	}
	run.Tool = sarifTool{Driver: driver}
	run.Invocations = []sarifInvocation{inv}

	doc := sarif{Schema: sarifSchema, Version: "2.1.0", Runs: []sarifRun{run}}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
