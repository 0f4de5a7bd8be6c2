package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibeshield/vibeshield/internal/detectors"
	"github.com/vibeshield/vibeshield/internal/engine"
	"github.com/vibeshield/vibeshield/internal/types"
)

func sampleResult() types.ScanResult {
	name := "openaiKey"
	lang := "javascript"
	secret := "sk-proj-abcdef1234567890ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
	return types.ScanResult{
		Success:  true,
		File:     "src/app.js",
		Language: &lang,
		Findings: []types.Finding{{
			Type:         "openai_project",
			Secret:       secret,
			Line:         6,
			LineContent:  `const openaiKey = "` + secret + `";`,
			VariableName: &name,
			Entropy:      5.541,
			Confidence:   types.ConfHigh,
			StartPos:     120,
			EndPos:       120 + len(secret),
		}},
		TotalFindings: 1,
	}
}

func TestWriteJSON_Contract(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult(), false))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	for _, k := range []string{"success", "file", "language", "findings", "total_findings", "error"} {
		assert.Contains(t, doc, k)
	}
	assert.Nil(t, doc["error"])
	f := doc["findings"].([]any)[0].(map[string]any)
	for _, k := range []string{"type", "secret", "line", "line_content", "variable_name", "entropy", "confidence", "start_pos", "end_pos"} {
		assert.Contains(t, f, k)
	}
	assert.Equal(t, 5.541, f["entropy"])
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestWriteJSON_FailureHasEmptyFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, types.Failed("x.js", "File not found: x.js"), true))
	out := buf.String()
	assert.Contains(t, out, `"findings": []`)
	assert.Contains(t, out, `"language": null`)
	assert.Contains(t, out, `"error": "File not found: x.js"`)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitFindings, ExitCode(sampleResult(), ""))
	assert.Equal(t, ExitFindings, ExitCode(sampleResult(), "high"))
	assert.Equal(t, ExitClean, ExitCode(types.ScanResult{Success: true, Findings: []types.Finding{}}, ""))
	assert.Equal(t, ExitFailure, ExitCode(types.Failed("x", "boom"), ""))

	low := sampleResult()
	low.Findings[0].Confidence = types.ConfLow
	assert.Equal(t, ExitClean, ExitCode(low, "medium"))
	assert.Equal(t, ExitFindings, ExitCode(low, "low"))
}

func TestSweepExitCode(t *testing.T) {
	s := engine.SweepResult{Results: []types.ScanResult{sampleResult()}}
	assert.Equal(t, ExitFindings, SweepExitCode(s, ""))
	s.Results = append(s.Results, types.Failed("b.js", "Error reading file: denied"))
	assert.Equal(t, ExitFailure, SweepExitCode(s, ""))
	assert.Equal(t, ExitClean, SweepExitCode(engine.SweepResult{}, ""))
}

func TestPrintResult_Plain(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, sampleResult(), PrintOptions{Width: 200})
	out := buf.String()
	assert.Contains(t, out, "src/app.js (javascript)")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "openai_project")
	assert.Contains(t, out, "src/app.js:6")
	assert.Contains(t, out, "sk-p…7890")
	assert.Contains(t, out, "openaiKey: move to OPENAI_API_KEY")
	assert.NotContains(t, out, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Findings: 1 (high: 1, medium: 0, low: 0)")
}

func TestPrintResult_ShowSecrets(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, sampleResult(), PrintOptions{ShowSecrets: true, Width: 200})
	assert.Contains(t, buf.String(), sampleResult().Findings[0].Secret)
}

func TestPrintResult_NoFindingsAndFailure(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, types.ScanResult{Success: true, File: "a.py", Findings: []types.Finding{}}, PrintOptions{Duration: 1200 * time.Millisecond})
	assert.Contains(t, buf.String(), "No secrets found")
	assert.Contains(t, buf.String(), "Scan duration: 1.20s")

	buf.Reset()
	PrintResult(&buf, types.Failed("a.py", "File not found: a.py"), PrintOptions{})
	assert.Contains(t, buf.String(), "a.py: File not found: a.py")
}

func TestPrintResult_TruncatesToWidth(t *testing.T) {
	r := sampleResult()
	r.Findings[0].LineContent = strings.Repeat("x", 300)
	var buf bytes.Buffer
	PrintResult(&buf, r, PrintOptions{Width: 80})
	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 80)
	}
}

func TestPrintSweep(t *testing.T) {
	s := engine.SweepResult{
		Root:         ".",
		FilesScanned: 12,
		Results:      []types.ScanResult{sampleResult(), types.Failed("big.js", "file too large")},
	}
	var buf bytes.Buffer
	PrintSweep(&buf, s, PrintOptions{Width: 200})
	out := buf.String()
	assert.Contains(t, out, "openai_project")
	assert.Contains(t, out, "big.js: file too large")
	assert.Equal(t, 1, strings.Count(out, "Findings: 1"))
	assert.Contains(t, out, "Files scanned: 12")
}

func TestPrintSweepTable(t *testing.T) {
	s := engine.SweepResult{FilesScanned: 3, Results: []types.ScanResult{sampleResult()}}
	var buf bytes.Buffer
	require.NoError(t, PrintSweepTable(&buf, s, PrintOptions{}))
	out := buf.String()
	assert.Contains(t, out, "CONFIDENCE")
	assert.Contains(t, out, "openai_project")
	assert.Contains(t, out, "OPENAI_API_KEY")
	assert.Contains(t, out, "sk-p…7890")
	assert.Contains(t, out, "│")
	assert.Contains(t, out, "Files scanned: 3")

	buf.Reset()
	require.NoError(t, PrintSweepTable(&buf, engine.SweepResult{}, PrintOptions{}))
	assert.Contains(t, buf.String(), "No secrets found")
}

func TestPrintRules(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintRules(&buf, detectors.Builtin()))
	out := buf.String()
	assert.Contains(t, out, "openai_project")
	assert.Contains(t, out, "sk-proj-")
	assert.Contains(t, out, "AWS_ACCESS_KEY_ID")
	assert.Contains(t, out, "(quoted literal)")
}

func TestHighlightLine_UnknownTypeUnchanged(t *testing.T) {
	assert.Equal(t, "plain text", highlightLine("plain text", "notes.unknownext"))
	assert.NotEqual(t, "", highlightLine(`const a = "b";`, "a.js"))
}
