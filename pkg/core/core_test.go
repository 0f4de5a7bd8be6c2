package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const src = `const openaiKey = "sk-proj-abcdef1234567890ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890";
const fakeKey = "YOUR_API_KEY_HERE";
const testKey = "test123test123";
`

func TestScanText_OpenAIScenario(t *testing.T) {
	res := ScanText(context.Background(), "app.js", []byte(src), Options{})
	require.True(t, res.Success)
	require.Equal(t, 1, res.TotalFindings)
	f := res.Findings[0]
	assert.Equal(t, "openai_project", f.Type)
	assert.Equal(t, ConfHigh, f.Confidence)
	assert.Equal(t, "openaiKey", f.Variable())
	assert.Equal(t, "OPENAI_API_KEY", EnvVarName(f.Type))
}

func TestScan_FileAndMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "app.js")
	require.NoError(t, os.WriteFile(p, []byte(src), 0o644))
	res := Scan(t.Context(), p, Options{})
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.TotalFindings)

	res = Scan(t.Context(), p+".gone", Options{})
	assert.False(t, res.Success)
	assert.Empty(t, res.Findings)
}

func TestSweep_Smoke(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte(src), 0o644))
	res, err := Sweep(t.Context(), dir, SweepConfig{DefaultExcludes: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilesScanned)
	assert.Equal(t, 1, res.TotalFindings())
}

func TestRulesAndEnvVars(t *testing.T) {
	rules := Rules()
	assert.Contains(t, rules, "google")
	assert.Equal(t, "generic", rules[len(rules)-1])
	assert.Equal(t, "GOOGLE_API_KEY", EnvVarName("google"))
	assert.Equal(t, "API_KEY", EnvVarName("unknown_provider"))
}

func TestResultJSONRoundTrip(t *testing.T) {
	res := ScanText(context.Background(), "app.js", []byte(src), Options{})
	var buf bytes.Buffer
	require.NoError(t, MarshalResult(&buf, res))
	got, err := UnmarshalResult(&buf)
	require.NoError(t, err)
	assert.Equal(t, res, got)

	_, err = UnmarshalResult(bytes.NewBufferString("{"))
	assert.Error(t, err)
}
