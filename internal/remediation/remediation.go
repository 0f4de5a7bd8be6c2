// Package remediation suggests environment variable names for detected
// secrets. It never rewrites files.
package remediation

import (
	"fmt"
	"strings"

	"github.com/vibeshield/vibeshield/internal/types"
)

// DefaultEnvVar is suggested for finding types without a dedicated name.
const DefaultEnvVar = "API_KEY"

var envVars = map[string]string{
	"openai":         "OPENAI_API_KEY",
	"openai_project": "OPENAI_API_KEY",
	"brevo":          "BREVO_API_KEY",
	"github_pat":     "GITHUB_TOKEN",
	"google":         "GOOGLE_API_KEY",
	"aws_access_key": "AWS_ACCESS_KEY_ID",
}

// EnvVarName maps a finding type to the environment variable the literal
// should move to.
func EnvVarName(typ string) string {
	if v, ok := envVars[typ]; ok {
		return v
	}
	return DefaultEnvVar
}

// Suggestion pairs one finding with the variable that should replace it.
type Suggestion struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Type     string `json:"type"`
	Variable string `json:"variable_name,omitempty"`
	EnvVar   string `json:"env_var"`
}

// Suggest returns one suggestion per finding of a successful scan.
func Suggest(r types.ScanResult) []Suggestion {
	if !r.Success {
		return nil
	}
	out := make([]Suggestion, 0, len(r.Findings))
	for _, f := range r.Findings {
		out = append(out, Suggestion{
			File:     r.File,
			Line:     f.Line,
			Type:     f.Type,
			Variable: f.Variable(),
			EnvVar:   EnvVarName(f.Type),
		})
	}
	return out
}

// DotenvTemplate renders a .env skeleton with each variable once, in order
// of first appearance, preceded by comments naming where it was found.
func DotenvTemplate(ss []Suggestion) string {
	var order []string
	where := map[string][]string{}
	for _, s := range ss {
		if _, seen := where[s.EnvVar]; !seen {
			order = append(order, s.EnvVar)
		}
		loc := fmt.Sprintf("%s:%d", s.File, s.Line)
		if s.Variable != "" {
			loc += " (" + s.Variable + ")"
		}
		where[s.EnvVar] = append(where[s.EnvVar], loc)
	}
	var b strings.Builder
	for i, name := range order {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, loc := range where[name] {
			fmt.Fprintf(&b, "# %s\n", loc)
		}
		fmt.Fprintf(&b, "%s=\n", name)
	}
	return b.String()
}
