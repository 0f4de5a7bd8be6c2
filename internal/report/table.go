package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/vibeshield/vibeshield/internal/detectors"
	"github.com/vibeshield/vibeshield/internal/engine"
	"github.com/vibeshield/vibeshield/internal/remediation"
)

// PrintSweepTable writes one bordered row per finding and per failed file,
// then the summary footer.
func PrintSweepTable(w io.Writer, s engine.SweepResult, opts PrintOptions) error {
	if len(s.Results) == 0 {
		fmt.Fprintln(w, "No secrets found ✅")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("File", "Line", "Type", "Confidence", "Variable", "Secret", "Env Var")
		for _, r := range s.Results {
			if !r.Success {
				if err := table.Append([]string{r.File, "-", "error", "-", "-", r.ErrorText(), "-"}); err != nil {
					return err
				}
				continue
			}
			for _, f := range r.Findings {
				secret := f.Secret
				if !opts.ShowSecrets {
					secret = engine.Mask(secret)
				}
				row := []string{
					r.File,
					strconv.Itoa(f.Line),
					f.Type,
					string(f.Confidence),
					f.Variable(),
					secret,
					remediation.EnvVarName(f.Type),
				}
				if err := table.Append(row); err != nil {
					return err
				}
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	var all int
	high, med, low := 0, 0, 0
	for _, r := range s.Results {
		h, m, l := countConfidence(r.Findings)
		high, med, low = high+h, med+m, low+l
		all += len(r.Findings)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (high: %d, medium: %d, low: %d)\n", all, high, med, low)
	if d := s.Duration; d > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", d.Seconds())
	}
	fmt.Fprintf(w, "Files scanned: %d\n", s.FilesScanned)
	return nil
}

// PrintRules lists a catalog in order.
func PrintRules(w io.Writer, cat *detectors.Catalog) error {
	table := tablewriter.NewWriter(w)
	table.Header("Type", "Provider", "Prefix", "Baseline", "Env Var")
	for _, r := range cat.Rules() {
		prefix := r.Prefix()
		if r.Generic {
			prefix = "(quoted literal)"
		}
		if err := table.Append([]string{r.Type, r.Label, prefix, string(r.Baseline), remediation.EnvVarName(r.Type)}); err != nil {
			return err
		}
	}
	return table.Render()
}
