package vibeshield

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vibeshield/vibeshield/internal/engine"
	"github.com/vibeshield/vibeshield/internal/remediation"
	"github.com/vibeshield/vibeshield/internal/report"
)

var (
	flagSuggestDotenv bool
	flagSuggestJSON   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "suggest <file_path>",
		Short: "Suggest environment variables for the secrets in a file",
		Long: "Scan a file and print, for each finding, the environment variable the\n" +
			"literal should move to. With --dotenv a .env template is printed instead.\n" +
			"Files are never modified.",
		Args: cobra.ExactArgs(1),
		RunE: runSuggest,
	}
	cmd.Flags().BoolVar(&flagSuggestDotenv, "dotenv", false, "print a .env template")
	cmd.Flags().BoolVar(&flagSuggestJSON, "json", false, "print suggestions as JSON")
	rootCmd.AddCommand(cmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	target := args[0]
	s, err := loadSettings(target)
	if err != nil {
		return err
	}
	cat, err := s.catalog("", "")
	if err != nil {
		return err
	}
	timeout, err := s.timeout("")
	if err != nil {
		return err
	}
	opts := engine.Options{
		EntropyThreshold: pickFloat(0, s.local.EntropyThreshold, s.global.EntropyThreshold),
		MaxBytes:         pickInt64(0, s.local.MaxBytes, s.global.MaxBytes),
		Timeout:          timeout,
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = defaultScanMaxBytes
	}
	res := engine.New(cat, log()).Scan(cmd.Context(), target, opts)
	if !res.Success {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", res.File, res.ErrorText())
		return exitWith(report.ExitFailure)
	}

	out := cmd.OutOrStdout()
	ss := remediation.Suggest(res)
	switch {
	case flagSuggestJSON:
		return report.WriteJSON(out, ss, true)
	case flagSuggestDotenv:
		_, err := io.WriteString(out, remediation.DotenvTemplate(ss))
		return err
	}
	if len(ss) == 0 {
		fmt.Fprintln(out, "No secrets found ✅")
		return nil
	}
	for _, sg := range ss {
		name := sg.Variable
		if name == "" {
			name = sg.Type
		}
		fmt.Fprintf(out, "%s:%d\t%s\t→ %s\n", sg.File, sg.Line, name, sg.EnvVar)
	}
	return nil
}
