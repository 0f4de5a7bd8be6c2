package vibeshield

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vibeshield/vibeshield/internal/engine"
	"github.com/vibeshield/vibeshield/internal/report"
	"github.com/vibeshield/vibeshield/internal/types"
)

// defaultScanMaxBytes applies to single-file scans when neither the flag nor
// a config file sets a limit.
const defaultScanMaxBytes = 10 << 20

var (
	flagJSON        bool
	flagPretty      bool
	flagSARIF       bool
	flagRedact      bool
	flagThreshold   float64
	flagTimeout     string
	flagMaxBytes    int64
	flagFailOn      string
	flagShowSecrets bool
	flagEnable      string
	flagDisable     string
	flagStdinName   string
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan <file_path> [entropy_threshold]",
		Short: "Scan one file for hard-coded credentials",
		Long: "Scan one file for hard-coded credentials. Use - to read from stdin.\n" +
			"Exit status is 0 when nothing was found, 1 when findings at or above --fail-on\n" +
			"were reported, and 2 when the scan failed.",
		Args: cobra.RangeArgs(1, 2),
		RunE: runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&flagPretty, "pretty", false, "indent JSON output")
	cmd.Flags().BoolVar(&flagSARIF, "sarif", false, "print the result as SARIF 2.1.0")
	cmd.Flags().BoolVar(&flagRedact, "redact", false, "mask secrets in the output")
	cmd.Flags().Float64Var(&flagThreshold, "threshold", 0, "entropy threshold in bits per character (default 3.5)")
	cmd.Flags().StringVar(&flagTimeout, "timeout", "", "abort the scan after this duration (e.g. 2s)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "refuse files larger than this (default 10MiB)")
	cmd.Flags().StringVar(&flagFailOn, "fail-on", "low", "lowest confidence that makes the exit status 1: low|medium|high")
	cmd.Flags().BoolVar(&flagShowSecrets, "show-secrets", false, "print secrets unmasked in the text report")
	cmd.Flags().StringVar(&flagEnable, "enable", "", "only run these rules (comma-separated types or globs)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "skip these rules (comma-separated types or globs)")
	cmd.Flags().StringVar(&flagStdinName, "stdin-filename", "-", "file name reported when scanning stdin")
}

func runScan(cmd *cobra.Command, args []string) error {
	target := args[0]
	threshold := flagThreshold
	if len(args) == 2 {
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil || v < 0 {
			return fmt.Errorf("invalid entropy threshold %q", args[1])
		}
		if !cmd.Flags().Changed("threshold") {
			threshold = v
		}
	}
	if threshold < 0 {
		return fmt.Errorf("invalid --threshold %v", threshold)
	}
	if _, ok := types.ParseConfidence(flagFailOn); !ok {
		return fmt.Errorf("invalid --fail-on %q: want low, medium or high", flagFailOn)
	}
	if flagJSON && flagSARIF {
		return fmt.Errorf("--json and --sarif are mutually exclusive")
	}

	s, err := loadSettings(target)
	if err != nil {
		return err
	}
	cat, err := s.catalog(flagEnable, flagDisable)
	if err != nil {
		return err
	}
	timeout, err := s.timeout(flagTimeout)
	if err != nil {
		return err
	}
	opts := engine.Options{
		EntropyThreshold: pickFloat(threshold, s.local.EntropyThreshold, s.global.EntropyThreshold),
		MaxBytes:         pickInt64(flagMaxBytes, s.local.MaxBytes, s.global.MaxBytes),
		Timeout:          timeout,
		Redact:           pickBool(flagRedact, s.local.Redact, s.global.Redact),
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = defaultScanMaxBytes
	}

	eng := engine.New(cat, log())
	start := time.Now()
	var res types.ScanResult
	if target == "-" {
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), opts.MaxBytes+1))
		if err != nil {
			res = types.Failed(flagStdinName, fmt.Sprintf("Error reading file: %v", err))
		} else {
			res = eng.ScanText(cmd.Context(), flagStdinName, data, opts)
		}
	} else {
		res = eng.Scan(cmd.Context(), target, opts)
	}
	elapsed := time.Since(start)
	log().Debug("scan finished", "file", res.File, "findings", res.TotalFindings, "duration", elapsed)

	out := cmd.OutOrStdout()
	switch {
	case flagJSON:
		if err := report.WriteJSON(out, res, flagPretty); err != nil {
			return err
		}
	case flagSARIF:
		if err := report.WriteSARIF(out, []types.ScanResult{res}, cat.Rules(), version); err != nil {
			return err
		}
	default:
		f := stdoutFile(cmd)
		report.PrintResult(out, res, report.PrintOptions{
			Color:        report.ColorEnabled(f, s.noColor()),
			Width:        report.TerminalWidth(f),
			ShowSecrets:  flagShowSecrets,
			Duration:     elapsed,
			FilesScanned: 1,
		})
	}
	return exitWith(report.ExitCode(res, flagFailOn))
}
