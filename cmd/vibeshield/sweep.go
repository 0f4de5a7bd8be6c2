package vibeshield

import (
	"fmt"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vibeshield/vibeshield/internal/engine"
	"github.com/vibeshield/vibeshield/internal/report"
	"github.com/vibeshield/vibeshield/internal/types"
)

var (
	flagSweepFormat          string
	flagSweepInclude         string
	flagSweepExclude         string
	flagSweepWorkers         int
	flagSweepDefaultExcludes bool
	flagSweepThreshold       float64
	flagSweepTimeout         string
	flagSweepMaxBytes        int64
	flagSweepRedact          bool
	flagSweepFailOn          string
	flagSweepPretty          bool
	flagSweepShowSecrets     bool
	flagSweepEnable          string
	flagSweepDisable         string
)

func init() {
	cmd := &cobra.Command{
		Use:   "sweep [dir]",
		Short: "Scan every source file under a directory",
		Long: "Walk a directory tree and scan each text file concurrently. Dependency,\n" +
			"build and VCS directories, binary artifacts, oversize files and paths\n" +
			"listed in .vibeshieldignore are skipped.",
		Args: cobra.MaximumNArgs(1),
		RunE: runSweep,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagSweepFormat, "format", "text", "output format: text|table|json|sarif")
	cmd.Flags().StringVar(&flagSweepInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagSweepExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().IntVar(&flagSweepWorkers, "workers", 0, "concurrent file scans (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&flagSweepDefaultExcludes, "default-excludes", true, "skip dependency, build and binary paths")
	cmd.Flags().Float64Var(&flagSweepThreshold, "threshold", 0, "entropy threshold in bits per character (default 3.5)")
	cmd.Flags().StringVar(&flagSweepTimeout, "timeout", "", "per-file scan timeout (e.g. 2s)")
	cmd.Flags().Int64Var(&flagSweepMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().BoolVar(&flagSweepRedact, "redact", false, "mask secrets in the output")
	cmd.Flags().StringVar(&flagSweepFailOn, "fail-on", "low", "lowest confidence that makes the exit status 1: low|medium|high")
	cmd.Flags().BoolVar(&flagSweepPretty, "pretty", false, "indent JSON output")
	cmd.Flags().BoolVar(&flagSweepShowSecrets, "show-secrets", false, "print secrets unmasked in text and table output")
	cmd.Flags().StringVar(&flagSweepEnable, "enable", "", "only run these rules (comma-separated types or globs)")
	cmd.Flags().StringVar(&flagSweepDisable, "disable", "", "skip these rules (comma-separated types or globs)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	format := strings.ToLower(flagSweepFormat)
	switch format {
	case "text", "table", "json", "sarif":
	default:
		return fmt.Errorf("unknown --format %q: want text, table, json or sarif", flagSweepFormat)
	}
	if _, ok := types.ParseConfidence(flagSweepFailOn); !ok {
		return fmt.Errorf("invalid --fail-on %q: want low, medium or high", flagSweepFailOn)
	}
	if flagSweepThreshold < 0 {
		return fmt.Errorf("invalid --threshold %v", flagSweepThreshold)
	}

	s, err := loadSettings(root)
	if err != nil {
		return err
	}
	cat, err := s.catalog(flagSweepEnable, flagSweepDisable)
	if err != nil {
		return err
	}
	timeout, err := s.timeout(flagSweepTimeout)
	if err != nil {
		return err
	}
	maxBytes := flagSweepMaxBytes
	if !cmd.Flags().Changed("max-bytes") {
		maxBytes = pickInt64(0, s.local.MaxBytes, s.global.MaxBytes)
		if maxBytes == 0 {
			maxBytes = flagSweepMaxBytes
		}
	}
	cfg := engine.SweepConfig{
		Options: engine.Options{
			EntropyThreshold: pickFloat(flagSweepThreshold, s.local.EntropyThreshold, s.global.EntropyThreshold),
			MaxBytes:         maxBytes,
			Timeout:          timeout,
			Redact:           pickBool(flagSweepRedact, s.local.Redact, s.global.Redact),
		},
		Include:         pickString(flagSweepInclude, s.local.Include, s.global.Include),
		Exclude:         pickString(flagSweepExclude, s.local.Exclude, s.global.Exclude),
		DefaultExcludes: pickBoolFlag(cmd, "default-excludes", flagSweepDefaultExcludes, s.local.DefaultExcludes, s.global.DefaultExcludes),
		Workers:         pickInt(flagSweepWorkers, s.local.Workers, s.global.Workers),
	}

	errOut := cmd.ErrOrStderr()
	progress := false
	if f := errFile(cmd); f != nil && isatty.IsTerminal(f.Fd()) && format != "json" && format != "sarif" {
		progress = true
		cfg.Progress = func(rel string) {
			fmt.Fprintf(errOut, "\r\033[Kscanning %s", rel)
		}
	}

	res, err := engine.New(cat, log()).Sweep(cmd.Context(), root, cfg)
	if progress {
		fmt.Fprint(errOut, "\r\033[K")
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	f := stdoutFile(cmd)
	popts := report.PrintOptions{
		Color:       report.ColorEnabled(f, s.noColor()),
		Width:       report.TerminalWidth(f),
		ShowSecrets: flagSweepShowSecrets,
	}
	switch format {
	case "json":
		err = report.WriteJSON(out, res, flagSweepPretty)
	case "sarif":
		err = report.WriteSARIF(out, res.Results, cat.Rules(), version)
	case "table":
		err = report.PrintSweepTable(out, res, popts)
	default:
		report.PrintSweep(out, res, popts)
	}
	if err != nil {
		return err
	}
	return exitWith(report.SweepExitCode(res, flagSweepFailOn))
}
