package vibeshield

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vibeshield/vibeshield/internal/config"
	"github.com/vibeshield/vibeshield/internal/detectors"
)

var (
	cfgPreset          string
	cfgOutput          string
	cfgForce           bool
	cfgThreshold       float64
	cfgMaxBytes        int64
	cfgTimeout         string
	cfgWorkers         int
	cfgNoColor         bool
	cfgDefaultExcludes bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .vibeshield.yml starter config",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgPreset, "preset", "standard", "rule preset: providers | standard")
	initCmd.Flags().StringVar(&cfgOutput, "output", ".vibeshield.yml", "output file path")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
	initCmd.Flags().Float64Var(&cfgThreshold, "threshold", detectors.DefaultThreshold, "entropy threshold")
	initCmd.Flags().Int64Var(&cfgMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	initCmd.Flags().StringVar(&cfgTimeout, "timeout", "", "per-file scan timeout")
	initCmd.Flags().IntVar(&cfgWorkers, "workers", 0, "sweep workers (0=GOMAXPROCS)")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgDefaultExcludes, "default-excludes", true, "enable default ignore patterns")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	var disable *string
	switch strings.ToLower(cfgPreset) {
	case "providers":
		// provider prefixes only, no entropy-gated generic literals
		disable = strPtr("generic")
	case "standard", "":
	default:
		return fmt.Errorf("unknown preset %q: want providers or standard", cfgPreset)
	}

	fc := config.FileConfig{
		EntropyThreshold: floatPtr(cfgThreshold),
		MaxBytes:         int64Ptr(cfgMaxBytes),
		Timeout:          optStrPtr(cfgTimeout),
		Workers:          intPtr(cfgWorkers),
		Disable:          disable,
		NoColor:          boolPtr(cfgNoColor),
		DefaultExcludes:  boolPtr(cfgDefaultExcludes),
	}
	if err := fc.Validate(); err != nil {
		return err
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !cfgForce {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(cfgOutput, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
		}
		return err
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func strPtr(s string) *string { return &s }
func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
