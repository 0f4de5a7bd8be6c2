package vibeshield

import (
	"github.com/spf13/cobra"

	"github.com/vibeshield/vibeshield/internal/detectors"
	"github.com/vibeshield/vibeshield/internal/remediation"
	"github.com/vibeshield/vibeshield/internal/report"
)

var flagRulesJSON bool

// ruleInfo is the JSON shape of one listed rule.
type ruleInfo struct {
	Type     string `json:"type"`
	Label    string `json:"label"`
	Prefix   string `json:"prefix,omitempty"`
	Generic  bool   `json:"generic"`
	Baseline string `json:"baseline"`
	EnvVar   string `json:"env_var"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the active detection rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(".")
			if err != nil {
				return err
			}
			cat, err := s.catalog(flagEnable, flagDisable)
			if err != nil {
				return err
			}
			if flagRulesJSON {
				return report.WriteJSON(cmd.OutOrStdout(), listRules(cat), true)
			}
			return report.PrintRules(cmd.OutOrStdout(), cat)
		},
	}
	cmd.Flags().BoolVar(&flagRulesJSON, "json", false, "print rules as JSON")
	cmd.Flags().StringVar(&flagEnable, "enable", "", "only list these rules (comma-separated types or globs)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "hide these rules (comma-separated types or globs)")
	rootCmd.AddCommand(cmd)
}

func listRules(cat *detectors.Catalog) []ruleInfo {
	out := make([]ruleInfo, 0, cat.Len())
	for _, r := range cat.Rules() {
		info := ruleInfo{
			Type:     r.Type,
			Label:    r.Label,
			Generic:  r.Generic,
			Baseline: string(r.Baseline),
			EnvVar:   remediation.EnvVarName(r.Type),
		}
		if !r.Generic {
			info.Prefix = r.Prefix()
		}
		out = append(out, info)
	}
	return out
}
