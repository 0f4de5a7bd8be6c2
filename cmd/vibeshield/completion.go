package vibeshield

import (
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var flagCompletionNoDesc bool

// completionGenerators writes the completion script for each supported
// shell. desc includes flag and command descriptions where the shell
// supports them.
var completionGenerators = map[string]func(w io.Writer, desc bool) error{
	"bash": func(w io.Writer, desc bool) error {
		return rootCmd.GenBashCompletionV2(w, desc)
	},
	"zsh": func(w io.Writer, desc bool) error {
		if desc {
			return rootCmd.GenZshCompletion(w)
		}
		return rootCmd.GenZshCompletionNoDesc(w)
	},
	"fish": func(w io.Writer, desc bool) error {
		return rootCmd.GenFishCompletion(w, desc)
	},
	"powershell": func(w io.Writer, desc bool) error {
		if desc {
			return rootCmd.GenPowerShellCompletionWithDesc(w)
		}
		return rootCmd.GenPowerShellCompletion(w)
	},
}

func completionShells() []string {
	shells := make([]string, 0, len(completionGenerators))
	for s := range completionGenerators {
		shells = append(shells, s)
	}
	slices.Sort(shells)
	return shells
}

func init() {
	shells := completionShells()
	cmd := &cobra.Command{
		Use:       "completion <" + strings.Join(shells, "|") + ">",
		Short:     "Print a shell completion script for vibeshield",
		Long:      "Print a completion script for the given shell to stdout. Source it from your shell profile or write it to the shell's completion directory.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.OutOrStdout(), !flagCompletionNoDesc)
		},
		Example: `  source <(vibeshield completion bash)
  vibeshield completion zsh > "${fpath[1]}/_vibeshield"
  vibeshield completion fish --no-descriptions > ~/.config/fish/completions/vibeshield.fish`,
	}
	cmd.Flags().BoolVar(&flagCompletionNoDesc, "no-descriptions", false, "omit command and flag descriptions")
	rootCmd.AddCommand(cmd)
}
