package vibeshield

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibeshield/vibeshield/internal/ignore"
)

var flagIgnoreRoot string

func init() {
	cmd := &cobra.Command{
		Use:   "ignore <pattern>...",
		Short: "Add paths to .vibeshieldignore",
		Long: "Append doublestar patterns to the .vibeshieldignore file that sweeps\n" +
			"consult. Patterns already present are skipped.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range args {
				changed, err := ignore.Append(flagIgnoreRoot, p)
				if err != nil {
					return err
				}
				if changed {
					fmt.Fprintf(out, "Added %s\n", p)
				} else {
					fmt.Fprintf(out, "Already ignored: %s\n", p)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagIgnoreRoot, "root", ".", "directory holding "+ignore.FileName)
	rootCmd.AddCommand(cmd)
}
