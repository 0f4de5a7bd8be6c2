package vibeshield

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vibeshield/vibeshield/internal/config"
	"github.com/vibeshield/vibeshield/internal/detectors"
)

// settings holds the local and global config layers for one invocation.
// Either may be the zero FileConfig when no file exists.
type settings struct {
	local  config.FileConfig
	global config.FileConfig
}

// loadSettings reads --config when given, otherwise the repo-local config
// next to target and the global config. A missing file is fine; a broken
// one is not.
func loadSettings(target string) (settings, error) {
	var s settings
	if flagConfig != "" {
		fc, err := config.LoadFile(flagConfig)
		if err != nil {
			return s, fmt.Errorf("load config: %w", err)
		}
		s.local = fc
		return s, nil
	}
	dir := target
	if fi, err := os.Stat(target); err != nil || !fi.IsDir() {
		dir = filepath.Dir(target)
	}
	if target == "-" {
		dir = "."
	}
	if fc, err := config.LoadLocal(dir); err == nil {
		s.local = fc
	} else if !errors.Is(err, config.ErrNoConfig) {
		return s, fmt.Errorf("load config: %w", err)
	}
	if fc, err := config.LoadGlobal(); err == nil {
		s.global = fc
	} else if !errors.Is(err, config.ErrNoConfig) {
		return s, fmt.Errorf("load global config: %w", err)
	}
	return s, nil
}

// catalog builds the active rule set: built-ins, then custom rules from both
// config layers, then the enable/disable selection.
func (s settings) catalog(enable, disable string) (*detectors.Catalog, error) {
	cat := detectors.Builtin()
	for _, fc := range []config.FileConfig{s.global, s.local} {
		extra, err := fc.CustomRules()
		if err != nil {
			return nil, err
		}
		if len(extra) == 0 {
			continue
		}
		if cat, err = cat.With(extra...); err != nil {
			return nil, err
		}
	}
	return cat.Select(
		pickString(enable, s.local.Enable, s.global.Enable),
		pickString(disable, s.local.Disable, s.global.Disable),
	)
}

// timeout resolves --timeout against the config layers.
func (s settings) timeout(cli string) (d time.Duration, err error) {
	if cli != "" {
		d, err = time.ParseDuration(cli)
		if err != nil || d < 0 {
			return 0, fmt.Errorf("invalid --timeout %q", cli)
		}
		return d, nil
	}
	if d, err = s.local.TimeoutDuration(); err != nil || d > 0 {
		return d, err
	}
	return s.global.TimeoutDuration()
}

// noColor reports whether styling is turned off by flag or config.
func (s settings) noColor() bool {
	return pickBool(flagNoColor, s.local.NoColor, s.global.NoColor)
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickFloat(cli float64, local, global *float64) float64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// pickBoolFlag is pickBool for flags whose default is true: an explicit
// flag wins either way, otherwise config, otherwise the flag default.
func pickBoolFlag(cmd *cobra.Command, name string, cli bool, local, global *bool) bool {
	if cmd.Flags().Changed(name) {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

// stdoutFile returns the command's output as a file when it is one, for
// terminal detection.
func stdoutFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.OutOrStdout().(*os.File)
	return f
}

func errFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.ErrOrStderr().(*os.File)
	return f
}
