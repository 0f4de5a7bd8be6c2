package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/vibeshield/vibeshield/internal/engine"
	"github.com/vibeshield/vibeshield/internal/remediation"
	"github.com/vibeshield/vibeshield/internal/types"
)

// PrintOptions controls human-readable output.
type PrintOptions struct {
	Color        bool
	Width        int
	ShowSecrets  bool
	Duration     time.Duration
	FilesScanned int
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	secretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sevHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	sevMedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sevLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

type painter struct {
	color bool
}

func (p painter) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p painter) confidence(c types.Confidence) string {
	label := fmt.Sprintf("%-6s", c)
	switch c {
	case types.ConfHigh:
		return p.paint(sevHighStyle, label)
	case types.ConfMedium:
		return p.paint(sevMedStyle, label)
	default:
		return p.paint(sevLowStyle, label)
	}
}

// PrintResult writes a human-readable report for one file.
func PrintResult(w io.Writer, r types.ScanResult, opts PrintOptions) {
	printBody(w, painter{color: opts.Color}, r, opts)
	if r.Success {
		printFooter(w, r.Findings, opts)
	}
}

// PrintSweep writes the human-readable report for every reported file
// followed by one summary.
func PrintSweep(w io.Writer, s engine.SweepResult, opts PrintOptions) {
	p := painter{color: opts.Color}
	if len(s.Results) == 0 {
		fmt.Fprintln(w, "No secrets found ✅")
	}
	var all []types.Finding
	for i, r := range s.Results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printBody(w, p, r, opts)
		all = append(all, r.Findings...)
	}
	opts.FilesScanned = s.FilesScanned
	if opts.Duration == 0 {
		opts.Duration = s.Duration
	}
	printFooter(w, all, opts)
}

func printBody(w io.Writer, p painter, r types.ScanResult, opts PrintOptions) {
	if !r.Success {
		fmt.Fprintf(w, "%s %s: %s\n", p.paint(errorStyle, "✗"), r.File, r.ErrorText())
		return
	}
	header := r.File
	if r.Language != nil {
		header += p.paint(dimStyle, " ("+*r.Language+")")
	}
	fmt.Fprintln(w, p.paint(titleStyle, "VibeShield")+" "+header)
	if r.TotalFindings == 0 {
		fmt.Fprintln(w, "No secrets found ✅")
		return
	}
	for _, f := range r.Findings {
		printFinding(w, p, r.File, f, opts)
	}
}

func printFinding(w io.Writer, p painter, file string, f types.Finding, opts PrintOptions) {
	secret := f.Secret
	if !opts.ShowSecrets {
		secret = engine.Mask(secret)
	}
	where := fmt.Sprintf("%s:%d", file, f.Line)
	fmt.Fprintf(w, "  %s %-20s %s  %s\n", p.confidence(f.Confidence), f.Type, where, p.paint(secretStyle, secret))

	line := f.LineContent
	if !opts.ShowSecrets {
		line = strings.ReplaceAll(line, f.Secret, engine.Mask(f.Secret))
	}
	line = truncate(line, opts.Width-6)
	if p.color {
		line = highlightLine(line, file)
	}
	fmt.Fprintf(w, "      %s\n", line)

	hint := "move to " + remediation.EnvVarName(f.Type)
	if v := f.Variable(); v != "" {
		hint = v + ": " + hint
	}
	fmt.Fprintf(w, "      %s %s\n", p.paint(hintStyle, "→"), p.paint(dimStyle, fmt.Sprintf("%s (entropy %.3f)", hint, f.Entropy)))
}

func printFooter(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if opts.Duration <= 0 && opts.FilesScanned <= 0 && len(findings) == 0 {
		return
	}
	high, med, low := countConfidence(findings)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (high: %d, medium: %d, low: %d)\n", len(findings), high, med, low)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
}

func countConfidence(findings []types.Finding) (high, med, low int) {
	for _, f := range findings {
		switch f.Confidence {
		case types.ConfHigh:
			high++
		case types.ConfMedium:
			med++
		default:
			low++
		}
	}
	return high, med, low
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	if width <= 1 || utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-1]) + "…"
}

func highlightLine(line string, filename string) string {
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		ext := filepath.Ext(filename)
		if ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		return line // No highlighting for unknown file types
	}

	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return line
	}
	return strings.TrimRight(buf.String(), "\n")
}
