package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects when ANSI styling is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode normalizes a color mode string; empty means auto.
func ParseColorMode(value string) (ColorMode, error) {
	normalized := ColorMode(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return normalized, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (expected auto|always|never)", value)
	}
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// defaultIsTerminal inspects a writer for TTY support.
func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

// useColor resolves a mode against the destination writer.
func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

// styles groups the lipgloss styles used for console output.
type styles struct {
	color    bool
	header   lipgloss.Style
	cell     lipgloss.Style
	border   lipgloss.Style
	banner   lipgloss.Style
	errText  lipgloss.Style
	warnText lipgloss.Style
	muted    lipgloss.Style
}

// newStyles builds styles bound to w.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	s := styles{
		color:    color,
		header:   r.NewStyle().Padding(0, 1),
		cell:     r.NewStyle().Padding(0, 1),
		border:   r.NewStyle(),
		banner:   r.NewStyle(),
		errText:  r.NewStyle(),
		warnText: r.NewStyle(),
		muted:    r.NewStyle(),
	}
	if color {
		s.header = s.header.Bold(true).Foreground(lipgloss.Color("252"))
		s.border = s.border.Foreground(lipgloss.Color("240"))
		s.banner = s.banner.Bold(true).Foreground(lipgloss.Color("39"))
		s.errText = s.errText.Foreground(lipgloss.Color("196"))
		s.warnText = s.warnText.Foreground(lipgloss.Color("214"))
		s.muted = s.muted.Foreground(lipgloss.Color("244"))
	}
	return s
}

// paint applies style only when color output is enabled.
func (s styles) paint(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}
