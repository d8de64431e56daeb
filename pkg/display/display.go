// Package display renders text for terminals: wrapping, indentation,
// boxed sections and two-column tables, with ANSI color styling that
// switches itself off when output is not a terminal.
package display

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// =============================================================================
// Color support detection
// =============================================================================

var (
	colorOnce sync.Once
	colorOn   bool
)

func detectColor() bool {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// ColorEnabled reports whether styled output should carry ANSI codes.
// Detection runs once per process.
func ColorEnabled() bool {
	colorOnce.Do(func() {
		colorOn = detectColor()
	})
	return colorOn
}

// =============================================================================
// ANSI styling
// =============================================================================

type Style string

const (
	Bold   Style = "1"
	Dim    Style = "2"
	Red    Style = "31"
	Green  Style = "32"
	Yellow Style = "33"
	Cyan   Style = "36"
)

// Apply wraps s in the style's escape codes when color is enabled,
// otherwise returns s unchanged.
func (st Style) Apply(s string) string {
	if !ColorEnabled() {
		return s
	}
	return "\x1b[" + string(st) + "m" + s + "\x1b[0m"
}

// =============================================================================
// Layout
// =============================================================================

// Wrap breaks s into lines of at most width runes, splitting on spaces
// where possible. Words longer than width are split hard.
func Wrap(s string, width int) []string {
	if width < 1 {
		return []string{s}
	}
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			for len([]rune(word)) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				runes := []rune(word)
				lines = append(lines, string(runes[:width]))
				word = string(runes[width:])
			}
			switch {
			case line == "":
				line = word
			case len([]rune(line))+1+len([]rune(word)) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// Indent prefixes every line of s with n spaces.
func Indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// Box draws a unicode-bordered box around lines, with an optional title in
// the top border. Content wider than any given line widens the box.
func Box(title string, lines []string) string {
	width := len([]rune(title)) + 2
	for _, line := range lines {
		if w := len([]rune(line)); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString("┌")
	if title != "" {
		b.WriteString("─ " + title + " ")
		b.WriteString(strings.Repeat("─", width-len([]rune(title))-1))
	} else {
		b.WriteString(strings.Repeat("─", width+2))
	}
	b.WriteString("┐\n")
	for _, line := range lines {
		b.WriteString("│ ")
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", width-len([]rune(line))))
		b.WriteString(" │\n")
	}
	b.WriteString("└")
	b.WriteString(strings.Repeat("─", width+2))
	b.WriteString("┘")
	return b.String()
}

// Table renders two columns, left column padded to the widest entry.
func Table(rows [][2]string) string {
	width := 0
	for _, row := range rows {
		if w := len([]rune(row[0])); w > width {
			width = w
		}
	}
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(row[0])
		b.WriteString(strings.Repeat(" ", width-len([]rune(row[0]))))
		b.WriteString("  ")
		b.WriteString(row[1])
	}
	return b.String()
}
