package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
)

var (
	boldGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	yellowBold = color.New(color.FgYellow, color.Bold).SprintFunc()
	magenta    = color.New(color.FgMagenta).SprintFunc()
	red        = color.New(color.FgRed).SprintFunc()
)

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(w io.Writer, title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Fprintln(w, cyanBold("╔"+border+"╗"))
	fmt.Fprintln(w, cyanBold("║"+centerText(title, width)+"║"))
	fmt.Fprintln(w, cyanBold("╚"+border+"╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(w io.Writer, label string, value interface{}) {
	fmt.Fprintf(w, "  %s: %v\n", yellowBold(label), value)
}

// fmtNum prints one decimal, or the unavailable marker for NaN and infinities.
func fmtNum(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "—"
	}
	return fmt.Sprintf("%.1f", v)
}

// spectrumBar draws a 30-cell bar with a marker at pct (0-100).
func spectrumBar(pct float64) string {
	const width = 30
	pos := int(math.Round(pct / 100 * (width - 1)))
	pos = max(0, min(width-1, pos))
	return "[" + strings.Repeat("─", pos) + "●" + strings.Repeat("─", width-1-pos) + "]"
}
