package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jangala-dev/tinygo-irdetect/irdetect"
)

// Receiver-LED palette
var (
	ColorIRRed    = lipgloss.Color("#FF3B30")
	ColorAmber    = lipgloss.Color("#FFAA00")
	ColorDim      = lipgloss.Color("#7A3A36")
	ColorText     = lipgloss.Color("#E6E6E6")
	ColorBarBg    = lipgloss.Color("#2A0A08")
	ColorUnknown  = lipgloss.Color("#8E8E93")
	ColorBorder   = lipgloss.Color("#A0322C")
	ColorHighlite = lipgloss.Color("#FFD60A")
)

// Pre-built styles
var (
	StyleTitleBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorIRRed).
			Bold(true).
			Padding(0, 1)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorText).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorIRRed).
			Bold(true)

	StyleUnknown = lipgloss.NewStyle().
			Foreground(ColorUnknown).
			Italic(true)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorAmber)

	StyleBits = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleLatest = lipgloss.NewStyle().
			Foreground(ColorHighlite).
			Bold(true)

	StylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// Bits renders cmd as 16 binary digits, most significant first.
func Bits(cmd irdetect.Command) string {
	return fmt.Sprintf("%016b", uint16(cmd))
}

// CommandLine renders one decoded word: label (or "?"), decimal, hex, bits.
// With plain set, no styling is applied.
func CommandLine(labels irdetect.Labels, cmd irdetect.Command, plain bool) string {
	name, ok := labels.Lookup(cmd)
	value := fmt.Sprintf("%5d  0x%04x", uint16(cmd), uint16(cmd))
	if plain {
		if !ok {
			name = "?"
		}
		return fmt.Sprintf("%-7s %s  %s", name, value, Bits(cmd))
	}
	label := StyleLabel.Width(7).Render(name)
	if !ok {
		label = StyleUnknown.Width(7).Render("?")
	}
	return label + " " + StyleValue.Render(value) + "  " + StyleBits.Render(Bits(cmd))
}
