package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Every ANSI 256 color used by the CLI is named here.
var (
	// ColorCyan is used for identifiable nouns: archetypes, feature names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for domain-layer files.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for port-layer files.
	ColorYellow = lipgloss.Color("220")

	// ColorMagenta is used for adapter-layer files.
	ColorMagenta = lipgloss.Color("170")

	// ColorBlue is used for test files and table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (archetypes, feature names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (bullets, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleHeading styles section headings.
	StyleHeading = lipgloss.NewStyle().Bold(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// LayerStyle returns the style for a file layer tag. Unknown layers are
// rendered bold without color.
func LayerStyle(layer string) lipgloss.Style {
	switch strings.ToLower(layer) {
	case "domain", "core":
		return lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	case "port":
		return lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)
	case "adapter":
		return lipgloss.NewStyle().Bold(true).Foreground(ColorMagenta)
	case "test":
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	default:
		return lipgloss.NewStyle().Bold(true)
	}
}

// Printer writes report lines, applying styles only when color is enabled.
type Printer struct {
	color bool
}

// NewPrinter creates a printer. Color is typically IsTTY(w) for the
// destination writer.
func NewPrinter(color bool) Printer {
	return Printer{color: color}
}

func (p Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Noun styles an identifiable noun.
func (p Printer) Noun(s string) string {
	return p.render(StyleNoun, s)
}

// Dim styles structural chrome.
func (p Printer) Dim(s string) string {
	return p.render(StyleDim, s)
}

// Heading styles a section heading.
func (p Printer) Heading(s string) string {
	return p.render(StyleHeading, s)
}

// Summary styles a summary line.
func (p Printer) Summary(s string) string {
	return p.render(StyleSummary, s)
}

// LayerTag renders "[LAYER]" with the layer upper-cased.
func (p Printer) LayerTag(layer string) string {
	return p.render(LayerStyle(layer), "["+strings.ToUpper(layer)+"]")
}

// FileLine renders one generated file as "[LAYER] path".
func (p Printer) FileLine(layer, path string) string {
	return fmt.Sprintf("%s %s", p.LayerTag(layer), p.Noun(path))
}

// Checkmark renders a green checkmark followed by msg.
func (p Printer) Checkmark(msg string) string {
	return p.render(lipgloss.NewStyle().Foreground(ColorGreenCheck), "✔") + " " + msg
}
