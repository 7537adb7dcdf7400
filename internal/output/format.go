package output

import (
	"fmt"
	"strings"
)

// Format specifies how listings are rendered.
type Format string

const (
	// FormatText renders human-readable sections.
	FormatText Format = "text"

	// FormatTable renders a bordered table.
	FormatTable Format = "table"

	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"

	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{"text", "table", "json", "yaml"}
}

// ParseFormat parses s into a Format. Empty means FormatText.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}
