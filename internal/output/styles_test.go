package output

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestLayerStyle(t *testing.T) {
	tests := []struct {
		layer  string
		wantFG lipgloss.TerminalColor
	}{
		{"domain", ColorGreen},
		{"core", ColorGreen},
		{"Port", ColorYellow},
		{"adapter", ColorMagenta},
		{"test", ColorBlue},
	}

	for _, tt := range tests {
		t.Run(tt.layer, func(t *testing.T) {
			style := LayerStyle(tt.layer)
			assert.True(t, style.GetBold())
			assert.Equal(t, tt.wantFG, style.GetForeground())
		})
	}

	t.Run("unknown layer is bold without color", func(t *testing.T) {
		style := LayerStyle("script")
		assert.True(t, style.GetBold())
		assert.Equal(t, lipgloss.NoColor{}, style.GetForeground())
	})
}

func TestPrinter_Plain(t *testing.T) {
	p := NewPrinter(false)

	assert.Equal(t, "[DOMAIN] /tmp/x/src/domain/billing.rs", p.FileLine("domain", "/tmp/x/src/domain/billing.rs"))
	assert.Equal(t, "[CLI]", p.LayerTag("cli"))
	assert.Equal(t, "✔ done", p.Checkmark("done"))
	assert.Equal(t, "name", p.Noun("name"))
	assert.Equal(t, "title", p.Heading("title"))
}

func TestPrinter_ColorKeepsText(t *testing.T) {
	p := NewPrinter(true)

	line := p.FileLine("port", "src/ports/billing_port.rs")
	assert.Contains(t, line, "[PORT]")
	assert.Contains(t, line, "src/ports/billing_port.rs")
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}), "buffers are never terminals")
}
