package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	out := NewTable("NAME", "DESCRIPTION").
		Row("rust_hexagonal", "Layered feature").
		Row("python_script", "One-off script").
		String()

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "rust_hexagonal")
	assert.Contains(t, out, "One-off script")
}
