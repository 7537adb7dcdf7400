// Package render is the boundary to the template engine used for file bodies.
package render

import (
	"github.com/flosch/pongo2/v6"
)

// Context variable names available to every template.
const (
	KeyName        = "name"
	KeyPascalName  = "pascal_name"
	KeyDescription = "description"
)

// Context maps template variable names to values. A Context is built once
// per scaffold run and only read afterwards.
type Context map[string]string

// NewContext builds the render context for one feature.
func NewContext(snake, pascal, description string) Context {
	return Context{
		KeyName:        snake,
		KeyPascalName:  pascal,
		KeyDescription: description,
	}
}

// pongo converts the context into a fresh engine context so the engine can
// never mutate the shared map.
func (c Context) pongo() pongo2.Context {
	out := make(pongo2.Context, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Renderer renders template text against a Context.
type Renderer interface {
	// Render renders text. name identifies the template in errors.
	Render(name, text string, ctx Context) (string, error)
}
