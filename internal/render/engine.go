package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	oerrors "github.com/aegisarch/cli/internal/errors"
)

var autoescapeOnce sync.Once

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	baseDir string
}

// WithBaseDir makes {% include %} and {% extends %} resolve relative to dir.
func WithBaseDir(dir string) Option {
	return func(cfg *engineConfig) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// Engine renders Jinja/Tera-style templates with pongo2.
type Engine struct {
	set *pongo2.TemplateSet
}

// Ensure Engine implements the Renderer interface.
var _ Renderer = (*Engine)(nil)

// NewEngine constructs an Engine. Output is never HTML-escaped: templates
// produce source code, not markup.
func NewEngine(options ...Option) (*Engine, error) {
	cfg := &engineConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	autoescapeOnce.Do(func() {
		pongo2.SetAutoescape(false)
	})

	if cfg.baseDir == "" {
		return &Engine{set: pongo2.DefaultSet}, nil
	}

	loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
	if err != nil {
		return nil, fmt.Errorf("creating template loader for %s: %w", cfg.baseDir, err)
	}
	return &Engine{set: pongo2.NewSet("aegis", loader)}, nil
}

// Render parses and executes text. Parse failures, references to variables
// the context does not define, and execution failures are returned as
// template errors carrying name and the underlying diagnostic.
func (e *Engine) Render(name, text string, ctx Context) (string, error) {
	tmpl, err := e.set.FromString(text)
	if err != nil {
		return "", oerrors.NewTemplateError(name, err)
	}

	if err := checkDefined(text, ctx); err != nil {
		return "", oerrors.NewTemplateError(name, err)
	}

	out, err := tmpl.Execute(ctx.pongo())
	if err != nil {
		return "", oerrors.NewTemplateError(name, err)
	}
	return out, nil
}
