// Package scaffold generates a feature from an archetype: it renders every
// template the manifest declares and writes the results under a target
// directory.
package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/aegisarch/cli/internal/aggregator"
	"github.com/aegisarch/cli/internal/archetype"
	oerrors "github.com/aegisarch/cli/internal/errors"
	"github.com/aegisarch/cli/internal/naming"
	"github.com/aegisarch/cli/internal/output"
	"github.com/aegisarch/cli/internal/render"
)

// Output path placeholders, replaced literally.
const (
	placeholderName       = "{{name}}"
	placeholderPascalName = "{{pascal_name}}"
)

// Generator runs scaffolds.
type Generator struct {
	opts Options
}

// NewGenerator creates a generator with the given options.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Scaffold runs one scaffold with opts.
func Scaffold(opts Options) (*Result, error) {
	return NewGenerator(opts).Generate()
}

// Generate renders and writes every file of the archetype in manifest order.
// The first failure stops the run; files already written stay on disk.
// Existing output files are overwritten unless NoClobber is set.
func (g *Generator) Generate() (*Result, error) {
	names := naming.Normalize(g.opts.FeatureName)
	flog := output.FeatureLogger(names.Snake)

	store := archetype.NewStore(g.opts.StoreRoot)
	manifest, err := store.Load(g.opts.Archetype)
	if err != nil {
		return nil, err
	}

	flog.Debug("loaded archetype", "archetype", manifest.Name, "manifest", manifest.Path, "files", len(manifest.Files))
	if output.DebugEnabled() {
		flog.Debug("file specs\n" + spew.Sdump(manifest.Files))
	}

	targetDir, err := filepath.Abs(g.opts.TargetDir)
	if err != nil {
		return nil, oerrors.NewIOError("resolving target directory", g.opts.TargetDir, err)
	}

	renderer := g.opts.Renderer
	if renderer == nil {
		engine, err := render.NewEngine(render.WithBaseDir(store.Dir(g.opts.Archetype)))
		if err != nil {
			return nil, oerrors.NewIOError("preparing template engine", store.Dir(g.opts.Archetype), err)
		}
		renderer = engine
	}

	outputs := make([]string, len(manifest.Files))
	for i, spec := range manifest.Files {
		outputs[i] = filepath.Join(targetDir, filepath.FromSlash(OutputPath(spec.Output, names)))
	}

	if g.opts.NoClobber {
		if err := checkClobber(outputs); err != nil {
			return nil, err
		}
	}

	ctx := render.NewContext(names.Snake, names.Pascal, g.opts.Description)
	result := &Result{
		Manifest:  manifest,
		Snake:     names.Snake,
		Pascal:    names.Pascal,
		TargetDir: targetDir,
		Files:     make([]GeneratedFile, 0, len(manifest.Files)),
	}

	for i, spec := range manifest.Files {
		text, err := store.ReadTemplate(g.opts.Archetype, spec)
		if err != nil {
			return nil, err
		}

		content, err := renderer.Render(spec.Template, text, ctx)
		if err != nil {
			return nil, err
		}

		if err := writeFile(outputs[i], content); err != nil {
			return nil, err
		}

		flog.Debug("wrote file", "layer", spec.Layer, "path", outputs[i])
		result.Files = append(result.Files, GeneratedFile{Layer: spec.Layer, Path: outputs[i]})
	}

	if g.opts.UpdateAggregators && g.opts.Archetype == HexagonalArchetype {
		modified, err := aggregator.Merge(targetDir, names.Snake, aggregator.Options{Match: g.opts.AggregatorMatch})
		if err != nil {
			return nil, err
		}
		result.Aggregators = modified
	}

	return result, nil
}

// OutputPath substitutes the feature names into an output pattern. Only the
// exact {{name}} and {{pascal_name}} tokens are replaced; any other text,
// including other template syntax, is kept as is.
func OutputPath(pattern string, names naming.Names) string {
	out := strings.ReplaceAll(pattern, placeholderName, names.Snake)
	return strings.ReplaceAll(out, placeholderPascalName, names.Pascal)
}

func checkClobber(paths []string) error {
	for _, path := range paths {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return oerrors.NewConflictError(path)
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return oerrors.NewIOError("checking output", path, err)
		}
	}
	return nil
}

func writeFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oerrors.NewIOError("creating directory", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return oerrors.NewIOError("writing file", path, err)
	}
	return nil
}
