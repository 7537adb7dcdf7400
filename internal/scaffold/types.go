package scaffold

import (
	"github.com/aegisarch/cli/internal/aggregator"
	"github.com/aegisarch/cli/internal/archetype"
	"github.com/aegisarch/cli/internal/render"
)

// HexagonalArchetype is the archetype whose runs also update the layer
// aggregator files.
const HexagonalArchetype = "rust_hexagonal"

// Options configures one scaffold run.
type Options struct {
	// StoreRoot is the directory holding the archetypes.
	StoreRoot string

	// FeatureName is the raw feature name; it is normalized before use.
	FeatureName string

	// Description is passed to templates verbatim.
	Description string

	// Archetype names the archetype to generate from.
	Archetype string

	// TargetDir is the directory output paths are resolved against.
	TargetDir string

	// UpdateAggregators enables the aggregator pass for HexagonalArchetype.
	UpdateAggregators bool

	// AggregatorMatch selects aggregator duplicate detection.
	AggregatorMatch aggregator.Match

	// NoClobber fails the run before anything is written when an output
	// file already exists. By default existing files are overwritten.
	NoClobber bool

	// Renderer renders file bodies. Defaults to a pongo2 engine rooted at
	// the archetype directory.
	Renderer render.Renderer
}

// GeneratedFile records one written file.
type GeneratedFile struct {
	// Layer is the File Spec's layer tag.
	Layer string `json:"layer" yaml:"layer"`

	// Path is the absolute output path.
	Path string `json:"path" yaml:"path"`
}

// Result is the outcome of a scaffold run.
type Result struct {
	// Manifest is the archetype that was used.
	Manifest *archetype.Manifest

	// Snake and Pascal are the normalized feature names.
	Snake  string
	Pascal string

	// TargetDir is the absolute target directory.
	TargetDir string

	// Files are the written files in manifest order.
	Files []GeneratedFile

	// Aggregators are the aggregator files created or modified.
	Aggregators []string
}
