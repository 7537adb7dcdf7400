package archetype

// Manifest describes one archetype.
type Manifest struct {
	// Name identifies the archetype. It is expected to equal the name of the
	// directory it was loaded from; a mismatch is tolerated.
	Name string `json:"name" yaml:"name"`

	// DisplayName is the human-readable title.
	DisplayName string `json:"displayName" yaml:"displayName"`

	// Description explains what the archetype generates.
	Description string `json:"description" yaml:"description"`

	// UseWhen lists situations the archetype fits. Display only.
	UseWhen []string `json:"useWhen" yaml:"useWhen"`

	// AvoidWhen lists situations the archetype does not fit. Display only.
	AvoidWhen []string `json:"avoidWhen" yaml:"avoidWhen"`

	// Files are rendered and written in this order.
	Files []FileSpec `json:"files" yaml:"files"`

	// Path is the manifest file the archetype was loaded from.
	Path string `json:"-" yaml:"-"`
}

// FileSpec maps one template to one output path.
type FileSpec struct {
	// Template is the template path relative to the archetype directory.
	Template string `json:"template" yaml:"template"`

	// Output is the output path pattern relative to the target directory.
	// It may contain the {{name}} and {{pascal_name}} placeholders.
	Output string `json:"output" yaml:"output"`

	// Layer tags the file for grouped reporting (domain, port, adapter, ...).
	Layer string `json:"layer" yaml:"layer"`
}

// rawManifest is the decoding shape. It accepts the legacy snake_case keys
// use_when and avoid_when next to the camelCase ones.
type rawManifest struct {
	Name            string     `json:"name"`
	DisplayName     string     `json:"displayName"`
	Description     string     `json:"description"`
	UseWhen         []string   `json:"useWhen"`
	AvoidWhen       []string   `json:"avoidWhen"`
	LegacyUseWhen   []string   `json:"use_when"`
	LegacyAvoidWhen []string   `json:"avoid_when"`
	Files           []FileSpec `json:"files"`
}

func (r rawManifest) manifest(path string) *Manifest {
	m := &Manifest{
		Name:        r.Name,
		DisplayName: r.DisplayName,
		Description: r.Description,
		UseWhen:     r.UseWhen,
		AvoidWhen:   r.AvoidWhen,
		Files:       r.Files,
		Path:        path,
	}
	if m.UseWhen == nil {
		m.UseWhen = r.LegacyUseWhen
	}
	if m.AvoidWhen == nil {
		m.AvoidWhen = r.LegacyAvoidWhen
	}
	if m.UseWhen == nil {
		m.UseWhen = []string{}
	}
	if m.AvoidWhen == nil {
		m.AvoidWhen = []string{}
	}
	if m.Files == nil {
		m.Files = []FileSpec{}
	}
	return m
}
