package archetype

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	oerrors "github.com/aegisarch/cli/internal/errors"
)

// ManifestFileNames are the manifest names looked up in an archetype
// directory, in order. The first one present wins.
var ManifestFileNames = []string{"manifest.json", "manifest.yaml", "manifest.yml"}

// ParseManifestFile reads and parses the manifest at path.
func ParseManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oerrors.NewIOError("reading manifest", path, err)
	}
	return ParseManifest(data, path)
}

// ParseManifest parses manifest content. JSON and YAML are both accepted;
// path is only used to attribute errors.
func ParseManifest(data []byte, path string) (*Manifest, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, oerrors.NewManifestError(path, err)
	}

	if err := validateJSON(jsonData); err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) && len(schemaErr.Issues) > 0 {
			return nil, &oerrors.DetailError{
				Type:     "invalid manifest",
				Message:  "manifest does not match the archetype schema",
				Location: path,
				Field:    schemaErr.Issues[0].Path,
				Kind:     oerrors.ErrManifest,
				Cause:    schemaErr,
			}
		}
		return nil, oerrors.NewManifestError(path, err)
	}

	var raw rawManifest
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, oerrors.NewManifestError(path, fmt.Errorf("decoding manifest: %w", err))
	}

	return raw.manifest(path), nil
}
