// Package testutil provides test helpers for archetype and scaffold tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// ArchetypesPath returns the absolute path to the archetypes shipped with the
// repository, found by walking up from the test's working directory.
func ArchetypesPath(t *testing.T, parts ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	dir := wd
	for {
		candidate := filepath.Join(dir, "archetypes")
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			if _, err := os.Stat(candidate); err == nil {
				return filepath.Join(append([]string{candidate}, parts...)...)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find archetypes directory from %s", wd)
		}
		dir = parent
	}
}

// CopyArchetypes copies the shipped archetypes into a temporary store root.
func CopyArchetypes(t *testing.T) string {
	t.Helper()
	src := ArchetypesPath(t)
	dst := t.TempDir()

	if err := copyDir(src, dst); err != nil {
		t.Fatalf("failed to copy archetypes: %v", err)
	}
	return dst
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of dir/name, failing the test if unreadable.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

// FileSpec mirrors one manifest file entry for fixture construction.
type FileSpec struct {
	Template string `json:"template"`
	Output   string `json:"output"`
	Layer    string `json:"layer"`
}

// Archetype describes a fixture archetype written by WriteArchetype.
type Archetype struct {
	Name        string
	DisplayName string
	Description string
	UseWhen     []string
	AvoidWhen   []string
	Files       []FileSpec

	// Templates maps template paths to their content.
	Templates map[string]string
}

// WriteArchetype writes a manifest.json plus templates under root/<a.Name>
// and returns the archetype directory.
func WriteArchetype(t *testing.T, root string, a Archetype) string {
	t.Helper()
	dir := filepath.Join(root, a.Name)

	manifest := map[string]any{
		"name":        a.Name,
		"displayName": a.DisplayName,
		"description": a.Description,
		"files":       a.Files,
	}
	if a.UseWhen != nil {
		manifest["useWhen"] = a.UseWhen
	}
	if a.AvoidWhen != nil {
		manifest["avoidWhen"] = a.AvoidWhen
	}
	if a.Files == nil {
		manifest["files"] = []FileSpec{}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		t.Fatalf("marshaling manifest for %s: %v", a.Name, err)
	}
	WriteFile(t, dir, "manifest.json", string(data))

	for name, content := range a.Templates {
		WriteFile(t, dir, name, content)
	}
	return dir
}

func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(dstPath, info.Mode())
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(dstPath, data, info.Mode())
	})
}
