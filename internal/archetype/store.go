package archetype

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	oerrors "github.com/aegisarch/cli/internal/errors"
)

// Store reads archetypes from a root directory. It holds no cache; every
// call reads the filesystem again.
type Store struct {
	root string
}

// NewStore creates a store rooted at root.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the directory of the named archetype.
func (s *Store) Dir(name string) string {
	return filepath.Join(s.root, name)
}

// List parses every archetype under the root, sorted by name. Directories
// without a manifest are skipped. A malformed manifest aborts the listing.
func (s *Store) List() ([]*Manifest, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, oerrors.NewIOError("reading archetypes directory", s.root, err)
	}

	var result []*Manifest
	for _, entry := range entries {
		dir := filepath.Join(s.root, entry.Name())

		// Stat follows symlinks so linked archetype directories are found.
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		path, ok, err := findManifest(dir)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		m, err := ParseManifestFile(path)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// Names returns the names of every listed archetype.
func (s *Store) Names() ([]string, error) {
	manifests, err := s.List()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(manifests))
	for _, m := range manifests {
		names = append(names, m.Name)
	}
	return names, nil
}

// Load parses the manifest of the named archetype. An unknown name yields a
// not-found error listing the archetypes that do exist.
func (s *Store) Load(name string) (*Manifest, error) {
	if !validName(name) {
		return nil, s.notFound(name)
	}

	path, ok, err := findManifest(s.Dir(name))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.notFound(name)
	}

	return ParseManifestFile(path)
}

// ReadTemplate reads the template a file spec references.
func (s *Store) ReadTemplate(archetype string, spec FileSpec) (string, error) {
	path := filepath.Join(s.Dir(archetype), spec.Template)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", oerrors.NewIOError("reading template", path, err)
	}
	return string(data), nil
}

func (s *Store) notFound(name string) error {
	available, listErr := s.Names()
	return oerrors.NewArchetypeNotFoundError(name, available, listErr)
}

// List parses every archetype under root. See Store.List.
func List(root string) ([]*Manifest, error) {
	return NewStore(root).List()
}

// Load parses the named archetype under root. See Store.Load.
func Load(root, name string) (*Manifest, error) {
	return NewStore(root).Load(name)
}

// findManifest returns the first manifest file present in dir.
func findManifest(dir string) (string, bool, error) {
	for _, name := range ManifestFileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			return path, true, nil
		case err == nil, errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
			continue
		default:
			return "", false, oerrors.NewIOError("checking manifest", path, err)
		}
	}
	return "", false, nil
}

// validName rejects names that would escape the store root.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
