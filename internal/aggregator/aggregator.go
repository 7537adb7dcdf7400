// Package aggregator appends feature registration lines to aggregator files,
// the per-layer module indexes that list every generated feature.
package aggregator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/aegisarch/cli/internal/errors"
	"github.com/aegisarch/cli/internal/output"
)

// Match selects how an existing registration line is detected.
type Match string

const (
	// MatchSubstring treats the line as present when it occurs anywhere in
	// the file. A longer line that contains it also counts as a match.
	MatchSubstring Match = "substring"

	// MatchLine treats the line as present only when a whole line of the
	// file equals it.
	MatchLine Match = "line"
)

// ParseMatch parses a match mode. Empty means MatchSubstring.
func ParseMatch(s string) (Match, error) {
	switch Match(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchLine:
		return MatchLine, nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown aggregator match mode %q", s),
			"aggregators.match",
			"Use 'substring' or 'line'.",
		)
	}
}

// Entry is one aggregator file and the line registered in it.
type Entry struct {
	// Path is relative to the target directory, slash-separated.
	Path string

	// Format produces the registration line; %s is the snake_case name.
	Format string
}

// Line returns the registration line for a feature.
func (e Entry) Line(snake string) string {
	return fmt.Sprintf(e.Format, snake)
}

// HexagonalSet returns the aggregators of the hexagonal-layered archetype:
// the domain, port and adapter module indexes.
func HexagonalSet() []Entry {
	return []Entry{
		{Path: "src/domain/mod.rs", Format: "pub mod %s;"},
		{Path: "src/ports/mod.rs", Format: "pub mod %s_port;"},
		{Path: "src/adapters/mod.rs", Format: "pub mod %s_adapter;"},
	}
}

// Options configures Merge.
type Options struct {
	// Entries are the aggregators to update. Defaults to HexagonalSet.
	Entries []Entry

	// Match selects duplicate detection. Defaults to MatchSubstring.
	Match Match
}

// Merge registers snake in every aggregator under targetDir and returns the
// absolute paths of the files it created or modified. Files that already
// contain the registration line are left untouched, so repeated runs are
// no-ops. Missing files and parent directories are created.
func Merge(targetDir, snake string, opts Options) ([]string, error) {
	entries := opts.Entries
	if entries == nil {
		entries = HexagonalSet()
	}

	var modified []string
	for _, entry := range entries {
		path, err := filepath.Abs(filepath.Join(targetDir, filepath.FromSlash(entry.Path)))
		if err != nil {
			return modified, oerrors.NewIOError("resolving aggregator path", entry.Path, err)
		}

		changed, err := register(path, entry.Line(snake), opts.Match)
		if err != nil {
			return modified, err
		}
		if !changed {
			output.Debug("aggregator already registers feature", "file", path)
			continue
		}
		output.Debug("registered feature in aggregator", "file", path)
		modified = append(modified, path)
	}
	return modified, nil
}

// register ensures line is present in the file at path.
func register(path, line string, match Match) (bool, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return false, oerrors.NewIOError("creating aggregator directory", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(line+"\n"), 0o644); err != nil {
			return false, oerrors.NewIOError("creating aggregator", path, err)
		}
		return true, nil
	case err != nil:
		return false, oerrors.NewIOError("reading aggregator", path, err)
	}

	if contains(string(data), line, match) {
		return false, nil
	}

	addition := line + "\n"
	if len(data) > 0 && data[len(data)-1] != '\n' {
		addition = "\n" + addition
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return false, oerrors.NewIOError("opening aggregator", path, err)
	}
	if _, err := f.WriteString(addition); err != nil {
		f.Close()
		return false, oerrors.NewIOError("appending to aggregator", path, err)
	}
	if err := f.Close(); err != nil {
		return false, oerrors.NewIOError("closing aggregator", path, err)
	}
	return true, nil
}

func contains(content, line string, match Match) bool {
	if match != MatchLine {
		return strings.Contains(content, line)
	}
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimRight(l, "\r") == line {
			return true
		}
	}
	return false
}
