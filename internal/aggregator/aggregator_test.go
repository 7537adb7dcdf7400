package aggregator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/aegisarch/cli/internal/errors"
	"github.com/aegisarch/cli/internal/testutil"
)

func abs(t *testing.T, dir, rel string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return p
}

func TestMerge_EmptyTargetCreatesThreeFiles(t *testing.T) {
	dir := t.TempDir()

	modified, err := Merge(dir, "billing", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		abs(t, dir, "src/domain/mod.rs"),
		abs(t, dir, "src/ports/mod.rs"),
		abs(t, dir, "src/adapters/mod.rs"),
	}, modified)

	assert.Equal(t, "pub mod billing;\n", testutil.ReadFile(t, dir, "src/domain/mod.rs"))
	assert.Equal(t, "pub mod billing_port;\n", testutil.ReadFile(t, dir, "src/ports/mod.rs"))
	assert.Equal(t, "pub mod billing_adapter;\n", testutil.ReadFile(t, dir, "src/adapters/mod.rs"))
}

func TestMerge_SecondRunIsNoop(t *testing.T) {
	dir := t.TempDir()

	_, err := Merge(dir, "billing", Options{})
	require.NoError(t, err)

	modified, err := Merge(dir, "billing", Options{})
	require.NoError(t, err)
	assert.Empty(t, modified)
	assert.Equal(t, "pub mod billing;\n", testutil.ReadFile(t, dir, "src/domain/mod.rs"))
}

func TestMerge_AppendsPreservingContent(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "src/domain/mod.rs", "pub mod orders;\n")

	modified, err := Merge(dir, "billing", Options{})
	require.NoError(t, err)
	assert.Len(t, modified, 3)

	assert.Equal(t, "pub mod orders;\npub mod billing;\n", testutil.ReadFile(t, dir, "src/domain/mod.rs"))
}

func TestMerge_InsertsMissingTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "src/domain/mod.rs", "pub mod orders;")

	_, err := Merge(dir, "billing", Options{})
	require.NoError(t, err)

	assert.Equal(t, "pub mod orders;\npub mod billing;\n", testutil.ReadFile(t, dir, "src/domain/mod.rs"))
}

func TestMerge_EmptyExistingFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "src/ports/mod.rs", "")

	_, err := Merge(dir, "billing", Options{})
	require.NoError(t, err)

	assert.Equal(t, "pub mod billing_port;\n", testutil.ReadFile(t, dir, "src/ports/mod.rs"))
}

func TestMerge_PartiallyRegistered(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "src/ports/mod.rs", "pub mod billing_port;\n")

	modified, err := Merge(dir, "billing", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		abs(t, dir, "src/domain/mod.rs"),
		abs(t, dir, "src/adapters/mod.rs"),
	}, modified)
}

func TestMerge_SubstringMatchSharpEdge(t *testing.T) {
	dir := t.TempDir()
	// A commented-out registration still contains the line.
	testutil.WriteFile(t, dir, "src/domain/mod.rs", "// pub mod bill;\n")

	modified, err := Merge(dir, "bill", Options{Entries: HexagonalSet()[:1]})
	require.NoError(t, err)
	assert.Empty(t, modified, "substring match treats the commented line as registered")

	modified, err = Merge(dir, "bill", Options{Entries: HexagonalSet()[:1], Match: MatchLine})
	require.NoError(t, err)
	assert.Len(t, modified, 1, "line match requires an exact line")
	assert.Equal(t, "// pub mod bill;\npub mod bill;\n", testutil.ReadFile(t, dir, "src/domain/mod.rs"))
}

func TestMerge_LineMatchHandlesCRLF(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "src/domain/mod.rs", "pub mod billing;\r\n")

	modified, err := Merge(dir, "billing", Options{Entries: HexagonalSet()[:1], Match: MatchLine})
	require.NoError(t, err)
	assert.Empty(t, modified)
}

func TestMerge_CustomEntries(t *testing.T) {
	dir := t.TempDir()

	modified, err := Merge(dir, "report", Options{Entries: []Entry{
		{Path: "pkg/index.txt", Format: "feature %s"},
	}})
	require.NoError(t, err)
	require.Len(t, modified, 1)
	assert.Equal(t, "feature report\n", testutil.ReadFile(t, dir, "pkg/index.txt"))
}

func TestMerge_UnreadableAggregatorIsIOError(t *testing.T) {
	dir := t.TempDir()
	// A directory where the aggregator file should be cannot be read as a file.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "domain", "mod.rs"), 0o755))

	_, err := Merge(dir, "billing", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrIO))
}

func TestParseMatch(t *testing.T) {
	m, err := ParseMatch("")
	require.NoError(t, err)
	assert.Equal(t, MatchSubstring, m)

	m, err = ParseMatch("Line")
	require.NoError(t, err)
	assert.Equal(t, MatchLine, m)

	_, err = ParseMatch("fuzzy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}
