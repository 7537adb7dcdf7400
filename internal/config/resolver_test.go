package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue: "/flag/path/config.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/path/config.yaml", result.Shadowed[SourceEnv])
	assert.Contains(t, result.Shadowed, SourceDefault)
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/env/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceEnv, result.Source)
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv(EnvConfig, "")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)

	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, paths.ConfigFile, result.ConfigPath)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

// existsOnly returns an Exists predicate that accepts exactly the given
// paths and records every path it was asked about.
func existsOnly(asked *[]string, present ...string) func(string) bool {
	set := make(map[string]bool, len(present))
	for _, p := range present {
		set[filepath.Clean(p)] = true
	}
	return func(p string) bool {
		*asked = append(*asked, p)
		return set[filepath.Clean(p)]
	}
}

func TestResolveArchetypesDir_ExplicitPrecedence(t *testing.T) {
	exe := filepath.Join("/opt", "aegis", "bin", "aegis")

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvArchetypesDir, "/env/archetypes")
		var asked []string

		result := ResolveArchetypesDir(ResolveArchetypesDirOptions{
			FlagValue:   "/flag/archetypes",
			ConfigValue: "/config/archetypes",
			ExePath:     exe,
			Exists:      existsOnly(&asked),
		})

		assert.Equal(t, "/flag/archetypes", result.Dir)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/env/archetypes", result.Shadowed[SourceEnv])
		assert.Equal(t, "/config/archetypes", result.Shadowed[SourceConfig])
		assert.Empty(t, asked, "explicit overrides are not existence-checked")
	})

	t.Run("env over config", func(t *testing.T) {
		t.Setenv(EnvArchetypesDir, "/env/archetypes")

		result := ResolveArchetypesDir(ResolveArchetypesDirOptions{ConfigValue: "/config/archetypes"})

		assert.Equal(t, "/env/archetypes", result.Dir)
		assert.Equal(t, SourceEnv, result.Source)
		assert.Equal(t, "/config/archetypes", result.Shadowed[SourceConfig])
	})

	t.Run("config value merged from env is not reported twice", func(t *testing.T) {
		t.Setenv(EnvArchetypesDir, "/env/archetypes")

		result := ResolveArchetypesDir(ResolveArchetypesDirOptions{ConfigValue: "/env/archetypes"})

		assert.Equal(t, SourceEnv, result.Source)
		assert.Empty(t, result.Shadowed)
	})

	t.Run("config", func(t *testing.T) {
		t.Setenv(EnvArchetypesDir, "")

		result := ResolveArchetypesDir(ResolveArchetypesDirOptions{ConfigValue: "/config/archetypes"})

		assert.Equal(t, "/config/archetypes", result.Dir)
		assert.Equal(t, SourceConfig, result.Source)
	})
}

func TestResolveArchetypesDir_FallbackChain(t *testing.T) {
	exe := filepath.Join("/opt", "aegis", "bin", "aegis")
	besideExe := filepath.Join("/opt", "aegis", "bin", "archetypes")
	aboveExe := filepath.Join("/opt", "aegis", "archetypes")

	t.Run("beside executable", func(t *testing.T) {
		t.Setenv(EnvArchetypesDir, "")
		var asked []string

		result := ResolveArchetypesDir(ResolveArchetypesDirOptions{
			ExePath: exe,
			Exists:  existsOnly(&asked, besideExe, aboveExe),
		})

		assert.Equal(t, besideExe, result.Dir)
		assert.Equal(t, SourceExecutable, result.Source)
		assert.Len(t, asked, 1, "later candidates are never evaluated")
	})

	t.Run("parent of executable", func(t *testing.T) {
		t.Setenv(EnvArchetypesDir, "")
		var asked []string

		result := ResolveArchetypesDir(ResolveArchetypesDirOptions{
			ExePath: exe,
			Exists:  existsOnly(&asked, aboveExe),
		})

		assert.Equal(t, aboveExe, filepath.Clean(result.Dir))
		assert.Equal(t, SourceExecutable, result.Source)
		assert.Len(t, asked, 2)
	})

	t.Run("working directory fallback is unchecked", func(t *testing.T) {
		t.Setenv(EnvArchetypesDir, "")
		var asked []string

		result := ResolveArchetypesDir(ResolveArchetypesDirOptions{
			ExePath: exe,
			Exists:  existsOnly(&asked),
		})

		assert.Equal(t, "archetypes", result.Dir)
		assert.Equal(t, SourceDefault, result.Source)
		assert.Len(t, asked, 2)
	})

	t.Run("no executable path", func(t *testing.T) {
		t.Setenv(EnvArchetypesDir, "")
		var asked []string

		result := ResolveArchetypesDir(ResolveArchetypesDirOptions{Exists: existsOnly(&asked)})

		assert.Equal(t, "archetypes", result.Dir)
		assert.Empty(t, asked)
	})
}
