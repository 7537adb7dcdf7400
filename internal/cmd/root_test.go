package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aegisarch/cli/internal/config"
)

// isolate points HOME at a temp dir and clears AEGIS_* overrides so tests
// never read the developer's configuration.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvArchetypesDir, "")
	t.Setenv("AEGIS_SCAFFOLD_NOCLOBBER", "")
	t.Setenv("AEGIS_AGGREGATORS_MATCH", "")
	return home
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--timestamps=false"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "aegis", root.Use)
	for _, flag := range []string{"config", "archetypes-dir", "verbose", "timestamps"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"scaffold", "list", "show", "config", "version"}, names)
}

func TestInitializeGlobals_ArchetypesDirPrecedence(t *testing.T) {
	home := isolate(t)
	configFile := filepath.Join(home, ".aegis", "config.yaml")
	writeConfig(t, configFile, "archetypesDir: /from/config\n")

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "/from/config (config)")

	t.Setenv(config.EnvArchetypesDir, "/from/env")
	out, err = execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "/from/env (env)")

	out, err = execute(t, "--archetypes-dir", "/from/flag", "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "/from/flag (flag)")
	assert.Contains(t, out, configFile)
}

func TestInitializeGlobals_UnreadableConfigFallsBack(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, ".aegis", "config.yaml"), "log: [unclosed\n")

	_, err := execute(t, "version")
	assert.NoError(t, err, "a broken config must not block commands")
}

func TestVersionCmd(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "aegis version")
}
