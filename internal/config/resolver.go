package config

import (
	"os"
	"path/filepath"

	"github.com/aegisarch/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceExecutable indicates value was found next to the executable.
	SourceExecutable ConfigSource = "executable"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records how one configuration value was resolved.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) AEGIS_CONFIG env, (3) ~/.aegis/config.yaml default.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	if opts.FlagValue != "" {
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	} else if envValue != "" {
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	} else {
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveArchetypesDirOptions contains options for archetype root resolution.
type ResolveArchetypesDirOptions struct {
	// FlagValue is the --archetypes-dir flag value (empty if not set).
	FlagValue string

	// ConfigValue is archetypesDir from the config file (empty if not set).
	ConfigValue string

	// ExePath is the path of the running executable. Empty skips the
	// executable-relative candidates.
	ExePath string

	// Exists reports whether a candidate directory exists. Defaults to
	// checking the real filesystem.
	Exists func(path string) bool
}

// ResolveArchetypesDirResult contains the resolved archetype root.
type ResolveArchetypesDirResult struct {
	// Dir is the resolved archetype root.
	Dir string
	// Source indicates where the root came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveArchetypesDir resolves the archetype root using precedence:
// (1) --archetypes-dir flag, (2) AEGIS_ARCHETYPES_DIR env, (3) config
// archetypesDir, (4) <exeDir>/archetypes, (5) <exeDir>/../archetypes,
// (6) "archetypes" relative to the working directory.
//
// Candidates 4 and 5 are evaluated lazily and used only if Exists reports
// them present. The last fallback is returned without any check.
func ResolveArchetypesDir(opts ResolveArchetypesDirOptions) ResolveArchetypesDirResult {
	result := ResolveArchetypesDirResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvArchetypesDir)
	configValue := opts.ConfigValue
	if configValue == envValue {
		// Viper merges env into the loaded config; don't report it twice.
		configValue = ""
	}

	explicit := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
	}
	for _, c := range explicit {
		if c.value == "" {
			continue
		}
		if result.Dir == "" {
			result.Dir = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	if result.Dir != "" {
		return result
	}

	exists := opts.Exists
	if exists == nil {
		exists = dirExists
	}

	for _, candidate := range executableCandidates(opts.ExePath) {
		dir := candidate()
		if exists(dir) {
			result.Dir = dir
			result.Source = SourceExecutable
			return result
		}
	}

	result.Dir = "archetypes"
	result.Source = SourceDefault
	return result
}

// executableCandidates returns the executable-relative archetype roots in
// lookup order.
func executableCandidates(exePath string) []func() string {
	if exePath == "" {
		return nil
	}
	exeDir := filepath.Dir(exePath)
	return []func() string{
		func() string { return filepath.Join(exeDir, "archetypes") },
		func() string { return filepath.Join(exeDir, "..", "archetypes") },
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
