// Package cmd provides CLI command implementations.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aegisarch/cli/internal/config"
	"github.com/aegisarch/cli/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during
// PersistentPreRunE. It is passed into every sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded configuration, defaults applied.
	Config *config.Config

	// ConfigPath is the resolved config file path.
	ConfigPath string

	// ArchetypesDir is the resolved archetype root.
	ArchetypesDir string

	// ArchetypesSource tells where ArchetypesDir came from.
	ArchetypesSource config.ConfigSource

	// Verbose is the --verbose flag.
	Verbose bool
}

type rootFlags struct {
	config        string
	archetypesDir string
	verbose       bool
	timestamps    bool
}

// NewRootCmd creates the root command for the aegis CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "aegis",
		Short: "Archetype-driven feature scaffolding",
		Long: `aegis generates the files of a new feature from a named archetype.

An archetype is a directory holding a manifest and the templates it lists.
Each template is rendered with the feature's name and description and
written under the target directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: AEGIS_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.archetypesDir, "archetypes-dir", "", "Archetypes directory (env: AEGIS_ARCHETYPES_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewScaffoldCmd(cfg))
	rootCmd.AddCommand(NewListCmd(cfg))
	rootCmd.AddCommand(NewShowCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging, loads configuration and resolves the
// archetype root.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *GlobalConfig) error {
	cfg.Verbose = flags.verbose

	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.config})
	if err != nil {
		return err
	}
	cfg.ConfigPath = configPath.ConfigPath

	loader := config.NewLoader()
	loaded, loadErr := loader.Load(cfg.ConfigPath)
	if loadErr != nil {
		// Commands that don't need config (config init --force) must still work.
		loaded = config.DefaultConfig()
	}
	cfg.Config = loaded

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring unreadable config file", "path", cfg.ConfigPath, "error", loadErr)
	}

	var configArchetypes string
	if loader.InFile("archetypesDir") {
		configArchetypes = loaded.ArchetypesDir
	}
	exePath, _ := os.Executable()
	archetypes := config.ResolveArchetypesDir(config.ResolveArchetypesDirOptions{
		FlagValue:   flags.archetypesDir,
		ConfigValue: configArchetypes,
		ExePath:     exePath,
	})
	cfg.ArchetypesDir = archetypes.Dir
	cfg.ArchetypesSource = archetypes.Source

	if flags.verbose {
		config.LogResolvedValues([]config.ResolvedValue{
			{Key: "config", Value: configPath.ConfigPath, Source: configPath.Source, Shadowed: shadowed(configPath.Shadowed)},
			{Key: "archetypesDir", Value: archetypes.Dir, Source: archetypes.Source, Shadowed: shadowed(archetypes.Shadowed)},
			{Key: "aggregators.match", Value: loaded.Aggregators.Match, Source: loader.Source("aggregators.match")},
			{Key: "scaffold.noClobber", Value: loaded.Scaffold.NoClobber, Source: loader.Source("scaffold.noClobber")},
		})
	}

	return nil
}

func shadowed(in map[config.ConfigSource]string) map[config.ConfigSource]any {
	out := make(map[config.ConfigSource]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
