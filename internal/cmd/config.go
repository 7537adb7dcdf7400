package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aegisarch/cli/internal/config"
	oerrors "github.com/aegisarch/cli/internal/errors"
	"github.com/aegisarch/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the aegis CLI.`,
	}

	c.AddCommand(newConfigInitCmd(cfg))
	c.AddCommand(newConfigPathCmd(cfg))
	c.AddCommand(newConfigVetCmd(cfg))

	return c
}

func newConfigInitCmd(cfg *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new aegis configuration file",
		Long: `Create a new aegis configuration file with default values.

The configuration file is created at ~/.aegis/config.yaml by default.
Use --config to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(c *cobra.Command, cfg *GlobalConfig, force bool) error {
	path, err := config.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return oerrors.NewIOError("checking config file", path, err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Kind:     oerrors.ErrValidation,
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return oerrors.NewIOError("creating config directory", dir, err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	header := []byte("# aegis CLI configuration\n# Environment variables (AEGIS_*) override these values.\n\n")
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return oerrors.NewIOError("writing config file", path, err)
	}

	p := output.NewPrinter(output.IsTTY(c.OutOrStdout()))
	fmt.Fprintln(c.OutOrStdout(), p.Checkmark("Config file created: "+path))
	return nil
}

func newConfigPathCmd(cfg *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved config file and archetypes directory",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			w := c.OutOrStdout()
			fmt.Fprintf(w, "config:      %s\n", cfg.ConfigPath)
			fmt.Fprintf(w, "archetypes:  %s (%s)\n", cfg.ArchetypesDir, cfg.ArchetypesSource)
			return nil
		},
	}
}

func newConfigVetCmd(cfg *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			path, err := config.ExpandPath(cfg.ConfigPath)
			if err != nil {
				return fmt.Errorf("expanding config path: %w", err)
			}

			exists, err := config.ConfigFileExists(path)
			if err != nil {
				return oerrors.NewIOError("checking config file", path, err)
			}
			if !exists {
				return &oerrors.DetailError{
					Type:     "config not found",
					Message:  "no configuration file",
					Location: path,
					Hint:     "Run 'aegis config init' to create one.",
					Kind:     oerrors.ErrNotFound,
				}
			}

			if err := config.ValidateFile(path); err != nil {
				return &oerrors.DetailError{
					Type:     "validation failed",
					Message:  "invalid configuration",
					Location: path,
					Kind:     oerrors.ErrValidation,
					Cause:    err,
				}
			}

			p := output.NewPrinter(output.IsTTY(c.OutOrStdout()))
			fmt.Fprintln(c.OutOrStdout(), p.Checkmark("Config is valid: "+path))
			return nil
		},
	}
}
