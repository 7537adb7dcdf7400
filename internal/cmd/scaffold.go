package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aegisarch/cli/internal/aggregator"
	oerrors "github.com/aegisarch/cli/internal/errors"
	"github.com/aegisarch/cli/internal/output"
	"github.com/aegisarch/cli/internal/scaffold"
)

type scaffoldFlags struct {
	name        string
	description string
	archetype   string
	target      string
	noModUpdate bool
	noClobber   bool
}

// NewScaffoldCmd creates the scaffold command.
func NewScaffoldCmd(cfg *GlobalConfig) *cobra.Command {
	var flags scaffoldFlags

	c := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate a feature from an archetype",
		Long: `Generate a feature from an archetype.

The feature name is normalized to snake_case (name) and PascalCase
(pascal_name); both and the description are available to templates.

Existing files at the output paths are overwritten without confirmation.
Use --no-clobber to fail instead. A failed run leaves the files written
before the failure on disk.

For the rust_hexagonal archetype the module files src/domain/mod.rs,
src/ports/mod.rs and src/adapters/mod.rs are updated to declare the new
modules unless --no-mod-update is given.

Examples:
  # Scaffold a hexagonal feature in the current directory
  aegis scaffold -n billing -d "Invoices and payments"

  # Use another archetype and target directory
  aegis scaffold -n report-job -d "Nightly report" -a python_script -t ./tools`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runScaffold(c, cfg, &flags)
		},
	}

	c.Flags().StringVarP(&flags.name, "name", "n", "", "Feature name (required)")
	c.Flags().StringVarP(&flags.description, "description", "d", "", "Feature description (required)")
	c.Flags().StringVarP(&flags.archetype, "archetype", "a", scaffold.HexagonalArchetype, "Archetype to generate from")
	c.Flags().StringVarP(&flags.target, "target", "t", ".", "Target directory")
	c.Flags().BoolVar(&flags.noModUpdate, "no-mod-update", false, "Do not update aggregator module files")
	c.Flags().BoolVar(&flags.noClobber, "no-clobber", false, "Fail instead of overwriting existing files (config: scaffold.noClobber)")

	return c
}

func runScaffold(c *cobra.Command, cfg *GlobalConfig, flags *scaffoldFlags) error {
	if strings.TrimSpace(flags.name) == "" {
		return oerrors.NewValidationError("feature name must not be empty", "--name", "Pass the feature name with -n/--name.")
	}
	if !c.Flags().Changed("description") {
		return oerrors.NewValidationError("feature description is required", "--description", "Pass a description with -d/--description.")
	}

	match, err := aggregator.ParseMatch(cfg.Config.Aggregators.Match)
	if err != nil {
		return err
	}

	noClobber := cfg.Config.Scaffold.NoClobber
	if c.Flags().Changed("no-clobber") {
		noClobber = flags.noClobber
	}

	w := c.OutOrStdout()
	p := output.NewPrinter(output.IsTTY(w))

	fmt.Fprintf(w, "Scaffolding feature %s (archetype: %s, target: %s)\n",
		p.Noun(flags.name), p.Noun(flags.archetype), p.Noun(flags.target))

	result, err := scaffold.Scaffold(scaffold.Options{
		StoreRoot:         cfg.ArchetypesDir,
		FeatureName:       flags.name,
		Description:       flags.description,
		Archetype:         flags.archetype,
		TargetDir:         flags.target,
		UpdateAggregators: !flags.noModUpdate,
		AggregatorMatch:   match,
		NoClobber:         noClobber,
	})
	if err != nil {
		return err
	}

	printScaffoldReport(w, p, result)
	return nil
}

func printScaffoldReport(w io.Writer, p output.Printer, result *scaffold.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Heading(result.Manifest.DisplayName))
	fmt.Fprintf(w, "  %s\n\n", result.Manifest.Description)

	for _, f := range result.Files {
		fmt.Fprintln(w, p.FileLine(f.Layer, f.Path))
	}

	if len(result.Aggregators) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Updated module files:")
		for _, path := range result.Aggregators {
			fmt.Fprintf(w, "  %s\n", p.Noun(path))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Checkmark(p.Summary(fmt.Sprintf("Created %d files for feature '%s'", len(result.Files), result.Snake))))
}
