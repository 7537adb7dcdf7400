package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aegisarch/cli/internal/archetype"
	oerrors "github.com/aegisarch/cli/internal/errors"
	"github.com/aegisarch/cli/internal/output"
)

// NewListCmd creates the list command.
func NewListCmd(cfg *GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List available archetypes",
		Long: `List every archetype in the archetypes directory, sorted by name,
with guidance on when to use and avoid each one.

Examples:
  aegis list
  aegis list -o table
  aegis list --archetypes-dir ./archetypes -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return oerrors.NewValidationError(err.Error(), "--output", "")
			}

			manifests, err := archetype.List(cfg.ArchetypesDir)
			if err != nil {
				return err
			}
			return writeManifests(c.OutOrStdout(), f, cfg.ArchetypesDir, manifests)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", "text", "Output format: text, table, json, yaml")

	return c
}

func writeManifests(w io.Writer, f output.Format, root string, manifests []*archetype.Manifest) error {
	switch f {
	case output.FormatJSON:
		return writeJSON(w, manifests)
	case output.FormatYAML:
		return writeYAML(w, manifests)
	}

	if len(manifests) == 0 {
		fmt.Fprintf(w, "No archetypes found in %s\n", root)
		return nil
	}

	p := output.NewPrinter(output.IsTTY(w))

	if f == output.FormatTable {
		tbl := output.NewTable("NAME", "DISPLAY NAME", "FILES", "DESCRIPTION")
		for _, m := range manifests {
			tbl.Row(m.Name, m.DisplayName, strconv.Itoa(len(m.Files)), m.Description)
		}
		fmt.Fprintln(w, tbl.String())
		return nil
	}

	fmt.Fprintf(w, "Available archetypes in %s:\n", p.Noun(root))
	for _, m := range manifests {
		fmt.Fprintln(w)
		writeManifestSummary(w, p, m)
	}
	return nil
}

func writeManifestSummary(w io.Writer, p output.Printer, m *archetype.Manifest) {
	fmt.Fprintf(w, "%s %s %s\n", p.Noun(m.Name), p.Dim("-"), p.Heading(m.DisplayName))
	fmt.Fprintf(w, "  %s\n", m.Description)
	writeBullets(w, p, "Use when:", m.UseWhen)
	writeBullets(w, p, "Avoid when:", m.AvoidWhen)
}

func writeBullets(w io.Writer, p output.Printer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "    %s %s\n", p.Dim("-"), item)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
