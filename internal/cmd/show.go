package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aegisarch/cli/internal/archetype"
	oerrors "github.com/aegisarch/cli/internal/errors"
	"github.com/aegisarch/cli/internal/output"
)

// NewShowCmd creates the show command.
func NewShowCmd(cfg *GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show <archetype>",
		Short: "Show one archetype and the files it generates",
		Long: `Show one archetype: its metadata, every template it renders and the
output path each template is written to.

Examples:
  aegis show rust_hexagonal
  aegis show python_script -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return oerrors.NewValidationError(err.Error(), "--output", "")
			}
			if f == output.FormatTable {
				return oerrors.NewValidationError("table output is not supported by show", "--output", "Use text, json or yaml.")
			}

			m, err := archetype.Load(cfg.ArchetypesDir, args[0])
			if err != nil {
				return err
			}
			return writeManifest(c.OutOrStdout(), f, m)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", "text", "Output format: text, json, yaml")

	return c
}

func writeManifest(w io.Writer, f output.Format, m *archetype.Manifest) error {
	switch f {
	case output.FormatJSON:
		return writeJSON(w, m)
	case output.FormatYAML:
		return writeYAML(w, m)
	}

	p := output.NewPrinter(output.IsTTY(w))
	writeManifestSummary(w, p, m)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Files:")
	layout := make([]output.LayoutEntry, 0, len(m.Files))
	for _, spec := range m.Files {
		fmt.Fprintf(w, "  %s %s %s %s\n", p.LayerTag(spec.Layer), spec.Template, p.Dim("->"), p.Noun(spec.Output))
		layout = append(layout, output.LayoutEntry{Path: spec.Output, Layer: spec.Layer})
	}

	if len(layout) > 0 {
		fmt.Fprintln(w)
		fmt.Fprint(w, output.RenderLayout(p, "<target>", layout))
	}
	return nil
}
