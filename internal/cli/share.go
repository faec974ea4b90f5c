package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvigo/cl/internal/share"
)

// newShareCommand builds `cl share export|import`, namespace-scoped
// import/export of the command file.
func newShareCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "share",
		Aliases: []string{"s", "S"},
		Short:   "Import or export namespaced commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newShareExportCommand(app))
	cmd.AddCommand(newShareImportCommand(app))
	return cmd
}

func newShareExportCommand(app *App) *cobra.Command {
	var path string
	var namespaces []string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write namespaced commands to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("-f/--file is required")
			}
			m := app.Store.Snapshot()
			if err := share.Export(m, namespaces, path); err != nil {
				return fmt.Errorf("cannot export commands: %w", err)
			}
			fmt.Fprintf(app.stdout, "%s exported to %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "destination file path")
	cmd.Flags().StringSliceVarP(&namespaces, "namespace", "n", nil, "restrict to these namespaces (default: all)")
	return cmd
}

func newShareImportCommand(app *App) *cobra.Command {
	var path string
	var namespaces []string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Add commands from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("-f/--file is required")
			}
			result, err := share.Import(app.Store, namespaces, path)
			if err != nil {
				return fmt.Errorf("cannot import commands: %w", err)
			}
			fmt.Fprintf(app.stdout, "%s added %d command(s)\n", SuccessStyle.Render("✓"), len(result.Added))
			for _, c := range result.Skipped {
				fmt.Fprintf(app.stdout, "%s skipped %s/%s (already exists)\n", WarningStyle.Render("!"), c.Namespace, c.Alias)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "source file path")
	cmd.Flags().StringSliceVarP(&namespaces, "namespace", "n", nil, "restrict to these namespaces (default: all)")
	return cmd
}
