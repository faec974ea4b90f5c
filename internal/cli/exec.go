package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rvigo/cl/internal/executor"
	"github.com/rvigo/cl/internal/substitution"
)

// newExecCommand builds `cl exec <alias> [-- ARGS...]`: load the store,
// find the alias, substitute named parameters, then hand the rendered
// string to the Executor.
func newExecCommand(app *App) *cobra.Command {
	var namespace string
	var dryRun bool
	var quiet bool

	cmd := &cobra.Command{
		Use:     "exec <alias>",
		Aliases: []string{"x", "X"},
		Short:   "Run a stored command by alias",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := args[0]

			var rest []string
			if dashAt := cmd.ArgsLenAtDash(); dashAt >= 0 {
				rest = args[dashAt:]
			}

			c, err := app.Store.Find(alias, namespace)
			if err != nil {
				return fmt.Errorf("cannot find the command: %w", err)
			}

			rendered, err := substitution.Render(c.Command, rest)
			if err != nil {
				return fmt.Errorf("cannot prepare the command: %w", err)
			}

			result, err := app.Executor.Run(cmd.Context(), rendered, executor.Options{
				Quiet:  quiet || app.Prefs.QuietMode,
				DryRun: dryRun,
				Stdout: app.stdout,
				Stderr: app.stderr,
			})
			if err != nil {
				return fmt.Errorf("cannot run the command: %w", err)
			}
			if result.ExitCode != 0 {
				os.Exit(result.ExitCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "restrict lookup to this namespace")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "print the rendered command without executing it")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the child command's stdout")
	return cmd
}
