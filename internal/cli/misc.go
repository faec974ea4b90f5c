package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newMiscCommand builds the hidden `cl misc` helper used by shell
// completion and fzf pipelines.
func newMiscCommand(app *App) *cobra.Command {
	var alias, namespace string
	var describe, fzf bool

	cmd := &cobra.Command{
		Use:    "misc",
		Hidden: true,
		Short:  "Internal helper for shell completion and fzf pipelines",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Store.Find(alias, namespace)
			if err != nil {
				return fmt.Errorf("cannot find the command: %w", err)
			}

			switch {
			case fzf:
				fmt.Fprintf(app.stdout, "%s.%s\t%s\n", c.Namespace, c.Alias, c.Command)
			case describe:
				fmt.Fprintf(app.stdout, "%s %s\n", CmdStyle.Render(c.Alias), SubtitleStyle.Render("("+c.Namespace+")"))
			default:
				fmt.Fprintln(app.stdout, c.Command)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&alias, "alias", "a", "", "alias to look up")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "restrict lookup to this namespace")
	cmd.Flags().BoolVarP(&describe, "describe", "d", false, "print a colorized one-line description")
	cmd.Flags().BoolVarP(&fzf, "fzf", "f", false, "print an fzf-friendly line")
	_ = cmd.MarkFlagRequired("alias")
	return cmd
}
