package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/rvigo/cl/internal/metadata"
)

// newRootCommand builds the full command tree over app. With no subcommand,
// the root command launches the TUI.
func newRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cl",
		Short: "An interactive command-alias manager",
		Long: TitleStyle.Render("cl") + SubtitleStyle.Render(" - store, find, and run your shell aliases") + `

cl keeps frequently used shell commands as namespaced aliases with named
parameters, and lets you browse, run, and edit them from an interactive
terminal UI or straight from the command line.

` + SubtitleStyle.Render("Examples:") + `
  cl                        launch the interactive TUI
  cl exec build -n work     run the "build" alias in the "work" namespace
  cl add "echo hi"          store a new command
  cl config show            show the effective preferences`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}

	root.AddCommand(newExecCommand(app))
	root.AddCommand(newShareCommand(app))
	root.AddCommand(newConfigCommand(app))
	root.AddCommand(newAddCommand(app))
	root.AddCommand(newMiscCommand(app))
	return root
}

// Execute builds the production App, wires the command tree, and runs it
// through fang for styled help/usage/error rendering and signal-aware
// execution.
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		os.Exit(1)
	}

	root := newRootCommand(app)
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(metadata.String()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
