package cli

import (
	"context"
	"fmt"

	"github.com/rvigo/cl/internal/config"
	"github.com/rvigo/cl/internal/logging"
	"github.com/rvigo/cl/internal/tui"
)

// runTUI launches the interactive program. Unlike every other command it
// builds its own logging.ModeTUI logger rather than reusing app.Logger: the
// TUI must never write log lines to stdout, since stdout is the terminal UI
// itself.
func runTUI(ctx context.Context, app *App) error {
	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}
	logger, err := logging.New(logging.Options{
		Dir:   dir,
		Level: string(app.Prefs.LogLevel),
		Mode:  logging.ModeTUI,
	})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	return tui.Run(ctx, app.Store, app.Prefs, app.Clipboard, app.Executor, logger)
}
