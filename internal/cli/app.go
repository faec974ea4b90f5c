package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/rvigo/cl/internal/clipboard"
	"github.com/rvigo/cl/internal/config"
	"github.com/rvigo/cl/internal/executor"
	"github.com/rvigo/cl/internal/logging"
	"github.com/rvigo/cl/internal/storage"
	"github.com/rvigo/cl/internal/store"
)

// App wires the Store, Config provider, Executor, Clipboard, and Logger.
// It is the composition root for the CLI layer: every Cobra command's RunE
// receives an *App and delegates through its fields rather than reaching
// for package-level globals.
type App struct {
	Store     *store.Store
	Config    config.Provider
	Executor  *executor.Executor
	Clipboard clipboard.Provider
	Logger    *log.Logger
	Prefs     config.Preferences

	stdout io.Writer
	stderr io.Writer
}

// Dependencies defines App's injection points. Nil fields are replaced with
// production, on-disk/OS-backed defaults by NewApp; tests supply fakes to
// isolate specific services.
type Dependencies struct {
	Store     *store.Store
	Config    config.Provider
	Executor  *executor.Executor
	Clipboard clipboard.Provider
	Logger    *log.Logger
	Stdout    io.Writer
	Stderr    io.Writer
}

// NewApp builds an App, loading preferences once via deps.Config (or the
// default file-backed provider) and defaulting every other nil field to its
// production implementation.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	prefs, err := deps.Config.Load()
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	if deps.Store == nil {
		path, err := config.CommandsFilePath()
		if err != nil {
			return nil, fmt.Errorf("resolve commands file: %w", err)
		}
		adapter := storage.New(path)
		m, err := adapter.Load()
		if err != nil {
			return nil, fmt.Errorf("load commands: %w", err)
		}
		deps.Store = store.New(m.Flatten(), adapter)
	}

	if deps.Executor == nil {
		deps.Executor = executor.New()
	}
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.New()
	}
	if deps.Logger == nil {
		dir, err := config.Dir()
		if err != nil {
			return nil, fmt.Errorf("resolve config directory: %w", err)
		}
		logger, err := logging.New(logging.Options{
			Dir:   dir,
			Level: string(prefs.LogLevel),
			Mode:  logging.ModeCommand,
		})
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
		deps.Logger = logger
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Store:     deps.Store,
		Config:    deps.Config,
		Executor:  deps.Executor,
		Clipboard: deps.Clipboard,
		Logger:    deps.Logger,
		Prefs:     prefs,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}, nil
}
