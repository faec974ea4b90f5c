package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvigo/cl/internal/config"
)

// preferenceKeys lists the preference keys accepted by get/set, in display
// order for show.
var preferenceKeys = []string{"quiet-mode", "log-level", "highlight-matches"}

// newConfigCommand builds `cl config show|get|set`: preferences are loaded
// once per invocation and, for set, written straight through to disk — no
// partial in-memory state survives past the process.
func newConfigCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cl's preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newConfigShowCommand(app))
	cmd.AddCommand(newConfigGetCommand(app))
	cmd.AddCommand(newConfigSetCommand(app))
	return cmd
}

func newConfigShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := app.Config.Load()
			if err != nil {
				return fmt.Errorf("cannot load config: %w", err)
			}
			fmt.Fprintln(app.stdout, TitleStyle.Render("Preferences"))
			for _, key := range preferenceKeys {
				value, _ := preferenceValue(prefs, key)
				fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render(key), SuccessStyle.Render(value))
			}
			return nil
		},
	}
}

func newConfigGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a single preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := app.Config.Load()
			if err != nil {
				return fmt.Errorf("cannot load config: %w", err)
			}
			value, ok := preferenceValue(prefs, args[0])
			if !ok {
				return fmt.Errorf("unknown preference key %q", args[0])
			}
			fmt.Fprintln(app.stdout, value)
			return nil
		},
	}
}

func newConfigSetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a single preference and persist it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := app.Config.Load()
			if err != nil {
				return fmt.Errorf("cannot load config: %w", err)
			}
			if err := setPreference(&prefs, args[0], args[1]); err != nil {
				return err
			}
			if err := app.Config.Save(prefs); err != nil {
				return fmt.Errorf("cannot save config: %w", err)
			}
			fmt.Fprintf(app.stdout, "%s set %s = %s\n", SuccessStyle.Render("✓"), args[0], args[1])
			return nil
		},
	}
}

func preferenceValue(prefs config.Preferences, key string) (string, bool) {
	switch key {
	case "quiet-mode":
		return fmt.Sprintf("%v", prefs.QuietMode), true
	case "log-level":
		return string(prefs.LogLevel), true
	case "highlight-matches":
		return fmt.Sprintf("%v", prefs.HighlightMatches), true
	default:
		return "", false
	}
}

func setPreference(prefs *config.Preferences, key, value string) error {
	switch key {
	case "quiet-mode":
		prefs.QuietMode = value == "true" || value == "1"
	case "log-level":
		switch config.LogLevel(value) {
		case config.LogLevelDebug, config.LogLevelInfo, config.LogLevelError:
			prefs.LogLevel = config.LogLevel(value)
		default:
			return fmt.Errorf("invalid log-level %q: must be debug, info, or error", value)
		}
	case "highlight-matches":
		prefs.HighlightMatches = value == "true" || value == "1"
	default:
		return fmt.Errorf("unknown preference key %q: valid keys are %v", key, preferenceKeys)
	}
	return nil
}
