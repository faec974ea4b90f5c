package cli

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rvigo/cl/internal/command"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// newAddCommand builds `cl add [COMMAND]`: append a command read from the
// positional argument or, if absent, from standard input.
func newAddCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [COMMAND]",
		Short: "Store a new command, auto-aliased from its text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Every added command lands in the same namespace regardless
			// of whether its text came from the positional argument or
			// from stdin.
			const namespace = "from_stdin"

			var text string
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				text = args[0]
			} else {
				read, err := readFirstLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("cannot read command from stdin: %w", err)
				}
				text = read
			}

			text = strings.TrimSpace(text)
			if text == "" {
				return fmt.Errorf("command must not be empty")
			}

			c := command.NewBuilder().
				Namespace(namespace).
				Alias(autoAlias(text)).
				Command(text).
				Build()
			if err := app.Store.Add(c); err != nil {
				return fmt.Errorf("cannot add the command: %w", err)
			}
			fmt.Fprintf(app.stdout, "%s added %s/%s\n", SuccessStyle.Render("✓"), c.Namespace, c.Alias)
			return nil
		},
	}
}

func readFirstLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return "", scanner.Err()
	}
	return scanner.Text(), scanner.Err()
}

// autoAlias takes the first 5 characters of text, lower-cased with any
// whitespace run collapsed to a single "-", so the store's own whitespace
// validation never rejects it.
func autoAlias(text string) string {
	runes := []rune(text)
	if len(runes) > 5 {
		runes = runes[:5]
	}
	sanitized := whitespaceRun.ReplaceAllString(string(runes), "-")
	return strings.ToLower(sanitized)
}
