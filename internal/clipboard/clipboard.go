// Package clipboard wraps github.com/atotto/clipboard behind a small
// Provider interface so the TUI's yank feature can be tested without a
// real system clipboard.
package clipboard

import "github.com/atotto/clipboard"

// Provider copies text to the system clipboard.
type Provider interface {
	WriteAll(text string) error
}

type systemProvider struct{}

// New returns the production Provider, backed by the OS clipboard.
func New() Provider {
	return systemProvider{}
}

func (systemProvider) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
