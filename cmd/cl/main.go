// Command cl is an interactive command-alias manager: it stores shell
// snippets as namespaced aliases with named parameters and lets you browse,
// run, and edit them from a terminal UI or straight from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/rvigo/cl/internal/cli"
)

func main() {
	defer recoverPanic()
	cli.Execute()
}

// recoverPanic is the process-wide panic guard: it prints a formatted
// message to stderr and exits non-zero rather than letting a panic unwind
// past main with a raw stack trace.
func recoverPanic() {
	if r := recover(); r != nil {
		fmt.Fprintf(os.Stderr, "cl: unrecoverable error: %v\n", r)
		os.Exit(1)
	}
}
