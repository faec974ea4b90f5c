// Package fuzzy implements the command filter: a pure, order-independent,
// case-insensitive substring match over a command's flattened lookup
// string. It is not a scored fuzzy matcher — ranking among matches is
// natural (alphabetical) alias order, not a match score.
package fuzzy

import (
	"strings"

	"github.com/rvigo/cl/internal/command"
)

// Filter returns the subset of candidates whose LookupString contains every
// whitespace-split token of query (case-insensitive, order-independent). An
// empty query matches everything. The result preserves the input order of
// candidates, so callers that want alias order should pass an
// already-sorted candidates slice.
func Filter(candidates []command.Command, query string) []command.Command {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		out := make([]command.Command, len(candidates))
		copy(out, candidates)
		return out
	}

	out := make([]command.Command, 0, len(candidates))
	for _, c := range candidates {
		if matches(strings.ToLower(c.LookupString()), tokens) {
			out = append(out, c)
		}
	}
	return out
}

func matches(lookup string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(lookup, tok) {
			return false
		}
	}
	return true
}
