// Package share implements namespace-scoped export and import of the
// command file, grounded on internal/storage's LoadFrom/SaveAt and on
// internal/store.Store's Add duplicate semantics.
package share

import (
	"fmt"

	"github.com/rvigo/cl/internal/command"
	"github.com/rvigo/cl/internal/storage"
	"github.com/rvigo/cl/internal/store"
)

// Export writes the subset of m restricted to namespaces (or all of m, if
// namespaces is empty) to path.
func Export(m command.CommandMap, namespaces []string, path string) error {
	subset := filterNamespaces(m, namespaces)
	return storage.SaveAt(subset, path)
}

// ImportResult reports the outcome of an Import call.
type ImportResult struct {
	// Added lists the commands that were newly added to s.
	Added []command.Command
	// Skipped lists commands that already existed in s (by namespace+alias)
	// and were left untouched.
	Skipped []command.Command
}

// Import reads path, restricts it to namespaces (or all, if empty), then
// adds each remaining command to s one at a time. A command colliding with
// an existing (namespace, alias) is skipped rather than aborting the rest
// of the import.
func Import(s *store.Store, namespaces []string, path string) (ImportResult, error) {
	m, err := storage.LoadFrom(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("load %s: %w", path, err)
	}

	subset := filterNamespaces(m, namespaces)

	var result ImportResult
	for _, c := range subset.Flatten() {
		if err := s.Add(c); err != nil {
			if _, ok := err.(*store.DuplicateError); ok {
				result.Skipped = append(result.Skipped, c)
				continue
			}
			return result, fmt.Errorf("add %s/%s: %w", c.Namespace, c.Alias, err)
		}
		result.Added = append(result.Added, c)
	}
	return result, nil
}

// filterNamespaces returns the subset of m whose keys are in namespaces, or
// a clone of m unchanged if namespaces is empty.
func filterNamespaces(m command.CommandMap, namespaces []string) command.CommandMap {
	if len(namespaces) == 0 {
		return m.Clone()
	}

	wanted := make(map[string]struct{}, len(namespaces))
	for _, ns := range namespaces {
		wanted[ns] = struct{}{}
	}

	out := make(command.CommandMap, len(wanted))
	for ns, list := range m {
		if _, ok := wanted[ns]; !ok {
			continue
		}
		cloned := make([]command.Command, len(list))
		copy(cloned, list)
		out[ns] = cloned
	}
	return out
}
