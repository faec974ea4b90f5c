// Package store implements the indexed, namespace-aware command collection:
// add/edit/remove/find/filter plus persistence-on-mutation.
package store

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/rvigo/cl/internal/command"
	"github.com/rvigo/cl/internal/fuzzy"
)

// AllNamespaces is the sentinel namespace selector meaning "every namespace".
const AllNamespaces = "All"

// Persister re-serializes the full command map to durable storage. Store
// calls it after every successful mutation; callers supply a concrete
// implementation backed by internal/storage.
type Persister interface {
	Save(m command.CommandMap) error
}

// NopPersister discards writes; useful for tests that don't exercise
// persistence.
type NopPersister struct{}

// Save implements Persister.
func (NopPersister) Save(command.CommandMap) error { return nil }

// Store is the sole mutator of a command.CommandMap, keeping it sorted and
// duplicate-free, and flushing every successful mutation through a Persister.
type Store struct {
	mu        sync.Mutex
	byNS      command.CommandMap
	persister Persister
}

// New builds a Store from an initial flat list, sorting each namespace's
// commands by alias.
func New(list []command.Command, persister Persister) *Store {
	if persister == nil {
		persister = NopPersister{}
	}
	return &Store{
		byNS:      command.NewCommandMap(list),
		persister: persister,
	}
}

// Snapshot returns a deep-enough copy of the underlying map, safe for the
// caller to read without holding the Store's lock.
func (s *Store) Snapshot() command.CommandMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byNS.Clone()
}

// List returns every command across every namespace, in namespace then
// alias order.
func (s *Store) List() []command.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byNS.Flatten()
}

// Namespaces returns the sorted distinct namespace set, prepended by the
// AllNamespaces sentinel.
func (s *Store) Namespaces() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := s.byNS.SortedNamespaces()
	out := make([]string, 0, len(ns)+1)
	out = append(out, AllNamespaces)
	out = append(out, ns...)
	return out
}

func containsWhitespace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

func validate(c command.Command) error {
	if strings.TrimSpace(c.Namespace) == "" {
		return &EmptyFieldError{Field: "namespace"}
	}
	if strings.TrimSpace(c.Alias) == "" {
		return &EmptyFieldError{Field: "alias"}
	}
	if strings.TrimSpace(c.Command) == "" {
		return &EmptyFieldError{Field: "command"}
	}
	if containsWhitespace(c.Namespace) {
		return &WhitespaceError{Field: "namespace", Value: c.Namespace}
	}
	if containsWhitespace(c.Alias) {
		return &WhitespaceError{Field: "alias", Value: c.Alias}
	}
	return nil
}

// Add validates and inserts a command, preserving alphabetical order within
// its namespace, then persists the store.
func (s *Store) Add(c command.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.addToMap(c); err != nil {
		return err
	}
	return s.persister.Save(s.byNS)
}

// addToMap validates and inserts c into the in-memory map without
// persisting. Used directly by Add and, for atomicity, by Edit.
func (s *Store) addToMap(c command.Command) error {
	if err := validate(c); err != nil {
		return err
	}
	for _, existing := range s.byNS[c.Namespace] {
		if strings.EqualFold(existing.Alias, c.Alias) {
			return &DuplicateError{Alias: c.Alias, Namespace: c.Namespace}
		}
	}
	list := append(s.byNS[c.Namespace], c)
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Alias) < strings.ToLower(list[j].Alias)
	})
	s.byNS[c.Namespace] = list
	return nil
}

// Remove deletes the command matching c's (namespace, alias) identity, then
// persists the store.
func (s *Store) Remove(c command.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.removeFromMap(c); err != nil {
		return err
	}
	return s.persister.Save(s.byNS)
}

// removeFromMap deletes c from the in-memory map without persisting. Used
// directly by Remove and, for atomicity, by Edit.
func (s *Store) removeFromMap(c command.Command) error {
	list := s.byNS[c.Namespace]
	idx := -1
	for i, existing := range list {
		if strings.EqualFold(existing.Alias, c.Alias) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return &NotFoundError{Alias: c.Alias, Namespace: c.Namespace}
	}
	s.byNS[c.Namespace] = append(list[:idx], list[idx+1:]...)
	if len(s.byNS[c.Namespace]) == 0 {
		delete(s.byNS, c.Namespace)
	}
	return nil
}

// Edit atomically re-keys oldCmd to newCmd: if newCmd would fail Add, oldCmd
// is left untouched, nothing is persisted, and the store is byte-identical
// to its pre-call state. Both mutations happen in memory first; the store
// is only flushed to disk once, after both succeed.
func (s *Store) Edit(newCmd, oldCmd command.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.byNS.Clone()

	if err := s.removeFromMap(oldCmd); err != nil {
		return err
	}
	if err := s.addToMap(newCmd); err != nil {
		s.byNS = before
		return err
	}
	return s.persister.Save(s.byNS)
}

// Find looks up a command by alias. If namespace is non-empty, the lookup is
// restricted to that namespace. If namespace is empty, Find searches every
// namespace and fails with AmbiguousError if more than one namespace
// contains the alias.
func (s *Store) Find(alias, namespace string) (command.Command, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if namespace != "" {
		for _, c := range s.byNS[namespace] {
			if strings.EqualFold(c.Alias, alias) {
				return c, nil
			}
		}
		return command.Command{}, &NotFoundError{Alias: alias, Namespace: namespace}
	}

	var found []command.Command
	var foundNS []string
	for _, ns := range s.byNS.SortedNamespaces() {
		for _, c := range s.byNS[ns] {
			if strings.EqualFold(c.Alias, alias) {
				found = append(found, c)
				foundNS = append(foundNS, ns)
				break
			}
		}
	}
	switch len(found) {
	case 0:
		return command.Command{}, &NotFoundError{Alias: alias}
	case 1:
		return found[0], nil
	default:
		return command.Command{}, &AmbiguousError{Alias: alias, Namespaces: foundNS}
	}
}

// Filter returns commands restricted to namespaceSelector (AllNamespaces
// matches every namespace) and ranked/filtered by query via the fuzzy
// filter. An empty query keeps natural (namespace, then alias) order.
func (s *Store) Filter(namespaceSelector, query string) []command.Command {
	s.mu.Lock()
	defer s.mu.Unlock()

	var candidates []command.Command
	if namespaceSelector == "" || namespaceSelector == AllNamespaces {
		candidates = s.byNS.Flatten()
	} else {
		candidates = append(candidates, s.byNS[namespaceSelector]...)
	}
	return fuzzy.Filter(candidates, query)
}
