// Package command defines the Command entity and the CommandMap that
// groups commands by namespace.
package command

import (
	"sort"
	"strings"
)

// Command is a stored shell snippet: an alias within a namespace that
// expands to a command template.
type Command struct {
	Namespace   string   `toml:"-"`
	Alias       string   `toml:"alias"`
	Command     string   `toml:"command"`
	Description string   `toml:"description,omitempty"`
	Tags        []string `toml:"tags,omitempty"`
}

// Key returns the identity pair used for equality and lookups.
func (c Command) Key() (namespace, alias string) {
	return c.Namespace, c.Alias
}

// Equal reports whether two commands share the same (namespace, alias) identity.
func (c Command) Equal(other Command) bool {
	return strings.EqualFold(c.Namespace, other.Namespace) && strings.EqualFold(c.Alias, other.Alias)
}

// DedupedTags returns Tags with duplicates removed, preserving first occurrence order.
func (c Command) DedupedTags() []string {
	seen := make(map[string]struct{}, len(c.Tags))
	out := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		key := strings.ToLower(strings.TrimSpace(t))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// TagsJoined renders the deduped tags as a single space-joined string, used
// by the fuzzy filter's lookup string.
func (c Command) TagsJoined() string {
	return strings.Join(c.DedupedTags(), " ")
}

// LookupString is the flattened text searched by the fuzzy filter.
func (c Command) LookupString() string {
	return strings.TrimSpace(strings.Join([]string{
		c.Alias, c.Command, c.Namespace, c.TagsJoined(), c.Description,
	}, " "))
}

// CommandMap groups Commands by namespace. Within a namespace, commands are
// kept sorted by alias (case-insensitive).
type CommandMap map[string][]Command

// NewCommandMap builds a CommandMap from a flat list of commands, sorting
// each namespace bucket by alias.
func NewCommandMap(list []Command) CommandMap {
	m := make(CommandMap)
	for _, c := range list {
		m[c.Namespace] = append(m[c.Namespace], c)
	}
	for ns := range m {
		sortByAlias(m[ns])
	}
	return m
}

func sortByAlias(list []Command) {
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Alias) < strings.ToLower(list[j].Alias)
	})
}

// Flatten returns every command across every namespace as one slice,
// namespaces visited in sorted order.
func (m CommandMap) Flatten() []Command {
	out := make([]Command, 0)
	for _, ns := range m.SortedNamespaces() {
		out = append(out, m[ns]...)
	}
	return out
}

// SortedNamespaces returns the distinct namespace keys in sorted order.
func (m CommandMap) SortedNamespaces() []string {
	out := make([]string, 0, len(m))
	for ns := range m {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep-enough copy of the map (new top-level slices) so
// callers can mutate the clone without affecting the original.
func (m CommandMap) Clone() CommandMap {
	out := make(CommandMap, len(m))
	for ns, list := range m {
		cloned := make([]Command, len(list))
		copy(cloned, list)
		out[ns] = cloned
	}
	return out
}
