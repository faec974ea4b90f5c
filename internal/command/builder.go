package command

import "strings"

// Builder assembles a Command from trimmed identifier fields, leaving tags
// and description untouched.
type Builder struct {
	c Command
}

// NewBuilder starts a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Namespace sets the namespace, trimmed.
func (b *Builder) Namespace(namespace string) *Builder {
	b.c.Namespace = strings.TrimSpace(namespace)
	return b
}

// Alias sets the alias, trimmed.
func (b *Builder) Alias(alias string) *Builder {
	b.c.Alias = strings.TrimSpace(alias)
	return b
}

// Command sets the command template, trimmed.
func (b *Builder) Command(cmd string) *Builder {
	b.c.Command = strings.TrimSpace(cmd)
	return b
}

// Description sets the description, passed through unchanged.
func (b *Builder) Description(description string) *Builder {
	b.c.Description = description
	return b
}

// Tags sets the tags, passed through unchanged.
func (b *Builder) Tags(tags []string) *Builder {
	b.c.Tags = tags
	return b
}

// Build returns the assembled Command. Field-level validation (emptiness,
// whitespace in identifiers) is the Store's responsibility, not the
// builder's, so the same invalid Command can still be inspected for an
// error message.
func (b *Builder) Build() Command {
	return b.c
}
