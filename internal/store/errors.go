package store

import "fmt"

// EmptyFieldError is returned when a required Command field is empty.
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// WhitespaceError is returned when an identifier field (alias or namespace)
// contains whitespace.
type WhitespaceError struct {
	Field string
	Value string
}

func (e *WhitespaceError) Error() string {
	return fmt.Sprintf("%s %q must not contain whitespace", e.Field, e.Value)
}

// DuplicateError is returned when a (namespace, alias) pair already exists.
type DuplicateError struct {
	Alias     string
	Namespace string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("command %q already exists in namespace %q", e.Alias, e.Namespace)
}

// NotFoundError is returned when an alias cannot be found.
type NotFoundError struct {
	Alias     string
	Namespace string
}

func (e *NotFoundError) Error() string {
	if e.Namespace != "" {
		return fmt.Sprintf("command %q not found in namespace %q", e.Alias, e.Namespace)
	}
	return fmt.Sprintf("command %q not found", e.Alias)
}

// AmbiguousError is returned when an alias exists in more than one namespace
// and no namespace was given to disambiguate.
type AmbiguousError struct {
	Alias      string
	Namespaces []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("command %q is ambiguous across namespaces %v; specify a namespace", e.Alias, e.Namespaces)
}
